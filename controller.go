package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// rememberedSession is the persisted "remember me" session tier. The
// session-only tier lives in controller memory and dies with the process.
type rememberedSession struct {
	Name       string    `json:"name"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// defaultBudgets is the built-in starter budget set. It is what a load of the
// budgets key falls back to when the key is absent or the document is corrupt.
func defaultBudgets() []Budget {
	return []Budget{
		{Category: "Food", Limit: 500},
		{Category: "Transport", Limit: 150},
		{Category: "Entertainment", Limit: 100},
		{Category: "Shopping", Limit: 200},
	}
}

func defaultSettings() UserSettings {
	return UserSettings{
		Currency:    "$",
		Language:    "en",
		Theme:       "light",
		DarkMode:    false,
		Investments: []Investment{},
	}
}

// Controller is the single owner of the four collections and settings for the
// lifetime of a session. Every mutation updates the in-memory copy first and
// then writes the whole collection through to the store. The in-memory copy
// is authoritative; persistence is best-effort and never fails a mutation.
type Controller struct {
	mu     sync.RWMutex
	store  Store
	userID string

	authenticated bool
	displayName   string
	remembered    bool

	transactions []Transaction
	budgets      []Budget
	goals        []SavingsGoal
	settings     UserSettings
}

func NewController(store Store, userID string) *Controller {
	return &Controller{
		store:        store,
		userID:       userID,
		transactions: []Transaction{},
		budgets:      defaultBudgets(),
		goals:        []SavingsGoal{},
		settings:     defaultSettings(),
	}
}

// loadDoc decodes the stored document for key into a fresh value via dst.
// Returns false when the key is absent or the document does not decode; the
// caller keeps its default in that case. Never returns an error: availability
// wins over data-loss visibility here.
func (c *Controller) loadDoc(ctx context.Context, key string, dst interface{}) bool {
	doc, err := c.store.Get(ctx, c.userID, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("load %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(doc, dst); err != nil {
		log.Printf("corrupt document for %s, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

// persist writes one collection through to the store. Errors are logged and
// swallowed: a crash between the in-memory update and a completed flush can
// lose the most recent mutation, an accepted risk for this data.
func (c *Controller) persist(key string, value interface{}) {
	doc, err := json.Marshal(value)
	if err != nil {
		log.Printf("marshal %s: %v", key, err)
		return
	}
	if err := c.store.Put(context.Background(), c.userID, key, doc); err != nil {
		log.Printf("persist %s: %v", key, err)
	}
}

// Hydrate loads all collections from the store, substituting each key's
// default when the document is absent or corrupt.
func (c *Controller) Hydrate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hydrateLocked(ctx)
}

func (c *Controller) hydrateLocked(ctx context.Context) {
	var txs []Transaction
	if c.loadDoc(ctx, keyTransactions, &txs) && txs != nil {
		c.transactions = txs
	} else {
		c.transactions = []Transaction{}
	}

	var budgets []Budget
	if c.loadDoc(ctx, keyBudgets, &budgets) {
		if budgets == nil {
			budgets = []Budget{}
		}
		c.budgets = budgets
	} else {
		c.budgets = defaultBudgets()
	}

	var goals []SavingsGoal
	if c.loadDoc(ctx, keyGoals, &goals) && goals != nil {
		c.goals = goals
	} else {
		c.goals = []SavingsGoal{}
	}

	settings := defaultSettings()
	if c.loadDoc(ctx, keySettings, &settings) {
		if settings.Investments == nil {
			settings.Investments = []Investment{}
		}
		c.settings = settings
	} else {
		c.settings = defaultSettings()
	}
}

// Login establishes a session, hydrates the collections and runs first-run
// seeding. Seeding is keyed on "transaction collection is empty at login", so
// a user who deleted every transaction gets reseeded on the next login.
func (c *Controller) Login(ctx context.Context, name, email string, remember bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authenticated = true
	c.displayName = name
	c.remembered = remember

	if remember {
		c.persist(keySession, rememberedSession{Name: name, LoggedInAt: time.Now()})
	} else {
		if err := c.store.Delete(ctx, c.userID, keySession); err != nil {
			log.Printf("clear remembered session: %v", err)
		}
	}
	if email != "" {
		c.persist(keyRememberedEmail, email)
	}

	c.hydrateLocked(ctx)

	if len(c.transactions) == 0 {
		c.transactions = starterTransactions(time.Now())
		c.persist(keyTransactions, c.transactions)
	}
}

// Logout ends the session and drops the in-memory collections. Persisted
// documents are left alone; the next login hydrates them again.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authenticated = false
	c.displayName = ""
	c.remembered = false
	if err := c.store.Delete(ctx, c.userID, keySession); err != nil {
		log.Printf("clear remembered session: %v", err)
	}

	c.transactions = []Transaction{}
	c.budgets = defaultBudgets()
	c.goals = []SavingsGoal{}
	c.settings = defaultSettings()
}

// Session reports the current session, restoring the remembered tier from the
// store when the process has no live session. This read never contacts the
// identity provider.
func (c *Controller) Session(ctx context.Context) SessionInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.authenticated {
		var remembered rememberedSession
		if c.loadDoc(ctx, keySession, &remembered) && remembered.Name != "" {
			c.authenticated = true
			c.displayName = remembered.Name
			c.remembered = true
			c.hydrateLocked(ctx)
		}
	}

	return SessionInfo{
		Authenticated: c.authenticated,
		Name:          c.displayName,
		Remembered:    c.remembered,
	}
}

// RememberedEmail returns the stored email hint, empty when none is stored.
func (c *Controller) RememberedEmail(ctx context.Context) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var email string
	c.loadDoc(ctx, keyRememberedEmail, &email)
	return email
}

// AddTransaction assigns a fresh id and prepends the transaction. The form
// layer is responsible for full validation; non-positive amounts and empty
// descriptions are still rejected here.
func (c *Controller) AddTransaction(t Transaction) (Transaction, error) {
	if err := validateAmount(t.Amount); err != nil {
		return Transaction{}, err
	}
	if strings.TrimSpace(t.Description) == "" {
		return Transaction{}, errors.New("description cannot be empty")
	}
	if t.Type != TypeIncome {
		t.Type = TypeExpense
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t.ID = uuid.New().String()
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	c.transactions = append([]Transaction{t}, c.transactions...)
	c.persist(keyTransactions, c.transactions)
	return t, nil
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// absent id is a no-op, not an error.
func (c *Controller) DeleteTransaction(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.transactions {
		if t.ID == id {
			c.transactions = append(c.transactions[:i], c.transactions[i+1:]...)
			c.persist(keyTransactions, c.transactions)
			return true
		}
	}
	return false
}

// SaveBudget upserts by category: an existing entry is replaced in place,
// preserving collection order, otherwise the budget is appended. This is the
// one place the category-uniqueness invariant is enforced by logic.
func (c *Controller) SaveBudget(b Budget) error {
	if err := validateName(b.Category); err != nil {
		return err
	}
	if err := validateAmount(b.Limit); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	replaced := false
	for i := range c.budgets {
		if c.budgets[i].Category == b.Category {
			c.budgets[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		c.budgets = append(c.budgets, b)
	}
	c.persist(keyBudgets, c.budgets)
	return nil
}

// DeleteBudget removes the budget for category; no-op when absent.
func (c *Controller) DeleteBudget(category string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, b := range c.budgets {
		if b.Category == category {
			c.budgets = append(c.budgets[:i], c.budgets[i+1:]...)
			c.persist(keyBudgets, c.budgets)
			return true
		}
	}
	return false
}

// AddGoal assigns a fresh id, zeroes the running amount and appends.
func (c *Controller) AddGoal(g SavingsGoal) (SavingsGoal, error) {
	if err := validateName(g.Name); err != nil {
		return SavingsGoal{}, err
	}
	if err := validateAmount(g.TargetAmount); err != nil {
		return SavingsGoal{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	g.ID = uuid.New().String()
	g.CurrentAmount = 0
	c.goals = append(c.goals, g)
	c.persist(keyGoals, c.goals)
	return g, nil
}

// UpdateGoalAmount adds a signed delta to the goal's running amount. There is
// no clamping: overshooting the target is the completion signal elsewhere.
// A non-finite delta is a programmer error and is rejected.
func (c *Controller) UpdateGoalAmount(id string, delta float64) (SavingsGoal, bool, error) {
	if err := validateFinite(delta); err != nil {
		return SavingsGoal{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.goals {
		if c.goals[i].ID == id {
			c.goals[i].CurrentAmount += delta
			c.persist(keyGoals, c.goals)
			return c.goals[i], true, nil
		}
	}
	return SavingsGoal{}, false, nil
}

// UpdateGoal replaces every field of the matching goal except its id.
func (c *Controller) UpdateGoal(g SavingsGoal) (SavingsGoal, bool, error) {
	if err := validateName(g.Name); err != nil {
		return SavingsGoal{}, false, err
	}
	if err := validateAmount(g.TargetAmount); err != nil {
		return SavingsGoal{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.goals {
		if c.goals[i].ID == g.ID {
			c.goals[i] = g
			c.persist(keyGoals, c.goals)
			return c.goals[i], true, nil
		}
	}
	return SavingsGoal{}, false, nil
}

// DeleteGoal removes the goal with the given id; no-op when absent.
func (c *Controller) DeleteGoal(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, g := range c.goals {
		if g.ID == id {
			c.goals = append(c.goals[:i], c.goals[i+1:]...)
			c.persist(keyGoals, c.goals)
			return true
		}
	}
	return false
}

// AddInvestment appends a holding to the settings aggregate.
func (c *Controller) AddInvestment(inv Investment) (Investment, error) {
	if err := validateName(inv.Name); err != nil {
		return Investment{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	inv.ID = uuid.New().String()
	c.settings.Investments = append(c.settings.Investments, inv)
	c.persist(keySettings, c.settings)
	return inv, nil
}

// UpdateInvestment replaces the holding with the matching id.
func (c *Controller) UpdateInvestment(inv Investment) (Investment, bool, error) {
	if err := validateName(inv.Name); err != nil {
		return Investment{}, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.settings.Investments {
		if c.settings.Investments[i].ID == inv.ID {
			c.settings.Investments[i] = inv
			c.persist(keySettings, c.settings)
			return inv, true, nil
		}
	}
	return Investment{}, false, nil
}

// DeleteInvestment removes the holding with the given id; no-op when absent.
func (c *Controller) DeleteInvestment(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, inv := range c.settings.Investments {
		if inv.ID == id {
			c.settings.Investments = append(c.settings.Investments[:i], c.settings.Investments[i+1:]...)
			c.persist(keySettings, c.settings)
			return true
		}
	}
	return false
}

// SetInvestmentAmount sets the manual aggregate investment figure. This is a
// deliberately independent number from the itemized holdings.
func (c *Controller) SetInvestmentAmount(amount float64) error {
	if err := validateFinite(amount); err != nil {
		return err
	}
	if amount < 0 {
		return errors.New("amount cannot be negative")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings.InvestmentAmount = amount
	c.persist(keySettings, c.settings)
	return nil
}

// UpdateSettings replaces the settings aggregate whole. The investments
// collection is owned by the narrow investment operations; a payload without
// it keeps the current holdings instead of wiping them.
func (c *Controller) UpdateSettings(s UserSettings) UserSettings {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s.Investments == nil {
		s.Investments = c.settings.Investments
	}
	c.settings = s
	c.persist(keySettings, c.settings)
	return c.settings
}

// ResetAll clears every collection and both session tiers. Destructive and
// irreversible; confirmation is a presentation concern, not handled here.
func (c *Controller) ResetAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.transactions = []Transaction{}
	c.budgets = defaultBudgets()
	c.goals = []SavingsGoal{}
	c.settings = defaultSettings()
	c.authenticated = false
	c.displayName = ""
	c.remembered = false

	if err := c.store.DeleteAll(ctx, c.userID); err != nil {
		log.Printf("reset: %v", err)
	}
}

// ExportData snapshots {transactions, settings} for the one-way export.
func (c *Controller) ExportData() ExportPayload {
	c.mu.RLock()
	defer c.mu.RUnlock()

	txs := make([]Transaction, len(c.transactions))
	copy(txs, c.transactions)
	return ExportPayload{Transactions: txs, Settings: c.settings}
}

// Snapshot accessors. Callers get copies of the slices; the structs inside
// are treated as immutable by convention.

func (c *Controller) Transactions() []Transaction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	txs := make([]Transaction, len(c.transactions))
	copy(txs, c.transactions)
	return txs
}

func (c *Controller) Budgets() []Budget {
	c.mu.RLock()
	defer c.mu.RUnlock()

	budgets := make([]Budget, len(c.budgets))
	copy(budgets, c.budgets)
	return budgets
}

func (c *Controller) Goals() []SavingsGoal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	goals := make([]SavingsGoal, len(c.goals))
	copy(goals, c.goals)
	return goals
}

func (c *Controller) Investments() []Investment {
	c.mu.RLock()
	defer c.mu.RUnlock()

	invs := make([]Investment, len(c.settings.Investments))
	copy(invs, c.settings.Investments)
	return invs
}

func (c *Controller) Settings() UserSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.settings
}

package main

import "time"

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Investment types
const (
	InvestmentStocks       = "stocks"
	InvestmentMutualFunds  = "mutual_funds"
	InvestmentGold         = "gold"
	InvestmentCrypto       = "crypto"
	InvestmentFixedDeposit = "fixed_deposit"
	InvestmentRealEstate   = "real_estate"
	InvestmentOther        = "other"
)

// knownCategories is the recommended category set. The category domain is
// open: arbitrary user-entered category names are also valid.
var knownCategories = []string{
	"Food", "Groceries", "Transport", "Entertainment", "Shopping",
	"Bills", "Health", "Education", "Rent", "Travel",
	"Income", "Income Source", "Scholarship", "Gift", "Other",
}

// incomeOnlyCategories are only semantically valid on income transactions.
var incomeOnlyCategories = map[string]bool{
	"Income":        true,
	"Income Source": true,
	"Scholarship":   true,
	"Gift":          true,
}

// Transaction represents an immutable financial event. Transactions are only
// ever added and deleted, never edited in place.
type Transaction struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Source      *string   `json:"source,omitempty"`
	Wallet      *string   `json:"wallet,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// Budget is a per-category monthly spending limit. Category is the unique key:
// the collection never holds two budgets for the same category.
type Budget struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// SavingsGoal represents a savings target. CurrentAmount may overshoot
// TargetAmount; completion is derived, never stored.
type SavingsGoal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	Icon          string     `json:"icon"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// Investment represents a single holding. Prices are per unit.
type Investment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Symbol        *string `json:"symbol,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentValue  float64 `json:"current_value"`
	Quantity      float64 `json:"quantity"`
	PurchaseDate  string  `json:"purchase_date"`
	Notes         *string `json:"notes,omitempty"`
}

// TotalValue returns the current market value of the holding.
func (i Investment) TotalValue() float64 {
	return i.CurrentValue * i.Quantity
}

// TotalCost returns the purchase cost of the holding.
func (i Investment) TotalCost() float64 {
	return i.PurchasePrice * i.Quantity
}

// Return returns the absolute gain or loss of the holding.
func (i Investment) Return() float64 {
	return i.TotalValue() - i.TotalCost()
}

// UserProfile holds display-only identity fields.
type UserProfile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Avatar       string `json:"avatar"`
	Bio          string `json:"bio"`
	CardLastFour string `json:"card_last_four"`
}

// UserSettings is the singleton configuration aggregate. InvestmentAmount is
// a manual aggregate figure, intentionally independent of the Investments
// collection (manual override vs itemized holdings).
type UserSettings struct {
	Currency         string       `json:"currency"`
	Language         string       `json:"language"`
	Theme            string       `json:"theme"`
	DarkMode         bool         `json:"dark_mode"`
	Profile          UserProfile  `json:"profile"`
	InvestmentAmount float64      `json:"investment_amount"`
	Investments      []Investment `json:"investments"`
}

// Derived analytics view types. These are computed, never persisted.

// Summary holds period totals derived from the transaction log.
type Summary struct {
	Period        string  `json:"period"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
	SavingsRate   int     `json:"savings_rate"`
}

// CategoryAmount represents spending (or income) grouped by category.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  int     `json:"percent"`
}

// TrendPoint is one time bucket of the income/expense trend.
type TrendPoint struct {
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// WeekdayIntensity is relative spend weight for one day of the week.
type WeekdayIntensity struct {
	Day       string  `json:"day"`
	Amount    float64 `json:"amount"`
	Intensity int     `json:"intensity"`
}

// HealthScore is a bounded [0,100] heuristic over the current month.
type HealthScore struct {
	Score             int  `json:"score"`
	SavingsRate       int  `json:"savings_rate"`
	BudgetsTotal      int  `json:"budgets_total"`
	BudgetsWithin     int  `json:"budgets_within"`
	ExpenseCategories int  `json:"expense_categories"`
	SteadySpending    bool `json:"steady_spending"`
}

// MonthComparison contrasts the current calendar month with the previous one.
type MonthComparison struct {
	CurrentIncome    float64 `json:"current_income"`
	CurrentExpenses  float64 `json:"current_expenses"`
	PreviousIncome   float64 `json:"previous_income"`
	PreviousExpenses float64 `json:"previous_expenses"`
	IncomeChange     int     `json:"income_change"`
	ExpenseChange    int     `json:"expense_change"`
}

// Forecast projects end-of-month spending from the month so far.
type Forecast struct {
	AvgDailyExpense     float64 `json:"avg_daily_expense"`
	ProjectedAdditional float64 `json:"projected_additional"`
	ProjectedTotal      float64 `json:"projected_total"`
	ProjectedSavings    float64 `json:"projected_savings"`
	OnTrack             bool    `json:"on_track"`
	DaysElapsed         int     `json:"days_elapsed"`
	DaysRemaining       int     `json:"days_remaining"`
}

// Budget status labels
const (
	BudgetOnTrack   = "on_track"
	BudgetNearLimit = "near_limit"
	BudgetExceeded  = "exceeded"
)

// BudgetStatus is budget-vs-actual for one category in the current month.
// Percent is the raw value; BarPercent is capped at 100 for display width.
type BudgetStatus struct {
	Category   string  `json:"category"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Percent    int     `json:"percent"`
	BarPercent int     `json:"bar_percent"`
	Status     string  `json:"status"`
}

// GoalProjection is derived progress for one savings goal. DaysLeft and
// RequiredPerDay are only present when a deadline is set.
type GoalProjection struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	TargetAmount   float64  `json:"target_amount"`
	CurrentAmount  float64  `json:"current_amount"`
	Percent        float64  `json:"percent"`
	Completed      bool     `json:"completed"`
	DaysLeft       *int     `json:"days_left,omitempty"`
	RequiredPerDay *float64 `json:"required_per_day,omitempty"`
}

// PortfolioMetrics aggregates the itemized holdings.
type PortfolioMetrics struct {
	TotalInvested     float64     `json:"total_invested"`
	TotalCurrentValue float64     `json:"total_current_value"`
	TotalReturn       float64     `json:"total_return"`
	ReturnPercent     float64     `json:"return_percent"`
	BestPerformer     *Investment `json:"best_performer,omitempty"`
	BestReturnPercent float64     `json:"best_return_percent"`
}

// InsightContext is the read-only snapshot handed to the external insight
// generator. The generator's output is opaque display text.
type InsightContext struct {
	BudgetAnalysis     []BudgetStatus   `json:"budget_analysis"`
	GoalsProgress      []GoalProjection `json:"goals_progress"`
	RecentTransactions []Transaction    `json:"recent_transactions"`
}

// ExportPayload is the one-way export document. There is no import path.
type ExportPayload struct {
	Transactions []Transaction `json:"transactions"`
	Settings     UserSettings  `json:"settings"`
}

// SessionInfo reports the current session state to the presentation layer.
type SessionInfo struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name"`
	Remembered    bool   `json:"remembered"`
}

// LoginRequest is the login entry point payload.
type LoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Remember bool   `json:"remember"`
}

// ContributionRequest carries a signed delta for a savings goal.
type ContributionRequest struct {
	Delta float64 `json:"delta"`
}

// AmountRequest carries the manual investment aggregate figure.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

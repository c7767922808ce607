package main

import (
	"math"
	"sort"
	"time"
)

// The derived analytics engine. Every function here is a pure computation
// over (collections, now): no input is mutated, no state is kept, and every
// view is recomputed fully on each call. All ratios substitute 0 for
// division by zero. "Now" is the evaluating instant, so bucket boundaries
// can shift between two calls that straddle midnight.

// Analytics periods
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// periodStart returns the inclusive lower bound for a period: a rolling seven
// days for week, calendar-aligned starts for month and year.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return monthStart(now)
	}
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// transactionsSince selects transactions dated at or after start.
func transactionsSince(transactions []Transaction, start time.Time) []Transaction {
	selected := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.Date.Before(start) {
			selected = append(selected, t)
		}
	}
	return selected
}

func filterByPeriod(transactions []Transaction, period string, now time.Time) []Transaction {
	return transactionsSince(transactions, periodStart(period, now))
}

func sumByType(transactions []Transaction) (income, expenses float64) {
	for _, t := range transactions {
		if t.Type == TypeIncome {
			income += t.Amount
		} else {
			expenses += t.Amount
		}
	}
	return income, expenses
}

// computeSummary folds the given transactions into period totals. Savings
// rate is balance over income as a whole percent, 0 when there is no income.
func computeSummary(transactions []Transaction, period string) Summary {
	income, expenses := sumByType(transactions)
	balance := income - expenses
	return Summary{
		Period:        period,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       balance,
		SavingsRate:   roundPercent(balance, income),
	}
}

// categoryBreakdown sums amounts per category for one transaction type.
// Percentages are rounded independently, so they can miss 100 by at most one
// point per category.
func categoryBreakdown(transactions []Transaction, txType string) []CategoryAmount {
	sums := make(map[string]float64)
	var total float64
	for _, t := range transactions {
		if t.Type != txType {
			continue
		}
		sums[t.Category] += t.Amount
		total += t.Amount
	}

	breakdown := make([]CategoryAmount, 0, len(sums))
	for category, amount := range sums {
		breakdown = append(breakdown, CategoryAmount{
			Category: category,
			Amount:   amount,
			Percent:  roundPercent(amount, total),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// trendBuckets groups the period's transactions into labeled time buckets:
// weekday names for week, week index for month, month names for year.
func trendBuckets(transactions []Transaction, period string, now time.Time) []TrendPoint {
	filtered := filterByPeriod(transactions, period, now)

	var points []TrendPoint
	var bucketFor func(t Transaction) int

	switch period {
	case PeriodWeek:
		points = make([]TrendPoint, len(weekdayLabels))
		for i, label := range weekdayLabels {
			points[i].Label = label
		}
		bucketFor = func(t Transaction) int { return int(t.Date.Weekday()) }
	case PeriodYear:
		points = make([]TrendPoint, len(monthLabels))
		for i, label := range monthLabels {
			points[i].Label = label
		}
		bucketFor = func(t Transaction) int { return int(t.Date.Month()) - 1 }
	default:
		points = []TrendPoint{
			{Label: "Week 1"}, {Label: "Week 2"}, {Label: "Week 3"},
			{Label: "Week 4"}, {Label: "Week 5"},
		}
		bucketFor = func(t Transaction) int {
			index := (t.Date.Day() - 1) / 7
			if index > 4 {
				index = 4
			}
			return index
		}
	}

	for _, t := range filtered {
		i := bucketFor(t)
		if t.Type == TypeIncome {
			points[i].Income += t.Amount
		} else {
			points[i].Expense += t.Amount
		}
	}
	for i := range points {
		points[i].Net = points[i].Income - points[i].Expense
	}
	return points
}

// weekdayIntensity sums expenses per weekday over the period and scales each
// day against the heaviest one. The max(..., 1) floor guards an all-zero week.
func weekdayIntensity(transactions []Transaction, period string, now time.Time) []WeekdayIntensity {
	filtered := filterByPeriod(transactions, period, now)

	sums := make([]float64, len(weekdayLabels))
	for _, t := range filtered {
		if t.Type == TypeExpense {
			sums[int(t.Date.Weekday())] += t.Amount
		}
	}

	maxSum := 1.0
	for _, s := range sums {
		if s > maxSum {
			maxSum = s
		}
	}

	intensities := make([]WeekdayIntensity, len(weekdayLabels))
	for i, label := range weekdayLabels {
		intensities[i] = WeekdayIntensity{
			Day:       label,
			Amount:    sums[i],
			Intensity: int(math.Round(100 * sums[i] / maxSum)),
		}
	}
	return intensities
}

// computeHealthScore is the bounded [0,100] heuristic over the current
// calendar month: base 50, adjusted for savings rate, budget adherence,
// category diversity and spending regularity. The coefficients are product
// policy and must stay as stated for compatibility.
func computeHealthScore(transactions []Transaction, budgets []Budget, now time.Time) HealthScore {
	monthTxs := transactionsSince(transactions, monthStart(now))
	income, expenses := sumByType(monthTxs)
	savingsRate := roundPercent(income-expenses, income)

	score := 50.0
	switch {
	case savingsRate >= 20:
		score += 20
	case savingsRate >= 10:
		score += 10
	case savingsRate >= 0:
		score += 5
	default:
		score -= 10
	}

	spent := expensesByCategory(monthTxs)
	within := 0
	for _, b := range budgets {
		if spent[b.Category] < b.Limit {
			within++
		}
	}
	if len(budgets) > 0 {
		score += 15 * float64(within) / float64(len(budgets))
	}

	categories := make(map[string]bool)
	for _, t := range monthTxs {
		if t.Type == TypeExpense {
			categories[t.Category] = true
		}
	}
	if len(categories) >= 3 {
		score += 5
	}

	daySums := make([]float64, 7)
	for _, t := range monthTxs {
		if t.Type == TypeExpense {
			daySums[int(t.Date.Weekday())] += t.Amount
		}
	}
	var mean float64
	for _, s := range daySums {
		mean += s
	}
	mean /= 7
	var variance float64
	for _, s := range daySums {
		variance += (s - mean) * (s - mean)
	}
	variance /= 7
	steady := variance < 2*mean
	if steady {
		score += 10
	}

	return HealthScore{
		Score:             clampScore(int(math.Round(score))),
		SavingsRate:       savingsRate,
		BudgetsTotal:      len(budgets),
		BudgetsWithin:     within,
		ExpenseCategories: len(categories),
		SteadySpending:    steady,
	}
}

// compareMonths partitions the log into the current calendar month and the
// previous one and reports percent change, 0 when the previous total is 0.
func compareMonths(transactions []Transaction, now time.Time) MonthComparison {
	currentStart := monthStart(now)
	previousStart := currentStart.AddDate(0, -1, 0)

	var comparison MonthComparison
	for _, t := range transactions {
		switch {
		case !t.Date.Before(currentStart):
			if t.Type == TypeIncome {
				comparison.CurrentIncome += t.Amount
			} else {
				comparison.CurrentExpenses += t.Amount
			}
		case !t.Date.Before(previousStart):
			if t.Type == TypeIncome {
				comparison.PreviousIncome += t.Amount
			} else {
				comparison.PreviousExpenses += t.Amount
			}
		}
	}

	comparison.IncomeChange = percentChange(comparison.CurrentIncome, comparison.PreviousIncome)
	comparison.ExpenseChange = percentChange(comparison.CurrentExpenses, comparison.PreviousExpenses)
	return comparison
}

func percentChange(current, previous float64) int {
	if previous == 0 {
		return 0
	}
	return int(math.Round(100 * (current - previous) / previous))
}

// forecastCashFlow projects end-of-month spending: the average daily expense
// over the elapsed days, extended over the remaining days of the month.
// On-track means projected savings are non-negative.
func forecastCashFlow(transactions []Transaction, now time.Time) Forecast {
	monthTxs := transactionsSince(transactions, monthStart(now))
	income, expenses := sumByType(monthTxs)

	daysElapsed := now.Day()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	daysRemaining := daysInMonth - daysElapsed

	avgDaily := expenses / float64(daysElapsed)
	additional := avgDaily * float64(daysRemaining)
	projectedTotal := expenses + additional
	projectedSavings := income - projectedTotal

	return Forecast{
		AvgDailyExpense:     avgDaily,
		ProjectedAdditional: additional,
		ProjectedTotal:      projectedTotal,
		ProjectedSavings:    projectedSavings,
		OnTrack:             projectedSavings >= 0,
		DaysElapsed:         daysElapsed,
		DaysRemaining:       daysRemaining,
	}
}

func expensesByCategory(transactions []Transaction) map[string]float64 {
	sums := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == TypeExpense {
			sums[t.Category] += t.Amount
		}
	}
	return sums
}

// budgetStatuses reports budget-vs-actual for the current month. Status uses
// the raw ratio; the reported percent is rounded and the bar width is capped
// at 100 for display.
func budgetStatuses(budgets []Budget, transactions []Transaction, now time.Time) []BudgetStatus {
	spent := expensesByCategory(transactionsSince(transactions, monthStart(now)))

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		amount := spent[b.Category]
		var ratio float64
		if b.Limit > 0 {
			ratio = amount / b.Limit * 100
		}

		status := BudgetOnTrack
		switch {
		case ratio >= 100:
			status = BudgetExceeded
		case ratio >= 85:
			status = BudgetNearLimit
		}

		percent := int(math.Round(ratio))
		barPercent := percent
		if barPercent > 100 {
			barPercent = 100
		}

		statuses = append(statuses, BudgetStatus{
			Category:   b.Category,
			Limit:      b.Limit,
			Spent:      amount,
			Percent:    percent,
			BarPercent: barPercent,
			Status:     status,
		})
	}
	return statuses
}

// goalProjections derives progress per goal. Days left and required daily
// pace only exist when a deadline is set and the goal is still open.
func goalProjections(goals []SavingsGoal, now time.Time) []GoalProjection {
	projections := make([]GoalProjection, 0, len(goals))
	for _, g := range goals {
		var percent float64
		if g.TargetAmount > 0 {
			percent = math.Min(g.CurrentAmount/g.TargetAmount*100, 100)
		}

		projection := GoalProjection{
			ID:            g.ID,
			Name:          g.Name,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Percent:       percent,
			Completed:     g.CurrentAmount >= g.TargetAmount,
		}

		if g.Deadline != nil {
			daysLeft := int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
			projection.DaysLeft = &daysLeft
			if !projection.Completed && daysLeft > 0 {
				required := (g.TargetAmount - g.CurrentAmount) / float64(daysLeft)
				projection.RequiredPerDay = &required
			}
		}

		projections = append(projections, projection)
	}
	return projections
}

// portfolioMetrics aggregates the itemized holdings. Best performer is the
// holding with the highest per-unit return ratio; holdings with a zero
// purchase price cannot rank.
func portfolioMetrics(investments []Investment) PortfolioMetrics {
	var metrics PortfolioMetrics
	bestRatio := math.Inf(-1)

	for i, inv := range investments {
		metrics.TotalInvested += inv.TotalCost()
		metrics.TotalCurrentValue += inv.TotalValue()

		if inv.PurchasePrice > 0 {
			ratio := (inv.CurrentValue - inv.PurchasePrice) / inv.PurchasePrice
			if ratio > bestRatio {
				bestRatio = ratio
				best := investments[i]
				metrics.BestPerformer = &best
				metrics.BestReturnPercent = ratio * 100
			}
		}
	}

	metrics.TotalReturn = metrics.TotalCurrentValue - metrics.TotalInvested
	if metrics.TotalInvested > 0 {
		metrics.ReturnPercent = metrics.TotalReturn / metrics.TotalInvested * 100
	}
	return metrics
}

// buildInsightContext snapshots the state the external insight generator is
// allowed to see: budget standing, goal progress and the ten most recent
// transactions.
func buildInsightContext(transactions []Transaction, budgets []Budget, goals []SavingsGoal, now time.Time) InsightContext {
	recent := transactions
	if len(recent) > 10 {
		recent = recent[:10]
	}
	recentCopy := make([]Transaction, len(recent))
	copy(recentCopy, recent)

	return InsightContext{
		BudgetAnalysis:     budgetStatuses(budgets, transactions, now),
		GoalsProgress:      goalProjections(goals, now),
		RecentTransactions: recentCopy,
	}
}

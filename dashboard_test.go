package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDashboardEndpoints exercises the derived analytics surface end to end.
// The numeric edge cases live in the analytics function tests; these check the
// HTTP wiring over live collection state.
func TestDashboardEndpoints(t *testing.T) {
	resetTestState()

	_, err := app.AddTransaction(Transaction{Amount: 2000, Description: "Salary", Category: "Income", Type: TypeIncome})
	require.NoError(t, err)
	_, err = app.AddTransaction(Transaction{Amount: 300, Description: "Groceries", Category: "Food", Type: TypeExpense})
	require.NoError(t, err)
	_, err = app.AddTransaction(Transaction{Amount: 100, Description: "Cinema", Category: "Entertainment", Type: TypeExpense})
	require.NoError(t, err)

	t.Run("summary reflects the current month", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/summary", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var summary Summary
		assertNoError(t, parseJSONResponse(resp, &summary))
		assert.Equal(t, PeriodMonth, summary.Period)
		assert.Equal(t, 2000.0, summary.TotalIncome)
		assert.Equal(t, 400.0, summary.TotalExpenses)
		assert.Equal(t, 1600.0, summary.Balance)
		assert.Equal(t, 80, summary.SavingsRate)
	})

	t.Run("unknown period falls back to month", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/summary?period=decade", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var summary Summary
		assertNoError(t, parseJSONResponse(resp, &summary))
		assert.Equal(t, PeriodMonth, summary.Period)
	})

	t.Run("category breakdown defaults to expenses", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/categories", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var breakdown []CategoryAmount
		assertNoError(t, parseJSONResponse(resp, &breakdown))
		require.Len(t, breakdown, 2)
		assert.Equal(t, "Food", breakdown[0].Category)
		assert.Equal(t, 75, breakdown[0].Percent)
	})

	t.Run("category breakdown can select income", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/categories?type=income", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var breakdown []CategoryAmount
		assertNoError(t, parseJSONResponse(resp, &breakdown))
		require.Len(t, breakdown, 1)
		assert.Equal(t, "Income", breakdown[0].Category)
		assert.Equal(t, 100, breakdown[0].Percent)
	})

	t.Run("health score stays in bounds", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/health", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var health HealthScore
		assertNoError(t, parseJSONResponse(resp, &health))
		assert.GreaterOrEqual(t, health.Score, 0)
		assert.LessOrEqual(t, health.Score, 100)
		assert.Equal(t, 80, health.SavingsRate)
	})

	t.Run("budget status covers every configured budget", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/budgets", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var statuses []BudgetStatus
		assertNoError(t, parseJSONResponse(resp, &statuses))
		require.Len(t, statuses, len(app.Budgets()))
		for _, s := range statuses {
			assert.LessOrEqual(t, s.BarPercent, 100)
		}
	})

	t.Run("trend returns the weekly buckets", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/trend?period=week", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var points []TrendPoint
		assertNoError(t, parseJSONResponse(resp, &points))
		assert.Len(t, points, 7)
	})

	t.Run("intensity covers all weekdays", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/intensity", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var intensity []WeekdayIntensity
		assertNoError(t, parseJSONResponse(resp, &intensity))
		assert.Len(t, intensity, 7)
	})

	t.Run("forecast uses the month so far", func(t *testing.T) {
		resp := makeRequest("GET", "/api/analytics/forecast", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var forecast Forecast
		assertNoError(t, parseJSONResponse(resp, &forecast))
		assert.Greater(t, forecast.DaysElapsed, 0)
		assert.GreaterOrEqual(t, forecast.DaysRemaining, 0)
	})

	t.Run("goal projections mirror the goal collection", func(t *testing.T) {
		_, err := app.AddGoal(SavingsGoal{Name: "Trip", TargetAmount: 800})
		require.NoError(t, err)

		resp := makeRequest("GET", "/api/analytics/goals", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var projections []GoalProjection
		assertNoError(t, parseJSONResponse(resp, &projections))
		require.Len(t, projections, 1)
		assert.Equal(t, "Trip", projections[0].Name)
		assert.False(t, projections[0].Completed)
		assert.Nil(t, projections[0].DaysLeft)
	})
}

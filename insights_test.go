package main

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, insight InsightContext) (string, error) {
	return "", errors.New("upstream unavailable")
}

type cannedGenerator struct{ text string }

func (g cannedGenerator) Generate(ctx context.Context, insight InsightContext) (string, error) {
	return g.text, nil
}

// TestInsightEndpoints exercises the insight context snapshot and the
// generator boundary including its fallback path.
func TestInsightEndpoints(t *testing.T) {
	resetTestState()

	_, err := app.AddTransaction(Transaction{Amount: 60, Description: "Dinner", Category: "Food", Type: TypeExpense})
	require.NoError(t, err)
	_, err = app.AddGoal(SavingsGoal{Name: "Emergency fund", TargetAmount: 1000})
	require.NoError(t, err)

	t.Run("context carries budgets, goals and recent transactions", func(t *testing.T) {
		resp := makeRequest("GET", "/api/insights/context", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var insight InsightContext
		assertNoError(t, parseJSONResponse(resp, &insight))
		assert.Len(t, insight.BudgetAnalysis, len(app.Budgets()))
		require.Len(t, insight.GoalsProgress, 1)
		require.Len(t, insight.RecentTransactions, 1)
		assert.Equal(t, "Dinner", insight.RecentTransactions[0].Description)
	})

	t.Run("serves the configured generator's text", func(t *testing.T) {
		orig := insightGen
		insightGen = cannedGenerator{text: "Spend less on dining out."}
		defer func() { insightGen = orig }()

		resp := makeRequest("GET", "/api/insights", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var result map[string]string
		assertNoError(t, parseJSONResponse(resp, &result))
		assert.Equal(t, "Spend less on dining out.", result["insight"])
	})

	t.Run("falls back to the static text on generator failure", func(t *testing.T) {
		orig := insightGen
		insightGen = failingGenerator{}
		defer func() { insightGen = orig }()

		resp := makeRequest("GET", "/api/insights", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var result map[string]string
		assertNoError(t, parseJSONResponse(resp, &result))
		assert.Equal(t, insightFallback, result["insight"])
	})

	t.Run("built-in generator reacts to exceeded budgets", func(t *testing.T) {
		insight := buildInsightContext(app.Transactions(), app.Budgets(), app.Goals(), analyticsNow)
		insight.BudgetAnalysis = []BudgetStatus{{Category: "Food", Status: BudgetExceeded}}

		text, err := staticInsightGenerator{}.Generate(context.Background(), insight)
		require.NoError(t, err)
		assert.Contains(t, text, "exceeded")
	})
}

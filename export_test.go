package main

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExportEndpoint covers the one-way JSON dump
func TestExportEndpoint(t *testing.T) {
	resetTestState()

	_, err := app.AddTransaction(Transaction{Amount: 55, Description: "Concert ticket", Category: "Entertainment", Type: TypeExpense})
	require.NoError(t, err)
	_, err = app.AddInvestment(Investment{Name: "Index fund", Type: InvestmentMutualFunds, PurchasePrice: 100, CurrentValue: 110, Quantity: 2})
	require.NoError(t, err)

	resp := makeRequest("GET", "/api/export", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	t.Run("should name the attachment with the export date", func(t *testing.T) {
		disposition := resp.Header().Get("Content-Disposition")
		assert.Contains(t, disposition, "attachment")
		assert.Contains(t, disposition, "montra-export-"+time.Now().Format("2006-01-02")+".json")
	})

	t.Run("should match the controller snapshot exactly", func(t *testing.T) {
		expected, err := json.Marshal(app.ExportData())
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), resp.Body.String())
	})

	t.Run("should carry transactions and settings only", func(t *testing.T) {
		var payload map[string]json.RawMessage
		assertNoError(t, parseJSONResponse(resp, &payload))
		assert.Contains(t, payload, "transactions")
		assert.Contains(t, payload, "settings")
		assert.Len(t, payload, 2)
	})

	t.Run("exported settings should include the holdings", func(t *testing.T) {
		var payload ExportPayload
		assertNoError(t, parseJSONResponse(resp, &payload))
		require.Len(t, payload.Transactions, 1)
		assert.Equal(t, "Concert ticket", payload.Transactions[0].Description)
		require.Len(t, payload.Settings.Investments, 1)
		assert.Equal(t, "Index fund", payload.Settings.Investments[0].Name)
	})
}

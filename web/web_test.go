package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

const testLedger = `option "title" "Test"

2023-02-01 open Assets:Checking GBP
2023-02-01 open Income:Salary GBP
2023-02-01 open Expenses:Rent GBP

2023-02-03 * "Salary"
  Assets:Checking  1000.00 GBP
  Income:Salary   -1000.00 GBP

2023-02-05 * "Rent"
  Expenses:Rent  500.00 GBP
  Assets:Checking
`

func testServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.ledger")
	err := os.WriteFile(path, []byte(testLedger), 0600)
	assert.NoError(t, err)

	server := New(8080, path)
	assert.NoError(t, server.reloadDocument())
	return server
}

func TestAPIBalances(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/balances", nil)
	rec := httptest.NewRecorder()
	server.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response BalancesResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.Equal(t, 3, len(response.Balances))

	// Entries come back in account opening order.
	assert.Equal(t, "Assets:Checking", response.Balances[0].Account)
	assert.Equal(t, "Assets", response.Balances[0].Type)
	assert.Equal(t, "GBP", response.Balances[0].Currency)
	// Canonical trimmed decimal form, no trailing zeros.
	assert.Equal(t, "500", response.Balances[0].Amount.String())

	assert.Equal(t, "Income:Salary", response.Balances[1].Account)
	assert.Equal(t, "Expenses:Rent", response.Balances[2].Account)
}

func TestAPIAccounts(t *testing.T) {
	server := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	rec := httptest.NewRecorder()
	server.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response AccountsResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	// Accounts are sorted by name, not opening order.
	assert.Equal(t, 3, len(response.Accounts))
	assert.Equal(t, "Assets:Checking", response.Accounts[0].Name)
	assert.Equal(t, "Expenses:Rent", response.Accounts[1].Name)
	assert.Equal(t, "Income:Salary", response.Accounts[2].Name)

	assert.Equal(t, "Assets", response.Accounts[0].Type)
	assert.Equal(t, "GBP", response.Accounts[0].Currency)
	assert.Equal(t, "2023-02-01", response.Accounts[0].Opened)
}

func TestReloadReplacesDocument(t *testing.T) {
	server := testServer(t)

	updated := `option "title" "Test"
2023-02-01 open Assets:Checking GBP
`
	assert.NoError(t, os.WriteFile(server.ledgerFile, []byte(updated), 0600))
	assert.NoError(t, server.reloadDocument())

	server.mu.RLock()
	defer server.mu.RUnlock()
	assert.Equal(t, 1, len(server.doc.Accounts()))
}

func TestReloadKeepsDocumentOnParseError(t *testing.T) {
	server := testServer(t)

	assert.NoError(t, os.WriteFile(server.ledgerFile, []byte("not a ledger"), 0600))
	assert.Error(t, server.reloadDocument())

	// The previous document stays served.
	server.mu.RLock()
	defer server.mu.RUnlock()
	assert.Equal(t, 3, len(server.doc.Accounts()))
}

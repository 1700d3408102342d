package web

import (
	"net/http"
	"sort"
)

// AccountInfo represents basic information about a ledger account.
type AccountInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Opened   string `json:"opened"`
}

// AccountsResponse is the JSON response structure for the accounts endpoint.
type AccountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
}

// handleGetAccounts handles GET requests to /api/accounts.
// Returns all accounts from the ledger, sorted alphabetically by name.
func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]AccountInfo, 0, len(s.doc.Accounts()))

	for _, account := range s.doc.Accounts() {
		accounts = append(accounts, AccountInfo{
			Name:     account.ID.String(),
			Type:     account.ID.Type.String(),
			Currency: account.Currency,
			Opened:   account.OpeningDate.String(),
		})
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	writeJSONResponse(w, &AccountsResponse{Accounts: accounts})
}

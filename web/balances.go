package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/shopspring/decimal"
)

// BalanceEntry represents one account balance for JSON serialization.
type BalanceEntry struct {
	Account  string          `json:"account"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// BalancesResponse is the JSON response structure for the balances endpoint.
type BalancesResponse struct {
	Balances []BalanceEntry `json:"balances"`
}

// handleGetBalances handles GET requests to /api/balances.
// Returns one entry per account in opening order.
func (s *Server) handleGetBalances(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balances := make([]BalanceEntry, 0, len(s.doc.Accounts()))

	for id, amount := range s.doc.Balances() {
		balances = append(balances, BalanceEntry{
			Account:  id.String(),
			Type:     id.Type.String(),
			Amount:   amount.Value,
			Currency: amount.Currency,
		})
	}

	writeJSONResponse(w, &BalancesResponse{Balances: balances})
}

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

package ledger

import "github.com/shopspring/decimal"

// Tolerance is the maximum absolute imbalance a transaction without an
// auto-posting may carry and still be accepted as balanced. Half a cent
// covers per-posting rounding without hiding real imbalances.
var Tolerance = decimal.NewFromFloat(0.005)

// Amount is a decimal value in a specific currency.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// String renders the amount as "<value> <currency>", with the value in its
// canonical trimmed form (no trailing zeros).
func (a Amount) String() string {
	return a.Value.String() + " " + a.Currency
}

// withinTolerance reports whether v is close enough to zero for a
// transaction to count as balanced.
func withinTolerance(v decimal.Decimal) bool {
	return v.Abs().LessThanOrEqual(Tolerance)
}

package ledger

import (
	"fmt"
	"time"
)

// Date is a calendar date with day granularity. Directive dates and account
// opening dates are compared by day; time-of-day never enters the model.
type Date struct {
	time.Time
}

// NewDate parses an ISO 8601 date (YYYY-MM-DD). Malformed calendar dates such
// as 2023-02-31 are rejected here, not in the lexer.
func NewDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return Date{Time: t}, nil
}

// MustDate parses a date and panics on failure. Intended for tests and
// hard-coded values.
func MustDate(s string) Date {
	d, err := NewDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Before reports whether d falls on an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

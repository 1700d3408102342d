package ledger

import "fmt"

// Validation errors returned by AccountsDocument. Each failure mode has its
// own type so callers can distinguish them with errors.As; the messages keep
// stable prefixes for callers that only inspect text.

// AccountExistsError is returned by OpenAccount when an account with the same
// AccountID is already present, regardless of currency or opening date.
type AccountExistsError struct {
	ID AccountID
}

func (e *AccountExistsError) Error() string {
	return fmt.Sprintf("account already exists: %s", e.ID)
}

// AccountNotFoundError is returned by AddTransaction when a posting
// references an AccountID that was never opened.
type AccountNotFoundError struct {
	ID AccountID
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.ID)
}

// AccountNotOpenError is returned by AddTransaction when the transaction is
// dated before a referenced account's opening date.
type AccountNotOpenError struct {
	ID          AccountID
	Date        Date
	OpeningDate Date
}

func (e *AccountNotOpenError) Error() string {
	return fmt.Sprintf("account not open: %s opens %s but transaction is dated %s",
		e.ID, e.OpeningDate, e.Date)
}

// AccountCurrencyError is returned by AddTransaction when a posting states an
// account currency that differs from the account's actual currency.
type AccountCurrencyError struct {
	ID     AccountID
	Want   string // the account's currency
	Stated string // the currency stated on the posting
}

func (e *AccountCurrencyError) Error() string {
	return fmt.Sprintf("incorrect account currency: %s holds %s, posting states %s",
		e.ID, e.Want, e.Stated)
}

// TransactionCurrencyError is returned by AddTransaction when postings do not
// agree on a single transaction currency, or when an auto-posting's account
// currency differs from the determined transaction currency.
type TransactionCurrencyError struct {
	Want string
	Got  string
}

func (e *TransactionCurrencyError) Error() string {
	return fmt.Sprintf("postings have different transaction currencies: %s and %s",
		e.Want, e.Got)
}

// NotBalancedError is returned by AddTransaction when a transaction without
// an auto-posting sums to a residual outside the tolerance.
type NotBalancedError struct {
	Residual Amount
}

func (e *NotBalancedError) Error() string {
	return fmt.Sprintf("transaction is not balanced: residual %s", e.Residual)
}

// MultipleAutoPostingsError is returned by AddTransaction when a transaction
// contains more than one auto-posting.
type MultipleAutoPostingsError struct {
	First  AccountID
	Second AccountID
}

func (e *MultipleAutoPostingsError) Error() string {
	return fmt.Sprintf("more than one auto posting: %s and %s", e.First, e.Second)
}

// Package ledger provides the in-memory, balance-queryable accounts document
// for the recount text format. The document owns the set of open accounts and
// the ordered list of accepted transactions, and is the sole authority on
// double-entry validity: postings are accepted only if they keep every
// account and transaction consistent.
//
// Every transaction admitted by AddTransaction satisfies the following,
// checked once at construction time and never violable afterwards:
//
//  1. All regular postings share one currency (the transaction currency).
//  2. All conversion postings convert into that same transaction currency.
//  3. There is at most one auto-posting.
//  4. A regular posting's account is open, opened on or before the
//     transaction date, and holds the posting's stated currency.
//  5. A conversion posting's account is open, opened on or before the
//     transaction date, and holds the posting's stated account currency.
//  6. An auto-posting's account is open and opened on or before the
//     transaction date; if other postings determined a transaction currency,
//     the auto account holds that currency.
//  7. A transaction with no auto-posting balances: the signed sum of all
//     transaction-currency amounts lies within Tolerance of zero.
//
// All arithmetic is exact decimal via github.com/shopspring/decimal; binary
// floating point never enters the model.
//
// The document performs no internal locking. Mutating calls (OpenAccount,
// AddTransaction) must be serialized by the caller, and the read-only queries
// (Balance, Balances) must not overlap a mutation since they recompute from
// the full transaction history in place.
package ledger

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Transaction is an accepted, validated transaction. Instances can only be
// created through AccountsDocument.AddTransaction; posting order is preserved
// exactly as submitted.
type Transaction struct {
	date        Date
	description string
	// residual is the signed sum of all non-auto postings' transaction-currency
	// amounts at acceptance time. It is non-zero only when the transaction
	// carries an auto-posting, which absorbs its negation.
	residual decimal.Decimal
	postings []Posting
}

// Date returns the transaction date.
func (t *Transaction) Date() Date { return t.date }

// Description returns the transaction description.
func (t *Transaction) Description() string { return t.description }

// Postings returns the postings in submission order. The returned slice must
// not be mutated.
func (t *Transaction) Postings() []Posting { return t.postings }

// balance sums the transaction's contributions to account, in the account's
// own currency. An auto-posting contributes the negated residual. The second
// return is false if the transaction never posts to account.
func (t *Transaction) balance(account AccountID) (decimal.Decimal, bool) {
	sum := decimal.Zero
	found := false
	for _, p := range t.postings {
		if p.AccountID() != account {
			continue
		}
		found = true
		if amount, ok := accountAmount(p); ok {
			sum = sum.Add(amount)
		} else {
			sum = sum.Sub(t.residual)
		}
	}
	return sum, found
}

// AccountsDocument is the in-memory ledger. Accounts and transactions are
// kept in insertion order; that order is externally observable through
// Balances and Accounts.
type AccountsDocument struct {
	accounts     []Account
	transactions []Transaction
}

// New creates an empty document.
func New() *AccountsDocument {
	return &AccountsDocument{}
}

// OpenAccount adds an account to the document. It fails with
// *AccountExistsError if an account with the same AccountID is already
// present, even when currency or opening date differ.
func (d *AccountsDocument) OpenAccount(account Account) error {
	if d.findAccount(account.ID) != nil {
		return &AccountExistsError{ID: account.ID}
	}
	d.accounts = append(d.accounts, account)
	return nil
}

// AddTransaction validates the postings against the document invariants and,
// on success, appends the transaction. Validation is all-or-nothing: on any
// failure the document is left unchanged and a typed error describes the
// first violated invariant.
func (d *AccountsDocument) AddTransaction(date Date, description string, postings []Posting) error {
	runningTotal := decimal.Zero
	var txCurrency string
	var autoAccount *Account
	var autoID AccountID

	for _, posting := range postings {
		account := d.findAccount(posting.AccountID())
		if account == nil {
			return &AccountNotFoundError{ID: posting.AccountID()}
		}
		if date.Before(account.OpeningDate) {
			return &AccountNotOpenError{
				ID:          account.ID,
				Date:        date,
				OpeningDate: account.OpeningDate,
			}
		}

		pi, ok := info(posting)
		if !ok {
			if autoAccount != nil {
				return &MultipleAutoPostingsError{First: autoID, Second: account.ID}
			}
			autoAccount = account
			autoID = account.ID
			continue
		}

		if account.Currency != pi.accountCurrency {
			return &AccountCurrencyError{
				ID:     account.ID,
				Want:   account.Currency,
				Stated: pi.accountCurrency,
			}
		}

		switch txCurrency {
		case "":
			txCurrency = pi.txCurrency
		case pi.txCurrency:
		default:
			return &TransactionCurrencyError{Want: txCurrency, Got: pi.txCurrency}
		}

		runningTotal = runningTotal.Add(pi.txAmount)
	}

	if autoAccount != nil {
		// The auto-posting absorbs the residual, so its account must hold the
		// transaction currency. With no other postings the transaction
		// currency is simply the auto account's own.
		if txCurrency != "" && txCurrency != autoAccount.Currency {
			return &TransactionCurrencyError{Want: txCurrency, Got: autoAccount.Currency}
		}
	} else if !withinTolerance(runningTotal) {
		return &NotBalancedError{Residual: Amount{Value: runningTotal, Currency: txCurrency}}
	}

	d.transactions = append(d.transactions, Transaction{
		date:        date,
		description: description,
		residual:    runningTotal,
		postings:    postings,
	})
	return nil
}

// Balance returns the signed sum of every stored transaction's contribution
// to account, in the account's own currency. The second return is false if
// the account was never opened.
func (d *AccountsDocument) Balance(account AccountID) (decimal.Decimal, bool) {
	if d.findAccount(account) == nil {
		return decimal.Decimal{}, false
	}
	sum := decimal.Zero
	for i := range d.transactions {
		if contribution, ok := d.transactions[i].balance(account); ok {
			sum = sum.Add(contribution)
		}
	}
	return sum, true
}

// Balances yields one (AccountID, Amount) pair per open account, in the order
// accounts were opened. The sequence is freshly computed on each traversal;
// re-ranging after further mutation reflects the new state.
func (d *AccountsDocument) Balances() iter.Seq2[AccountID, Amount] {
	return func(yield func(AccountID, Amount) bool) {
		for _, account := range d.accounts {
			balance, _ := d.Balance(account.ID)
			amount := Amount{Value: balance, Currency: account.Currency}
			if !yield(account.ID, amount) {
				return
			}
		}
	}
}

// Accounts returns the open accounts in open order. The returned slice must
// not be mutated.
func (d *AccountsDocument) Accounts() []Account {
	return d.accounts
}

// Transactions returns the accepted transactions in acceptance order. The
// returned slice must not be mutated.
func (d *AccountsDocument) Transactions() []Transaction {
	return d.transactions
}

func (d *AccountsDocument) findAccount(id AccountID) *Account {
	for i := range d.accounts {
		if d.accounts[i].ID == id {
			return &d.accounts[i]
		}
	}
	return nil
}

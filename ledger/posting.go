package ledger

import "github.com/shopspring/decimal"

// Posting is one leg of a transaction. It is a closed sum of three shapes:
//
//   - AutoPosting: no stated amount; the amount is inferred as whatever
//     balances the transaction.
//   - RegularPosting: an amount already in the posting's own currency, which
//     must equal the target account's currency.
//   - ConversionPosting: an amount in the account's own currency plus a rate
//     converting it into the transaction currency.
//
// Code that needs per-variant behavior uses a type switch; the interface only
// exposes the account identity common to all three.
type Posting interface {
	// AccountID returns the account the posting attributes to.
	AccountID() AccountID
}

// AutoPosting attributes the transaction's residual to an account.
type AutoPosting struct {
	Account AccountID
}

// RegularPosting attributes a stated amount, in the transaction currency, to
// an account.
type RegularPosting struct {
	Account  AccountID
	Amount   decimal.Decimal
	Currency string
}

// ConversionPosting attributes an amount stated in the account's own currency,
// converted into the transaction currency at Rate. The transaction-currency
// equivalent is AccountAmount * Rate in TxCurrency.
type ConversionPosting struct {
	Account         AccountID
	AccountAmount   decimal.Decimal
	AccountCurrency string
	Rate            decimal.Decimal
	TxCurrency      string
}

func (p AutoPosting) AccountID() AccountID { return p.Account }

func (p RegularPosting) AccountID() AccountID { return p.Account }

func (p ConversionPosting) AccountID() AccountID { return p.Account }

// accountAmount returns the posting's contribution in the account's own
// currency. The second return is false for auto-postings, whose contribution
// is computed from the transaction residual instead.
func accountAmount(p Posting) (decimal.Decimal, bool) {
	switch p := p.(type) {
	case RegularPosting:
		return p.Amount, true
	case ConversionPosting:
		return p.AccountAmount, true
	default:
		return decimal.Decimal{}, false
	}
}

// postingInfo carries the validation view of a non-auto posting: the currency
// the account must hold, and the posting's amount expressed in the
// transaction currency.
type postingInfo struct {
	accountCurrency string
	txAmount        decimal.Decimal
	txCurrency      string
}

// info resolves the validation view of a posting. The second return is false
// for auto-postings.
func info(p Posting) (postingInfo, bool) {
	switch p := p.(type) {
	case RegularPosting:
		return postingInfo{
			accountCurrency: p.Currency,
			txAmount:        p.Amount,
			txCurrency:      p.Currency,
		}, true
	case ConversionPosting:
		return postingInfo{
			accountCurrency: p.AccountCurrency,
			txAmount:        p.AccountAmount.Mul(p.Rate),
			txCurrency:      p.TxCurrency,
		}, true
	default:
		return postingInfo{}, false
	}
}

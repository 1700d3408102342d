package ledger

import "fmt"

// AccountType represents the category of an account. Every account belongs to
// exactly one of the five double-entry categories.
type AccountType int

const (
	AccountTypeUnknown AccountType = iota
	AccountTypeAsset
	AccountTypeLiability
	AccountTypeEquity
	AccountTypeIncome
	AccountTypeExpense
)

// String returns the ledger-file label for the account type ("Assets",
// "Liabilities", ...), i.e. the inverse of ParseAccountType.
func (t AccountType) String() string {
	switch t {
	case AccountTypeAsset:
		return "Assets"
	case AccountTypeLiability:
		return "Liabilities"
	case AccountTypeEquity:
		return "Equity"
	case AccountTypeIncome:
		return "Income"
	case AccountTypeExpense:
		return "Expenses"
	default:
		return "Unknown"
	}
}

// ParseAccountType parses one of the five fixed account type labels.
func ParseAccountType(label string) (AccountType, error) {
	switch label {
	case "Assets":
		return AccountTypeAsset, nil
	case "Liabilities":
		return AccountTypeLiability, nil
	case "Equity":
		return AccountTypeEquity, nil
	case "Income":
		return AccountTypeIncome, nil
	case "Expenses":
		return AccountTypeExpense, nil
	default:
		return AccountTypeUnknown, fmt.Errorf("unrecognized account type %q", label)
	}
}

// AccountID identifies an account by name and type. Two AccountIDs are equal
// iff both fields match; this is the identity used for all account lookups,
// so the same name may exist under two different types.
type AccountID struct {
	Name string
	Type AccountType
}

// String renders the id the way it appears in ledger text, e.g.
// "Assets:Checking".
func (id AccountID) String() string {
	return id.Type.String() + ":" + id.Name
}

// Account is an account held by an AccountsDocument. Accounts are created
// only through AccountsDocument.OpenAccount and are immutable thereafter.
type Account struct {
	ID          AccountID
	Currency    string
	OpeningDate Date
}

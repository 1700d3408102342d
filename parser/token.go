package parser

import "github.com/recount-app/recount/ledger"

// TokenKind represents the type of token scanned from the input.
type TokenKind uint8

const (
	// EOF signals clean end-of-input.
	EOF TokenKind = iota

	DATE        // YYYY-MM-DD
	AMOUNT      // 1,234.56 GBP
	OPEN        // open
	POSTTX      // * (begins a transaction block)
	ACCOUNT     // Assets:Checking
	CURRENCY    // GBP
	AT          // @ (introduces a conversion rate)
	NEWLINE     // \n or \r\n
	OPTION      // option "<key>" "<value>"
	DESCRIPTION // "quoted transaction description"
)

var tokenNames = map[TokenKind]string{
	EOF:         "EOF",
	DATE:        "DATE",
	AMOUNT:      "AMOUNT",
	OPEN:        "open",
	POSTTX:      "*",
	ACCOUNT:     "ACCOUNT",
	CURRENCY:    "CURRENCY",
	AT:          "@",
	NEWLINE:     "NEWLINE",
	OPTION:      "OPTION",
	DESCRIPTION: "DESCRIPTION",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one lexical token together with the 1-indexed line and column at
// which it starts. Only the payload field matching the kind is populated:
// Text for DATE, CURRENCY and DESCRIPTION, Amount for AMOUNT, Account for
// ACCOUNT.
type Token struct {
	Kind    TokenKind
	Text    string
	Amount  ledger.Amount
	Account ledger.AccountID
	Line    int
	Column  int
}

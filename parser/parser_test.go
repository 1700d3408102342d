package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/recount-app/recount/ledger"
)

func TestParseDocument(t *testing.T) {
	doc, err := Parse(`option "title" "Test"

; Accounts.
2023-02-01 open Assets:Checking GBP
2023-02-01 open Income:Salary GBP
2023-02-01 open Expenses:Rent GBP

2023-02-03 * "Salary"
  Assets:Checking  1000.00 GBP
  Income:Salary   -1000.00 GBP

2023-02-05 * "Rent"
  Expenses:Rent  500.00 GBP
  Assets:Checking
`)
	assert.NoError(t, err)

	accounts := doc.Accounts()
	assert.Equal(t, 3, len(accounts))
	assert.Equal(t, "Assets:Checking", accounts[0].ID.String())
	assert.Equal(t, "GBP", accounts[0].Currency)
	assert.Equal(t, "2023-02-01", accounts[0].OpeningDate.String())

	transactions := doc.Transactions()
	assert.Equal(t, 2, len(transactions))
	assert.Equal(t, "Salary", transactions[0].Description())
	assert.Equal(t, "2023-02-03", transactions[0].Date().String())
	assert.Equal(t, 2, len(transactions[0].Postings()))

	// The rent transaction's auto-posting absorbs -500.00.
	rent := transactions[1]
	_, ok := rent.Postings()[1].(ledger.AutoPosting)
	assert.True(t, ok, "expected an auto posting")

	balance, ok := doc.Balance(ledger.AccountID{Name: "Checking", Type: ledger.AccountTypeAsset})
	assert.True(t, ok)
	assert.True(t, balance.Equal(decimal.RequireFromString("500")), "got %s", balance)
}

func TestParsePostingShapes(t *testing.T) {
	doc, err := Parse(`option "title" "Test"
2023-02-01 open Assets:Checking GBP
2023-02-01 open Expenses:Travel USD
2023-02-03 * "Flight"
  Expenses:Travel  120 USD @ 0.82 GBP
  Assets:Checking
`)
	assert.NoError(t, err)

	postings := doc.Transactions()[0].Postings()
	assert.Equal(t, 2, len(postings))

	conv, ok := postings[0].(ledger.ConversionPosting)
	assert.True(t, ok, "expected a conversion posting")
	assert.Equal(t, "USD", conv.AccountCurrency)
	assert.Equal(t, "GBP", conv.TxCurrency)
	assert.True(t, conv.Rate.Equal(decimal.RequireFromString("0.82")))

	// 120 USD at 0.82 converts to 98.40 GBP, absorbed by the auto-posting.
	balance, ok := doc.Balance(ledger.AccountID{Name: "Checking", Type: ledger.AccountTypeAsset})
	assert.True(t, ok)
	assert.True(t, balance.Equal(decimal.RequireFromString("-98.4")), "got %s", balance)
}

func TestParseEmptyAfterOption(t *testing.T) {
	doc, err := Parse(`option "title" "Test"`)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(doc.Accounts()))
	assert.Equal(t, 0, len(doc.Transactions()))
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
		line    int
		column  int
	}{
		{
			name:    "missing option header",
			input:   "2023-02-01 open Assets:Checking GBP\n",
			wantMsg: "expected option line",
			line:    1,
			column:  1,
		},
		{
			name:    "garbage after option",
			input:   "option \"a\" \"b\" XYZ\n",
			wantMsg: "expected newline",
			line:    1,
			column:  15,
		},
		{
			name:    "directive without date",
			input:   "option \"a\" \"b\"\nGBP\n",
			wantMsg: "expected date",
			line:    2,
			column:  1,
		},
		{
			name:    "date without directive keyword",
			input:   "option \"a\" \"b\"\n2023-02-01 GBP\n",
			wantMsg: "expected either open or post transaction directive",
			line:    2,
			column:  12,
		},
		{
			name:    "open without account",
			input:   "option \"a\" \"b\"\n2023-02-01 open GBP\n",
			wantMsg: "expected account",
			line:    2,
			column:  17,
		},
		{
			name:    "open without currency",
			input:   "option \"a\" \"b\"\n2023-02-01 open Assets:Checking\n",
			wantMsg: "expected currency",
			line:    2,
			column:  32,
		},
		{
			name:    "transaction without description",
			input:   "option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP\n2023-02-03 * GBP\n",
			wantMsg: "expected transaction description",
			line:    3,
			column:  14,
		},
		{
			name:    "posting with trailing junk",
			input:   "option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP\n2023-02-03 * \"x\"\n  Assets:Checking 10.00 GBP GBP\n",
			wantMsg: "expected newline, end of file or @",
			line:    4,
			column:  29,
		},
		{
			name:    "posting account followed by keyword",
			input:   "option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP\n2023-02-03 * \"x\"\n  Assets:Checking open\n",
			wantMsg: "expected amount",
			line:    4,
			column:  19,
		},
		{
			name:    "rate without amount",
			input:   "option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP\n2023-02-03 * \"x\"\n  Assets:Checking 10.00 GBP @ GBP\n",
			wantMsg: "expected amount",
			line:    4,
			column:  31,
		},
		{
			name:    "invalid calendar date",
			input:   "option \"a\" \"b\"\n2023-02-31 open Assets:Checking GBP\n",
			wantMsg: "invalid date \"2023-02-31\"",
			line:    2,
			column:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			assert.Zero(t, doc)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T (%v)", err, err)
			assert.Equal(t, tt.wantMsg, parseErr.Msg)
			assert.Equal(t, tt.line, parseErr.Line)
			assert.Equal(t, tt.column, parseErr.Column)
		})
	}
}

func TestParseWrapsLexError(t *testing.T) {
	_, err := Parse("option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP\n@123\n")

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)

	var lexErr *LexError
	assert.True(t, errors.As(err, &lexErr), "expected a wrapped *LexError")
	assert.Equal(t, 3, lexErr.Line)
	assert.Equal(t, 1, lexErr.Column)
}

func TestParseWrapsLedgerError(t *testing.T) {
	_, err := Parse("option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP\n2023-02-02 open Assets:Checking GBP\n")

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, 1, parseErr.Column)

	var existsErr *ledger.AccountExistsError
	assert.True(t, errors.As(err, &existsErr), "expected a wrapped *AccountExistsError")
	assert.Equal(t, "Assets:Checking", existsErr.ID.String())
}

func TestParseUnbalancedTransaction(t *testing.T) {
	_, err := Parse(`option "title" "Test"
2023-02-01 open Assets:Checking GBP
2023-02-01 open Expenses:Rent GBP
2023-02-03 * "Rent"
  Expenses:Rent    500.00 GBP
  Assets:Checking -499.00 GBP
`)

	var notBalanced *ledger.NotBalancedError
	assert.True(t, errors.As(err, &notBalanced), "expected a wrapped *NotBalancedError, got %v", err)
	assert.True(t, notBalanced.Residual.Value.Equal(decimal.RequireFromString("1")))
}

func TestParseDirectivesAtEOFWithoutNewline(t *testing.T) {
	doc, err := Parse("option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(doc.Accounts()))

	doc, err = Parse("option \"a\" \"b\"\n2023-02-01 open Assets:Checking GBP\n2023-02-03 * \"x\"\n  Assets:Checking")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(doc.Transactions()))
	_, ok := doc.Transactions()[0].Postings()[0].(ledger.AutoPosting)
	assert.True(t, ok, "expected an auto posting")
}

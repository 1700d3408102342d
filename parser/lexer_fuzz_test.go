package parser

import (
	"testing"
)

func FuzzLexer(f *testing.F) {
	// Seed corpus with one of everything the recognizer table knows.
	seeds := []string{
		// Header
		"option \"title\" \"Example\"",
		"option \"operating_currency\" \"GBP\"",

		// Dates
		"2023-02-01", "2024-02-29", "9999-12-31",

		// Amounts
		"100 GBP", "12.50 GBP", "-12.50 GBP", "1,234,567.89 USD", "42EUR",
		"79228162514264337593543950336 GBP", // beyond the coefficient cap

		// Keywords and symbols
		"open", "*", "@",

		// Accounts
		"Assets:Checking",
		"Liabilities:CreditCard",
		"Equity:Opening-Balances",
		"Income:Salary",
		"Expenses:Food",

		// Currencies and descriptions
		"USD", "EUR", "GBP",
		"\"Groceries\"",
		"\"with spaces\"",

		// Comments and whitespace
		"; comment",
		"  ; indented comment",
		" ", "\t", "\n", "\r\n", "   ",

		// Edge cases: empty input, bare minus, glued boundaries,
		// half-formed accounts, an unterminated description.
		"",
		"-",
		"2023-02-01open",
		"openX",
		"Assets:",
		":Checking",
		"\"unterminated",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// CRITICAL: Lexer must never panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Lexer panicked on input %q: %v", input, r)
			}
		}()

		lex := NewLexer(input)

		// Every call either consumes input or terminates, so the token
		// count is bounded by the input length.
		for i := 0; i <= len(input)+1; i++ {
			tok, err := lex.Next()
			if err != nil {
				lexErr, ok := err.(*LexError)
				if !ok {
					t.Errorf("Next returned %T, want *LexError", err)
				} else if lexErr.Line < 1 || lexErr.Column < 1 {
					t.Errorf("error has invalid position %d:%d", lexErr.Line, lexErr.Column)
				}
				return
			}

			if tok.Line < 1 {
				t.Errorf("token %v has invalid line %d", tok.Kind, tok.Line)
			}
			if tok.Column < 1 {
				t.Errorf("token %v has invalid column %d", tok.Kind, tok.Column)
			}

			if tok.Kind == EOF {
				return
			}
		}

		t.Errorf("lexer failed to terminate on input %q", input)
	})
}

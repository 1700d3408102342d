package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/recount-app/recount/ledger"
)

// The recognizer table. Each pattern is anchored at the start of the
// remaining buffer, and every token-producing pattern (everything except
// whitespace and comments) requires the match to be followed by whitespace, a
// newline, or end-of-buffer. That trailing boundary is what stops `open` from
// matching inside `openX` or a date from matching inside `2023-02-01open`.
//
// The patterns are tried in the fixed order of (*Lexer).Next below; the order
// is significant because several patterns are prefixes of others (a bare
// currency code would otherwise swallow `open`, an amount's digits would
// otherwise swallow a date).
var (
	whitespacePattern  = regexp.MustCompile(`^[ \t]+`)
	optionPattern      = regexp.MustCompile(`^(option\s+"[^"]+"\s+"[^"]+")(?:[ \t\n\r]|$)`)
	commentPattern     = regexp.MustCompile(`^;[^\r\n]*`)
	datePattern        = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:[ \t\n\r]|$)`)
	amountPattern      = regexp.MustCompile(`^(-?(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d+)?)[ \t]*([A-Z]{3,})(?:[ \t\n\r]|$)`)
	openPattern        = regexp.MustCompile(`^open(?:[ \t\n\r]|$)`)
	postTxPattern      = regexp.MustCompile(`^\*(?:[ \t\n\r]|$)`)
	accountPattern     = regexp.MustCompile(`^(Assets|Liabilities|Expenses|Income|Equity):([A-Z][A-Za-z0-9-]+)(?:[ \t\n\r]|$)`)
	currencyPattern    = regexp.MustCompile(`^([A-Z]+)(?:[ \t\n\r]|$)`)
	descriptionPattern = regexp.MustCompile(`^"([^"]+)"(?:[ \t\n\r]|$)`)
	atPattern          = regexp.MustCompile(`^@(?:[ \t\n\r]|$)`)
	newlinePattern     = regexp.MustCompile(`^\r?\n`)
)

// maxCoefficientBits bounds the precision of amount literals; it matches the
// 96-bit mantissa of the fixed-point representation the format was designed
// around. Wider literals are a lexical error rather than a silent truncation.
const maxCoefficientBits = 96

// errPreviewLen bounds how much of an unrecognized character run is echoed
// back in a lexical error.
const errPreviewLen = 20

// Lexer turns a text buffer into a lazy sequence of tokens. Tokens
// materialize one at a time through Next and are consumed exactly once, front
// to back; the sequence is not rewindable.
//
// The cursor sits between characters: position 0 is before the first
// character, position len(buffer) is after the last. Characters before the
// cursor have been consumed.
type Lexer struct {
	buffer string
	cursor int
}

// NewLexer creates a lexer over the whole input buffer.
func NewLexer(buffer string) *Lexer {
	return &Lexer{buffer: buffer}
}

// Next returns the next token, a token of kind EOF at clean end-of-input, or
// a *LexError carrying the 1-indexed line and column of the failure point.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.cursor >= len(l.buffer) {
			line, column := l.position()
			return Token{Kind: EOF, Line: line, Column: column}, nil
		}

		rest := l.buffer[l.cursor:]

		if m := whitespacePattern.FindString(rest); m != "" {
			l.cursor += len(m)
			continue
		}

		if loc := optionPattern.FindStringSubmatchIndex(rest); loc != nil {
			tok := l.tokenAt(OPTION)
			l.cursor += loc[3]
			return tok, nil
		}

		if m := commentPattern.FindString(rest); m != "" {
			l.cursor += len(m)
			continue
		}

		if loc := datePattern.FindStringSubmatchIndex(rest); loc != nil {
			tok := l.tokenAt(DATE)
			tok.Text = rest[loc[2]:loc[3]]
			l.cursor += loc[3]
			return tok, nil
		}

		if loc := amountPattern.FindStringSubmatchIndex(rest); loc != nil {
			amount, err := l.scanAmount(rest[loc[2]:loc[3]], rest[loc[4]:loc[5]])
			if err != nil {
				return Token{}, err
			}
			tok := l.tokenAt(AMOUNT)
			tok.Amount = amount
			l.cursor += loc[5]
			return tok, nil
		}

		if loc := openPattern.FindStringIndex(rest); loc != nil {
			tok := l.tokenAt(OPEN)
			l.cursor += len("open")
			return tok, nil
		}

		if loc := postTxPattern.FindStringIndex(rest); loc != nil {
			tok := l.tokenAt(POSTTX)
			l.cursor += len("*")
			return tok, nil
		}

		if loc := accountPattern.FindStringSubmatchIndex(rest); loc != nil {
			// The pattern only admits the five fixed labels, so the type
			// always parses.
			accountType, _ := ledger.ParseAccountType(rest[loc[2]:loc[3]])
			tok := l.tokenAt(ACCOUNT)
			tok.Account = ledger.AccountID{
				Name: rest[loc[4]:loc[5]],
				Type: accountType,
			}
			l.cursor += loc[5]
			return tok, nil
		}

		if loc := currencyPattern.FindStringSubmatchIndex(rest); loc != nil {
			tok := l.tokenAt(CURRENCY)
			tok.Text = rest[loc[2]:loc[3]]
			l.cursor += loc[3]
			return tok, nil
		}

		if loc := descriptionPattern.FindStringSubmatchIndex(rest); loc != nil {
			tok := l.tokenAt(DESCRIPTION)
			tok.Text = rest[loc[2]:loc[3]]
			l.cursor += loc[3] + 1 // past the closing quote
			return tok, nil
		}

		if loc := atPattern.FindStringIndex(rest); loc != nil {
			tok := l.tokenAt(AT)
			l.cursor += len("@")
			return tok, nil
		}

		if m := newlinePattern.FindString(rest); m != "" {
			tok := l.tokenAt(NEWLINE)
			l.cursor += len(m)
			return tok, nil
		}

		return Token{}, l.errorf("unexpected character sequence %q", preview(rest))
	}
}

// tokenAt stamps a token with the cursor's current line and column.
func (l *Lexer) tokenAt(kind TokenKind) Token {
	line, column := l.position()
	return Token{Kind: kind, Line: line, Column: column}
}

// scanAmount parses a matched numeric literal and currency code. Thousands
// separators are stripped before parsing.
func (l *Lexer) scanAmount(number, currency string) (ledger.Amount, error) {
	value, err := decimal.NewFromString(strings.ReplaceAll(number, ",", ""))
	if err != nil || value.Coefficient().BitLen() > maxCoefficientBits {
		return ledger.Amount{}, l.errorf("decimal has too many digits")
	}
	return ledger.Amount{Value: value, Currency: currency}, nil
}

func (l *Lexer) errorf(format string, args ...interface{}) error {
	line, column := l.position()
	return &LexError{
		Msg:    fmt.Sprintf(format, args...),
		Line:   line,
		Column: column,
	}
}

// position returns the cursor's 1-indexed line and column. Both are
// recomputed from the buffer on demand rather than tracked incrementally;
// the buffer sizes involved make the repeated scan cheap and the approach is
// immune to drift.
func (l *Lexer) position() (line, column int) {
	return l.line(), l.column()
}

// line is 1 plus the number of newline characters strictly before the
// cursor. A cursor sitting just past a trailing newline counts as being on
// the following line.
func (l *Lexer) line() int {
	return 1 + strings.Count(l.buffer[:l.cursor], "\n")
}

// column is the distance from the cursor back to the most recent newline, or
// to the start of the buffer, 1-indexed.
func (l *Lexer) column() int {
	if l.cursor == 0 {
		return 1
	}
	lineStart := strings.LastIndexByte(l.buffer[:l.cursor], '\n')
	if lineStart == -1 {
		lineStart = 0
	}
	return l.cursor - lineStart
}

// preview truncates an unrecognized character run for error reporting.
func preview(rest string) string {
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) > errPreviewLen {
		rest = rest[:errPreviewLen] + "..."
	}
	return rest
}

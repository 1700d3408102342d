package parser

import "fmt"

// LexError is a lexical failure: an unrecognized character run or a numeric
// literal exceeding the representable precision. It always carries the
// 1-indexed line and column of the failure point.
type LexError struct {
	Msg    string
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// ParseError is a structural failure: the wrong token where a specific token
// was required, an unexpected end of input mid-directive, or a ledger
// validation failure surfaced during parsing. When a lexical or ledger error
// caused the failure it is available through Unwrap, so callers can
// distinguish the ledger's semantic errors from the parser's structural ones
// with errors.As.
type ParseError struct {
	Msg    string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// errorAt builds a parse error positioned at a token.
func errorAt(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Msg:    fmt.Sprintf(format, args...),
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// wrapAt builds a parse error positioned at a token around an underlying
// error, preserving it for errors.As.
func wrapAt(tok Token, err error) *ParseError {
	return &ParseError{
		Msg:    err.Error(),
		Line:   tok.Line,
		Column: tok.Column,
		Err:    err,
	}
}

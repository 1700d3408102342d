// Package parser turns recount ledger text into a validated
// ledger.AccountsDocument.
//
// The input format is line-oriented: one `option "<key>" "<value>"` header
// line, then any mix of blank lines, `;` comments, account-open directives
// and transaction blocks:
//
//	option "operating_currency" "GBP"
//
//	2023-02-01 open Assets:Checking GBP
//
//	2023-02-03 * "Groceries"
//	  Expenses:Food        12.50 GBP
//	  Assets:Checking     -12.50 GBP
//
// A posting may convert between currencies with a rate clause
// (`12 USD @ 0.82 GBP`), or omit its amount entirely to absorb whatever
// balances the transaction.
//
// Parsing performs no recovery: the first violated expectation aborts the
// whole document and is returned with its line and column. Validation
// failures raised by the ledger surface as *ParseError values that wrap the
// ledger's own error.
package parser

import "github.com/recount-app/recount/ledger"

// Parser consumes the lexer's token sequence and drives the document's
// mutation API. It holds no lookahead; every token is pulled exactly once.
type Parser struct {
	lex *Lexer
	doc *ledger.AccountsDocument
}

// Parse builds a document from ledger text. On failure it returns a
// *ParseError (which may wrap a *LexError or a ledger validation error) and
// no document.
func Parse(input string) (*ledger.AccountsDocument, error) {
	p := &Parser{
		lex: NewLexer(input),
		doc: ledger.New(),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

// ParseBytes builds a document from raw file contents.
func ParseBytes(input []byte) (*ledger.AccountsDocument, error) {
	return Parse(string(input))
}

func (p *Parser) parse() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != OPTION {
		return errorAt(tok, "expected option line")
	}

	tok, err = p.next()
	if err != nil {
		return err
	}
	switch tok.Kind {
	case NEWLINE:
	case EOF:
		return nil
	default:
		return errorAt(tok, "expected newline")
	}

	for {
		tok, err := p.next()
		if err != nil {
			return err
		}

		switch tok.Kind {
		case NEWLINE:
			continue
		case EOF:
			return nil
		case DATE:
		default:
			return errorAt(tok, "expected date")
		}

		dateTok := tok
		date, err := ledger.NewDate(dateTok.Text)
		if err != nil {
			return wrapAt(dateTok, err)
		}

		tok, err = p.next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case OPEN:
			done, err := p.parseOpen(dateTok, date)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case POSTTX:
			done, err := p.parseTransaction(dateTok, date)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		default:
			return errorAt(tok, "expected either open or post transaction directive")
		}
	}
}

// parseOpen parses the remainder of `DATE open ACCOUNT CURRENCY`. The bool
// return reports that end-of-input terminated the directive and parsing is
// complete.
func (p *Parser) parseOpen(dateTok Token, date ledger.Date) (bool, error) {
	account, err := p.expect(ACCOUNT, "expected account")
	if err != nil {
		return false, err
	}

	currency, err := p.expect(CURRENCY, "expected currency")
	if err != nil {
		return false, err
	}

	if err := p.doc.OpenAccount(ledger.Account{
		ID:          account.Account,
		Currency:    currency.Text,
		OpeningDate: date,
	}); err != nil {
		return false, wrapAt(dateTok, err)
	}

	tok, err := p.next()
	if err != nil {
		return false, err
	}
	switch tok.Kind {
	case NEWLINE:
		return false, nil
	case EOF:
		return true, nil
	default:
		return false, errorAt(tok, "expected newline")
	}
}

// parseTransaction parses the remainder of a transaction block: the quoted
// description, a newline, then posting lines until a blank line or
// end-of-input. Each posting line is one of
//
//	ACCOUNT AMOUNT                 (regular)
//	ACCOUNT AMOUNT @ AMOUNT        (conversion: rate and target currency)
//	ACCOUNT                        (auto: amount inferred to balance)
//
// The accumulated postings are submitted to the document in one call; a
// validation failure aborts the parse.
func (p *Parser) parseTransaction(dateTok Token, date ledger.Date) (bool, error) {
	description, err := p.expect(DESCRIPTION, "expected transaction description")
	if err != nil {
		return false, err
	}

	if _, err := p.expect(NEWLINE, "expected newline"); err != nil {
		return false, err
	}

	var postings []ledger.Posting
	done := false

postings:
	for {
		tok, err := p.next()
		if err != nil {
			return false, err
		}

		switch tok.Kind {
		case NEWLINE:
			// Blank line: the posting block is complete.
			break postings
		case EOF:
			done = true
			break postings
		case ACCOUNT:
		default:
			return false, errorAt(tok, "expected account")
		}
		account := tok.Account

		tok, err = p.next()
		if err != nil {
			return false, err
		}
		switch tok.Kind {
		case NEWLINE:
			postings = append(postings, ledger.AutoPosting{Account: account})
			continue
		case EOF:
			postings = append(postings, ledger.AutoPosting{Account: account})
			done = true
			break postings
		case AMOUNT:
		default:
			return false, errorAt(tok, "expected amount")
		}
		amount := tok.Amount

		tok, err = p.next()
		if err != nil {
			return false, err
		}
		switch tok.Kind {
		case NEWLINE:
			postings = append(postings, ledger.RegularPosting{
				Account:  account,
				Amount:   amount.Value,
				Currency: amount.Currency,
			})
		case EOF:
			postings = append(postings, ledger.RegularPosting{
				Account:  account,
				Amount:   amount.Value,
				Currency: amount.Currency,
			})
			done = true
			break postings
		case AT:
			rate, err := p.expect(AMOUNT, "expected amount")
			if err != nil {
				return false, err
			}

			postings = append(postings, ledger.ConversionPosting{
				Account:         account,
				AccountAmount:   amount.Value,
				AccountCurrency: amount.Currency,
				Rate:            rate.Amount.Value,
				TxCurrency:      rate.Amount.Currency,
			})

			tok, err = p.next()
			if err != nil {
				return false, err
			}
			switch tok.Kind {
			case NEWLINE:
			case EOF:
				done = true
				break postings
			default:
				return false, errorAt(tok, "expected newline")
			}
		default:
			return false, errorAt(tok, "expected newline, end of file or @")
		}
	}

	if err := p.doc.AddTransaction(date, description.Text, postings); err != nil {
		return false, wrapAt(dateTok, err)
	}
	return done, nil
}

// next pulls the next token, converting lexical failures into positioned
// parse errors that keep the *LexError reachable through Unwrap.
func (p *Parser) next() (Token, error) {
	tok, err := p.lex.Next()
	if err != nil {
		if le, ok := err.(*LexError); ok {
			return Token{}, &ParseError{Msg: le.Msg, Line: le.Line, Column: le.Column, Err: le}
		}
		return Token{}, err
	}
	return tok, nil
}

// expect pulls the next token and requires it to have the given kind.
func (p *Parser) expect(kind TokenKind, message string) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, errorAt(tok, "%s", message)
	}
	return tok, nil
}

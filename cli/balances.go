package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/recount-app/recount/ledger"
	"github.com/recount-app/recount/parser"
)

type BalancesCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *BalancesCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	doc, err := parser.ParseBytes(source)
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		printError(ctx.Stderr, "balances failed")
		return NewCommandError(1)
	}

	renderBalances(ctx.Stdout, doc)

	return nil
}

// renderBalances writes one line per account in opening order, with
// account names left-aligned and amounts right-aligned on the decimal
// value. Widths are measured with runewidth so wide runes line up.
func renderBalances(w io.Writer, doc *ledger.AccountsDocument) {
	type row struct {
		account  string
		value    string
		currency string
	}

	var rows []row
	accountWidth, valueWidth := 0, 0

	for id, amount := range doc.Balances() {
		r := row{
			account:  id.String(),
			value:    amount.Value.String(),
			currency: amount.Currency,
		}
		if width := runewidth.StringWidth(r.account); width > accountWidth {
			accountWidth = width
		}
		if width := runewidth.StringWidth(r.value); width > valueWidth {
			valueWidth = width
		}
		rows = append(rows, r)
	}

	for _, r := range rows {
		accountPad := strings.Repeat(" ", accountWidth-runewidth.StringWidth(r.account))
		valuePad := strings.Repeat(" ", valueWidth-runewidth.StringWidth(r.value))
		_, _ = fmt.Fprintf(w, "%s%s  %s%s %s\n", r.account, accountPad, valuePad, r.value, r.currency)
	}
}

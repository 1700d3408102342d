package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/recount-app/recount/parser"
)

type CheckCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Dump bool        `help:"Dump the parsed document to stdout."`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
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

		printError(ctx.Stderr, "check failed")
		return NewCommandError(1)
	}

	if cmd.Dump {
		repr.Println(doc)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Check passed: %d account(s), %d transaction(s)",
		len(doc.Accounts()), len(doc.Transactions())))

	return nil
}

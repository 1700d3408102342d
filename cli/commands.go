package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct{}

type Commands struct {
	Globals

	Check    CheckCmd    `cmd:"" help:"Parse and validate a ledger file."`
	Balances BalancesCmd `cmd:"" help:"Print per-account balances for a ledger file."`
	Web      WebCmd      `cmd:"" help:"Start a web server exposing balances over HTTP."`
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/recount-app/recount/web"
)

type WebCmd struct {
	File  string `help:"Ledger file to serve." arg:""`
	Port  int    `help:"Port to listen on." default:"8080"`
	Watch bool   `help:"Reload the ledger when the file changes on disk." short:"w"`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	ledgerFile, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if _, err := os.Stat(ledgerFile); err != nil {
		return fmt.Errorf("failed to access file: %w", err)
	}

	version := Version
	if version == "" {
		version = "dev"
	}
	commitSHA := CommitSHA
	if commitSHA == "" {
		commitSHA = "local"
	}

	server := web.NewWithVersion(cmd.Port, ledgerFile, version, commitSHA)
	server.WatchEnabled = cmd.Watch

	printInfof(ctx.Stdout, "Starting server on %s:%d", server.Host, cmd.Port)
	printInfof(ctx.Stdout, "Serving ledger: %s", pathStyle.Render(ledgerFile))

	return server.Start(context.Background())
}

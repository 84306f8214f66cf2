// Package cmd provides the CLI commands for vitrina.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	verrors "github.com/dbmrq/vitrina/internal/errors"
)

// Version information - set by main before Execute.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand builds the command tree. Every call returns fresh
// commands, so tests can execute them independently.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "vitrina",
		Short: "Vitrina - a terminal storefront for a product catalog",
		Long: `Vitrina shows a product catalog in the terminal: a homepage of curated
carousels, a searchable and sortable assortment grid, and a product dialog
with an image gallery.

The catalog is a JSON document read from a file or an http(s) URL.
Without a subcommand vitrina starts the interactive browser.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBrowse,
	}
	root.SetVersionTemplate("vitrina {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to the config file (default .vitrina/config.yaml)")
	flags.StringP("source", "s", "", "Catalog location: file path or http(s) URL")
	flags.String("env-file", ".env", "Load environment variables from this file if it exists")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		newBrowseCmd(),
		newListCmd(),
		newCheckCmd(),
		newExportCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI. Configuration mistakes exit with status 2, every
// other failure with 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprint(root.ErrOrStderr(), verrors.FormatError(err))
		stop()
		if verrors.IsUserError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/vitrina/internal/catalog"
	"github.com/dbmrq/vitrina/internal/logging"
	"github.com/dbmrq/vitrina/internal/source"
	"github.com/dbmrq/vitrina/internal/tui"
	"github.com/dbmrq/vitrina/internal/version"
)

func newBrowseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: `Start the interactive catalog browser.

Keys: Tab switches between the homepage and the assortment, arrows move the
selection, Enter opens a product, / searches, s changes the price sort and
? shows every shortcut. The mouse works too: click cards, tabs and scroll
buttons, and drag across the gallery to swipe between images.

Examples:
  vitrina browse
  vitrina browse --source https://example.com/stock.json`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
	c.Flags().Bool("check-updates", false, "Look for a newer release in the background")
	return c
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	closeLog := initLogging(cmd, cfg)
	defer closeLog()

	loader := source.NewLoader(cfg.SourceOptions())
	defer loader.Close()

	location := cfg.Source.Location
	runner := tui.NewRunner(cmd.Context(), tui.Options{
		Load: func(ctx context.Context) (*catalog.Document, error) {
			return loader.Load(ctx, location)
		},
		Card:         cfg.CardOptions(),
		View:         cfg.ViewOptions(),
		Gallery:      cfg.GalleryOptions(),
		UnitsPerCell: cfg.Gallery.UnitsPerCell,
	})

	// The root command runs browse directly, without this flag.
	if check, _ := cmd.Flags().GetBool("check-updates"); check {
		go notifyUpdate(cmd.Context(), runner)
	}
	return runner.Run()
}

// notifyUpdate reports a newer release in the status bar. Failures are
// only logged.
func notifyUpdate(ctx context.Context, runner *tui.Runner) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	checker := version.NewChecker(version.DefaultAPIURL)
	defer checker.Close()

	release, err := checker.CheckForUpdate(ctx, Version)
	if err != nil {
		logging.Debug("update check failed", "error", err)
		return
	}
	if release != nil {
		runner.Notify(fmt.Sprintf("Доступна новая версия %s", release.TagName))
	}
}

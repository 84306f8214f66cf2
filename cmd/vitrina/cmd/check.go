package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/vitrina/internal/check"
	verrors "github.com/dbmrq/vitrina/internal/errors"
)

func newCheckCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "check",
		Short: "Check the catalog for problems",
		Long: `Load the catalog and report what the browser silently works around:
homepage ids missing from the stock, groups that end up hidden and products
without images.

With --probe every image reference is fetched as well, a few at a time and
rate limited. Relative references resolve against the catalog location.
A broken image makes the command fail.

Examples:
  vitrina check
  vitrina check --probe --source https://example.com/stock.json`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	c.Flags().Bool("probe", false, "Fetch every image reference")
	c.Flags().StringP("output", "o", "text", "Output format: text or json")
	return c
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	if output != "text" && output != "json" {
		return fmt.Errorf("invalid output format %q (want text or json)", output)
	}
	probe, _ := cmd.Flags().GetBool("probe")
	probe = probe || cfg.Check.ProbeImages

	closeLog := initLogging(cmd, cfg)
	defer closeLog()

	store, loader, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer loader.Close()

	var prober *check.Prober
	if probe {
		prober = check.NewProber(loader.Client(), cfg.Source.Location, check.ProberConfig{
			Concurrency:   cfg.Check.Concurrency,
			RatePerSecond: cfg.Check.RatePerSecond,
		})
	}

	report, err := check.Run(cmd.Context(), cfg.Source.Location, store, prober)
	if err != nil {
		return err
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else if err := report.WriteText(cmd.OutOrStdout()); err != nil {
		return err
	}

	if !report.Healthy() {
		return verrors.New(verrors.ErrData, fmt.Sprintf("%d image(s) could not be fetched", len(report.BrokenImages())))
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/vitrina/internal/version"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for vitrina.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  vitrina version           # Show detailed version info
  vitrina version --check   # Check for updates`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().BoolP("check", "c", false, "Check for available updates")
	c.Flags().String("api-url", version.DefaultAPIURL, "GitHub API URL")
	_ = c.Flags().MarkHidden("api-url")
	return c
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)
	cmd.Println(info.FullString())

	check, _ := cmd.Flags().GetBool("check")
	if check {
		apiURL, _ := cmd.Flags().GetString("api-url")
		return checkForUpdate(cmd, apiURL)
	}
	return nil
}

// checkForUpdate checks for available updates and reports.
func checkForUpdate(cmd *cobra.Command, apiURL string) error {
	cmd.Println("")
	cmd.Println("Checking for updates...")

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	checker := version.NewChecker(apiURL)
	defer checker.Close()

	release, err := checker.CheckForUpdate(ctx, Version)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if release == nil {
		cmd.Println("✓ You are running the latest version.")
		return nil
	}

	cmd.Println("")
	cmd.Printf("📦 A new version is available: %s (current: %s)\n", release.TagName, Version)
	cmd.Printf("Release notes: %s\n", release.HTMLURL)
	return nil
}

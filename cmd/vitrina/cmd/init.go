package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/vitrina/internal/config"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write .vitrina/config.yaml with every setting at its default value.

The file is optional: vitrina runs on defaults without it. Use --force to
overwrite an existing file.

Examples:
  vitrina init
  vitrina init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
	return c
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	cfg := config.NewConfig()
	if loc, _ := cmd.Flags().GetString("source"); loc != "" {
		cfg.Source.Location = loc
	}
	if err := config.Write(path, cfg, force); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("Edit it to point vitrina at your catalog, then run 'vitrina'.")
	return nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/vitrina/internal/catalog"
	"github.com/dbmrq/vitrina/internal/config"
	"github.com/dbmrq/vitrina/internal/logging"
	"github.com/dbmrq/vitrina/internal/source"
)

// loadSettings reads the .env file and the config file, then applies the
// persistent flag overrides.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := config.LoadEnvFiles(envFile); err != nil {
			return nil, err
		}
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if loc, _ := cmd.Flags().GetString("source"); loc != "" {
		cfg.Source.Location = loc
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		if _, err := logging.ParseLevel(level); err != nil {
			return nil, err
		}
		cfg.Log.Level = level
	}
	return cfg, nil
}

// initLogging starts file logging. A failure is reported and ignored.
// The returned func closes the log.
func initLogging(cmd *cobra.Command, cfg *config.Config) func() {
	if err := logging.InitGlobal(cfg.LoggingOptions()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}
	logging.Info("vitrina starting", "version", Version, "command", cmd.Name(), "source", cfg.Source.Location)
	return func() { _ = logging.CloseGlobal() }
}

// loadCatalog reads the configured catalog document. The loader is returned
// so its HTTP client can be reused; the caller closes it.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, *source.Loader, error) {
	loader := source.NewLoader(cfg.SourceOptions())
	ctx = logging.WithSource(ctx, cfg.Source.Location)

	doc, err := loader.Load(ctx, cfg.Source.Location)
	if err != nil {
		_ = loader.Close()
		return nil, nil, err
	}
	return catalog.NewStore(doc), loader, nil
}

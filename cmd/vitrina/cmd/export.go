package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/vitrina/internal/assortment"
	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/export"
)

func newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a static HTML page",
		Long: `Write the homepage carousels, the assortment grid and every product
to a single HTML file that opens in any browser.

Examples:
  vitrina export
  vitrina export --out public/index.html --sort asc`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}
	c.Flags().String("out", "vitrina.html", "Output file")
	c.Flags().String("title", export.DefaultTitle, "Page title")
	c.Flags().StringP("query", "q", "", "Filter the assortment by name or description")
	c.Flags().String("sort", "", "Assortment price sort: none, asc or desc (default from config)")
	return c
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	mode := cfg.Assortment.DefaultSort
	if s, _ := cmd.Flags().GetString("sort"); s != "" {
		if mode, err = assortment.ParseSortMode(s); err != nil {
			return err
		}
	}
	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")
	query, _ := cmd.Flags().GetString("query")

	closeLog := initLogging(cmd, cfg)
	defer closeLog()

	store, loader, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer loader.Close()

	err = export.WriteFile(out, store, card.NewRenderer(cfg.CardOptions()), export.Options{
		Title: title,
		Query: query,
		Sort:  mode,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Wrote %s (%d products)\n", out, store.Len())
	return nil
}

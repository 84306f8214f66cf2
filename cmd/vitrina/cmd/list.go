package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dbmrq/vitrina/internal/assortment"
	"github.com/dbmrq/vitrina/internal/card"
)

// listItem is one product in `vitrina list --output json`.
type listItem struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Article string `json:"article"`
	Image   string `json:"image"`
}

func newListCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "list",
		Short: "Print the assortment",
		Long: `Print the assortment grid without starting the browser.

The query matches product names and descriptions, ignoring case. Sorting is
by price and keeps dataset order for equal prices.

Examples:
  vitrina list
  vitrina list --query шкаф --sort asc
  vitrina list --output json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	c.Flags().StringP("query", "q", "", "Filter by name or description")
	c.Flags().String("sort", "", "Price sort: none, asc or desc (default from config)")
	c.Flags().StringP("output", "o", "text", "Output format: text or json")
	return c
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	if output != "text" && output != "json" {
		return fmt.Errorf("invalid output format %q (want text or json)", output)
	}
	mode := cfg.Assortment.DefaultSort
	if s, _ := cmd.Flags().GetString("sort"); s != "" {
		if mode, err = assortment.ParseSortMode(s); err != nil {
			return err
		}
	}
	query, _ := cmd.Flags().GetString("query")

	closeLog := initLogging(cmd, cfg)
	defer closeLog()

	store, loader, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer loader.Close()

	r := card.NewRenderer(cfg.CardOptions())
	products := assortment.Apply(store.Products(), query, mode)

	if output == "json" {
		items := make([]listItem, 0, len(products))
		for _, p := range products {
			c := r.Render(p)
			items = append(items, listItem{
				ID:      p.ID,
				Name:    p.Name,
				Price:   c.FormattedPrice,
				Article: p.Article.String(),
				Image:   c.ImageRef,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(products) == 0 {
		cmd.Println("Ничего не найдено")
		return nil
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Название", "Цена", "Артикул")
	for _, p := range products {
		c := r.Render(p)
		t.Row(fmt.Sprintf("%d", p.ID), p.Name, c.FormattedPrice, p.Article.String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	cmd.Printf("\n%d of %d products, sort: %s\n", len(products), store.Len(), mode.Label())
	return nil
}

// Package export writes the catalog as a single static HTML page: the
// homepage carousels, the assortment grid and one detail block per product.
package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/dbmrq/vitrina/internal/assortment"
	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/catalog"
	verrors "github.com/dbmrq/vitrina/internal/errors"
	"github.com/dbmrq/vitrina/internal/logging"
	"github.com/dbmrq/vitrina/internal/view"
)

// DefaultTitle is the page title when none is configured.
const DefaultTitle = "Витрина"

//go:embed page.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("page").Parse(pageTemplate))

// Options configures the exported page.
type Options struct {
	Title string
	// Query filters the assortment grid.
	Query string
	// Sort orders the assortment grid.
	Sort assortment.SortMode
}

type section struct {
	Title string
	Cards []card.Card
}

type page struct {
	Title    string
	Query    string
	SortName string
	Sections []section
	Grid     []card.Card
	Details  []card.Detail
	Empty    string
}

// Render writes the page for store to w.
func Render(w io.Writer, store *catalog.Store, r *card.Renderer, opts Options) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if !opts.Sort.IsValid() {
		opts.Sort = assortment.SortNone
	}

	p := page{
		Title:    opts.Title,
		Query:    opts.Query,
		SortName: opts.Sort.Label(),
		Grid:     r.RenderAll(assortment.Apply(store.Products(), opts.Query, opts.Sort)),
		Empty:    "Ничего не найдено",
	}
	for _, s := range view.BuildHome(store, r) {
		p.Sections = append(p.Sections, section{Title: s.Title, Cards: s.Cards})
	}
	for _, prod := range store.Products() {
		p.Details = append(p.Details, r.Detail(prod))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return verrors.Wrap(err, verrors.ErrData, "failed to render page")
	}
	_, err := buf.WriteTo(w)
	return err
}

// WriteFile renders the page into path, creating parent directories.
func WriteFile(path string, store *catalog.Store, r *card.Renderer, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Render(f, store, r, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logging.Info("catalog exported", "path", path, "products", store.Len())
	return nil
}

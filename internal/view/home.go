// Package view computes the browser's display model: homepage sections,
// the assortment grid, the active tab and the carousel scroll affordances.
// It holds state but never draws; the tui package applies the model to the
// terminal.
package view

import (
	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/catalog"
)

// Section is one homepage carousel.
type Section struct {
	Title  string
	Cards  []card.Card
	Scroll *Scroller
}

// BuildHome resolves the homepage groups against the store. Group order and
// item order are kept. Ids missing from the catalog are skipped and a group
// that resolves to no products is left out entirely.
func BuildHome(store *catalog.Store, r *card.Renderer) []Section {
	var sections []Section
	for _, g := range store.Groups() {
		items, _ := store.Resolve(g)
		if len(items) == 0 {
			continue
		}
		sections = append(sections, Section{
			Title:  g.Title,
			Cards:  r.RenderAll(items),
			Scroll: NewScroller(0, 0),
		})
	}
	return sections
}

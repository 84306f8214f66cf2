package view

import (
	"github.com/dbmrq/vitrina/internal/assortment"
	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/catalog"
)

// Tab is a top-level view.
type Tab int

const (
	// TabHome is the curated homepage.
	TabHome Tab = iota
	// TabAssortment is the searchable grid of all products.
	TabAssortment
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabHome, TabAssortment}

// String returns the string representation of the tab.
func (t Tab) String() string {
	if t == TabAssortment {
		return "assortment"
	}
	return "home"
}

// Title returns the tab caption.
func (t Tab) Title() string {
	if t == TabAssortment {
		return "Ассортимент"
	}
	return "Главная"
}

// IsValid returns true if the tab is known.
func (t Tab) IsValid() bool {
	return t == TabHome || t == TabAssortment
}

// Options configures a Controller.
type Options struct {
	// ScrollStep is the carousel button step in columns.
	ScrollStep int
	// Sort is the initial assortment sort mode.
	Sort assortment.SortMode
}

// Controller owns the browser state for one loaded catalog.
type Controller struct {
	store    *catalog.Store
	renderer *card.Renderer

	tab        Tab
	query      string
	sort       assortment.SortMode
	home       []Section
	grid       []catalog.Product
	cards      []card.Card
	pageOffset int
	scrollStep int
}

// NewController mounts a catalog: it builds the homepage sections and the
// full assortment grid.
func NewController(store *catalog.Store, r *card.Renderer, opts Options) *Controller {
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = DefaultScrollStep
	}
	if !opts.Sort.IsValid() {
		opts.Sort = assortment.SortNone
	}

	c := &Controller{
		store:      store,
		renderer:   r,
		tab:        TabHome,
		sort:       opts.Sort,
		scrollStep: opts.ScrollStep,
	}
	c.home = BuildHome(store, r)
	c.refreshGrid()
	return c
}

// Store returns the mounted catalog.
func (c *Controller) Store() *catalog.Store { return c.store }

// Renderer returns the card renderer.
func (c *Controller) Renderer() *card.Renderer { return c.renderer }

// Home returns the homepage sections.
func (c *Controller) Home() []Section { return c.home }

// Grid returns the assortment cards for the current query and sort mode.
func (c *Controller) Grid() []card.Card { return c.cards }

// GridProducts returns the products behind Grid, in the same order.
func (c *Controller) GridProducts() []catalog.Product { return c.grid }

// Query returns the search query.
func (c *Controller) Query() string { return c.query }

// SortMode returns the sort mode.
func (c *Controller) SortMode() assortment.SortMode { return c.sort }

// SetQuery updates the search query and recomputes the grid.
func (c *Controller) SetQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q
	c.refreshGrid()
}

// SetSortMode updates the sort mode and recomputes the grid.
func (c *Controller) SetSortMode(m assortment.SortMode) {
	if !m.IsValid() || m == c.sort {
		return
	}
	c.sort = m
	c.refreshGrid()
}

// CycleSortMode switches to the next sort mode.
func (c *Controller) CycleSortMode() assortment.SortMode {
	c.SetSortMode(c.sort.Next())
	return c.sort
}

func (c *Controller) refreshGrid() {
	c.grid = assortment.Apply(c.store.Products(), c.query, c.sort)
	c.cards = c.renderer.RenderAll(c.grid)
}

// ActiveTab returns the active tab.
func (c *Controller) ActiveTab() Tab { return c.tab }

// SwitchTab activates t and scrolls the page back to the top.
func (c *Controller) SwitchTab(t Tab) bool {
	if !t.IsValid() {
		return false
	}
	c.tab = t
	c.pageOffset = 0
	return true
}

// PageOffset returns the vertical scroll position of the active tab.
func (c *Controller) PageOffset() int { return c.pageOffset }

// SetPageOffset sets the vertical scroll position.
func (c *Controller) SetPageOffset(y int) {
	c.pageOffset = max(y, 0)
}

// Product looks up a product by id.
func (c *Controller) Product(id int) (catalog.Product, bool) {
	return c.store.Lookup(id)
}

// Detail returns the modal descriptor for a product id.
func (c *Controller) Detail(id int) (card.Detail, bool) {
	p, ok := c.store.Lookup(id)
	if !ok {
		return card.Detail{}, false
	}
	return c.renderer.Detail(p), true
}

// ScrollStep returns the carousel button step.
func (c *Controller) ScrollStep() int { return c.scrollStep }

// ScrollSection presses a scroll button of section i: dir < 0 scrolls left,
// dir > 0 scrolls right. It returns false for an unknown section.
func (c *Controller) ScrollSection(i, dir int) bool {
	if i < 0 || i >= len(c.home) {
		return false
	}
	switch {
	case dir < 0:
		c.home[i].Scroll.ScrollBy(-c.scrollStep)
	case dir > 0:
		c.home[i].Scroll.ScrollBy(c.scrollStep)
	}
	return true
}

// LayoutSections sizes every carousel for a viewport width and a fixed card
// width including spacing.
func (c *Controller) LayoutSections(viewport, cardWidth int) {
	for _, s := range c.home {
		s.Scroll.Resize(len(s.Cards)*cardWidth, viewport)
	}
}

// StepScroll advances every carousel animation one frame and reports
// whether any is still moving.
func (c *Controller) StepScroll() bool {
	moving := false
	for _, s := range c.home {
		if s.Scroll.Step() {
			moving = true
		}
	}
	return moving
}

// ScrollAnimating reports whether any carousel is moving.
func (c *Controller) ScrollAnimating() bool {
	for _, s := range c.home {
		if s.Scroll.Animating() {
			return true
		}
	}
	return false
}

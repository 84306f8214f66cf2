// Package card maps catalog products to display descriptors: the compact
// card shown in carousels and grids, and the detail block shown in the
// product modal. Rendering is pure and never fails.
package card

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dbmrq/vitrina/internal/catalog"
)

// Defaults for the renderer.
const (
	DefaultLocale      = "ru"
	DefaultCurrency    = "₽"
	DefaultPlaceholder = "placeholder.png"

	// maxFractionDigits matches the default precision of browser locale
	// number formatting.
	maxFractionDigits = 3
)

// Config configures a Renderer.
type Config struct {
	// Locale is a BCP 47 tag used for digit grouping (default: ru).
	Locale string
	// Currency is the symbol appended to every price (default: ₽).
	Currency string
	// Placeholder is the image reference used when a product has no images.
	Placeholder string
}

// DefaultConfig returns the default renderer configuration.
func DefaultConfig() Config {
	return Config{
		Locale:      DefaultLocale,
		Currency:    DefaultCurrency,
		Placeholder: DefaultPlaceholder,
	}
}

// Card is the display descriptor of a product card.
type Card struct {
	ProductID      int
	ImageRef       string
	Name           string
	FormattedPrice string
}

// Detail is the display descriptor of the product modal.
type Detail struct {
	ProductID   int
	Title       string
	Price       string
	Article     string
	Description string
	// Cover is the first image or the placeholder.
	Cover string
	// Images are the gallery images in display order; empty when the
	// product has none.
	Images []string
}

// Renderer renders products into display descriptors.
type Renderer struct {
	printer     *message.Printer
	currency    string
	placeholder string
}

// NewRenderer creates a renderer. Empty config fields fall back to defaults
// and an unparsable locale falls back to DefaultLocale.
func NewRenderer(cfg Config) *Renderer {
	defaults := DefaultConfig()
	if cfg.Locale == "" {
		cfg.Locale = defaults.Locale
	}
	if cfg.Currency == "" {
		cfg.Currency = defaults.Currency
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = defaults.Placeholder
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}

	return &Renderer{
		printer:     message.NewPrinter(tag),
		currency:    cfg.Currency,
		placeholder: cfg.Placeholder,
	}
}

// Placeholder returns the placeholder image reference.
func (r *Renderer) Placeholder() string {
	return r.placeholder
}

// Render returns the card descriptor for p.
func (r *Renderer) Render(p catalog.Product) Card {
	return Card{
		ProductID:      p.ID,
		ImageRef:       r.cover(p),
		Name:           p.Name,
		FormattedPrice: r.FormatPrice(p.Price),
	}
}

// RenderAll renders products in order.
func (r *Renderer) RenderAll(products []catalog.Product) []Card {
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = r.Render(p)
	}
	return cards
}

// Detail returns the modal descriptor for p.
func (r *Renderer) Detail(p catalog.Product) Detail {
	var images []string
	if p.HasImages() {
		images = append(images, p.Images...)
	}
	return Detail{
		ProductID:   p.ID,
		Title:       p.Name,
		Price:       r.FormatPrice(p.Price),
		Article:     "Арт: " + p.Article.String(),
		Description: p.Description,
		Cover:       r.cover(p),
		Images:      images,
	}
}

// FormatPrice formats price with locale digit grouping followed by the
// currency symbol, e.g. "45 990 ₽".
func (r *Renderer) FormatPrice(price float64) string {
	formatted := r.printer.Sprintf("%v", number.Decimal(price, number.MaxFractionDigits(maxFractionDigits)))
	return strings.TrimSpace(formatted) + " " + r.currency
}

func (r *Renderer) cover(p catalog.Product) string {
	if p.HasImages() {
		return p.Images[0]
	}
	return r.placeholder
}

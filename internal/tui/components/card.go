package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// Card geometry in terminal cells.
const (
	// CardWidth is the outer width of a card, border included.
	CardWidth = 24
	// CardHeight is the outer height of a card, border included.
	CardHeight = 5
	// CardGap is the blank space between neighbouring cards.
	CardGap = 2
	// CardSpan is the horizontal distance from one card to the next.
	CardSpan = CardWidth + CardGap
)

// cardInner is the text width inside border and padding.
const cardInner = CardWidth - 4

// RenderCard draws one product card: image reference, name, price.
func RenderCard(c card.Card, selected bool) string {
	lines := []string{
		styles.ImageRefStyle.Render(fit("▣ "+c.ImageRef, cardInner)),
		styles.NameStyle.Render(fit(c.Name, cardInner)),
		styles.PriceStyle.Render(fit(c.FormattedPrice, cardInner)),
	}

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(CardWidth - 2).Render(strings.Join(lines, "\n"))
}

// RenderCardRow draws cards side by side separated by CardGap.
func RenderCardRow(cards []card.Card, selected int) string {
	if len(cards) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", CardGap)
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, blockOf(gap, CardHeight))
		}
		parts = append(parts, RenderCard(c, i == selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// fit truncates s to width cells with an ellipsis.
func fit(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

// blockOf repeats a one-line string height times.
func blockOf(line string, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// padRight pads s with spaces to exactly width cells, cutting when longer.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Cut(s, 0, width)
	case w < width:
		return s + strings.Repeat(" ", width-w)
	default:
		return s
	}
}

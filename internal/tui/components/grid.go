package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/card"
	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// EmptyGridText is shown when the query matches nothing.
const EmptyGridText = "Ничего не найдено"

// GridColumns returns how many cards fit side by side in width cells.
func GridColumns(width int) int {
	if width < CardSpan {
		return 1
	}
	return (width + CardGap) / CardSpan
}

// RenderGrid draws cards in rows of GridColumns(width).
func RenderGrid(cards []card.Card, selected, width int) string {
	if len(cards) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(styles.MutedTextStyle.Render(EmptyGridText))
	}

	cols := GridColumns(width)
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		sel := -1
		if selected >= start && selected < end {
			sel = selected - start
		}
		rows = append(rows, RenderCardRow(cards[start:end], sel))
	}
	return strings.Join(rows, "\n")
}

// GridHitTest maps a click at column x and row y, both relative to the
// grid's top-left corner, to a card index.
func GridHitTest(x, y, width, count int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	cols := GridColumns(width)
	col := x / CardSpan
	if col >= cols || x%CardSpan >= CardWidth {
		return 0, false
	}
	i := (y/CardHeight)*cols + col
	if i >= count {
		return 0, false
	}
	return i, true
}

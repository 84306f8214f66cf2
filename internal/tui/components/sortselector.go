package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/assortment"
	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// SortSelector shows the price sort modes with the active one highlighted.
type SortSelector struct {
	mode assortment.SortMode
}

// NewSortSelector creates a selector showing mode.
func NewSortSelector(mode assortment.SortMode) *SortSelector {
	if !mode.IsValid() {
		mode = assortment.SortNone
	}
	return &SortSelector{mode: mode}
}

// SetMode selects mode. Unknown modes are ignored.
func (s *SortSelector) SetMode(mode assortment.SortMode) {
	if mode.IsValid() {
		s.mode = mode
	}
}

// Mode returns the selected mode.
func (s *SortSelector) Mode() assortment.SortMode {
	return s.mode
}

func (s *SortSelector) renderOption(m assortment.SortMode) string {
	if m == s.mode {
		return lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Render("● " + m.Label())
	}
	return styles.MutedTextStyle.Render("○ " + m.Label())
}

const sortPrefix = "Цена: "

// View renders the selector on one line.
func (s *SortSelector) View() string {
	parts := make([]string, 0, len(assortment.SortModes))
	for _, m := range assortment.SortModes {
		parts = append(parts, s.renderOption(m))
	}
	return styles.MutedTextStyle.Render(sortPrefix) + strings.Join(parts, "   ")
}

// ModeAt returns the mode under column x of the selector line.
func (s *SortSelector) ModeAt(x int) (assortment.SortMode, bool) {
	pos := lipgloss.Width(sortPrefix)
	for i, m := range assortment.SortModes {
		if i > 0 {
			pos += 3
		}
		w := lipgloss.Width(s.renderOption(m))
		if x >= pos && x < pos+w {
			return m, true
		}
		pos += w
	}
	return "", false
}

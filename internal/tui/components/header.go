// Package components provides reusable TUI components for vitrina.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// AppTitle is shown at the left of the header.
const AppTitle = "ВИТРИНА"

// Header is the top bar: application title followed by the tabs.
type Header struct {
	tabs   []string
	active int
	width  int
}

// NewHeader creates a new Header with the given tab captions.
func NewHeader(tabs ...string) *Header {
	return &Header{tabs: tabs}
}

// SetActive marks tab i as selected. Out-of-range values are ignored.
func (h *Header) SetActive(i int) {
	if i >= 0 && i < len(h.tabs) {
		h.active = i
	}
}

// Active returns the selected tab index.
func (h *Header) Active() int {
	return h.active
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) renderTab(i int) string {
	if i == h.active {
		return styles.TabActiveStyle.Render(h.tabs[i])
	}
	return styles.TabInactiveStyle.Render(h.tabs[i])
}

func (h *Header) separator() string {
	return lipgloss.NewStyle().Foreground(styles.Muted).Render("│")
}

// View renders the header.
func (h *Header) View() string {
	parts := []string{styles.TitleStyle.Render(AppTitle), " "}
	for i := range h.tabs {
		if i > 0 {
			parts = append(parts, h.separator())
		}
		parts = append(parts, h.renderTab(i))
	}
	content := strings.Join(parts, "")

	if h.width > 0 {
		return lipgloss.NewStyle().Width(h.width).MaxWidth(h.width).Render(content)
	}
	return content
}

// TabAt returns the tab under column x of the header line.
func (h *Header) TabAt(x int) (int, bool) {
	pos := lipgloss.Width(styles.TitleStyle.Render(AppTitle)) + 1
	sep := lipgloss.Width(h.separator())
	for i := range h.tabs {
		if i > 0 {
			pos += sep
		}
		w := lipgloss.Width(h.renderTab(i))
		if x >= pos && x < pos+w {
			return i, true
		}
		pos += w
	}
	return 0, false
}

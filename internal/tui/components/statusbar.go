package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Total     int    // products in the catalog
	Shown     int    // products in the current grid
	Sort      string // sort caption, empty on the homepage
	Loading   bool
	Message   string
	Shortcuts []ShortcutDef
}

// StatusBar displays catalog counters and keyboard shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{Shortcuts: HomeShortcuts},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// Data returns the current status bar data.
func (s *StatusBar) Data() StatusBarData {
	return s.data
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	label := lipgloss.NewStyle().Foreground(styles.MutedLight)
	value := lipgloss.NewStyle().Foreground(styles.Foreground)

	var left []string
	if s.data.Loading {
		left = append(left, label.Render("Загрузка…"))
	} else {
		left = append(left, label.Render("Товаров: ")+value.Render(fmt.Sprintf("%d", s.data.Total)))
		if s.data.Sort != "" {
			left = append(left,
				label.Render("Найдено: ")+value.Render(fmt.Sprintf("%d", s.data.Shown)),
				label.Render("Сортировка: ")+value.Render(s.data.Sort),
			)
		}
	}
	if s.data.Message != "" {
		left = append(left, lipgloss.NewStyle().Foreground(styles.MutedLight).Italic(true).Render(s.data.Message))
	}
	leftContent := strings.Join(left, sep)
	rightContent := NewShortcutBar(s.data.Shortcuts...).View()

	if s.width > 0 {
		padding := s.width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent) - 2
		if padding > 0 {
			return styles.StatusBarStyle.Width(s.width).Render(leftContent + strings.Repeat(" ", padding) + rightContent)
		}
		return styles.StatusBarStyle.Width(s.width).MaxWidth(s.width).Render(leftContent)
	}
	return styles.StatusBarStyle.Render(leftContent + "  " + rightContent)
}

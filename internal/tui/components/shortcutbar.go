package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar lists the keys that work on the current screen.
type ShortcutBar struct {
	shortcuts []ShortcutDef
}

func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{shortcuts: shortcuts}
}

// View joins the shortcuts on one line.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		parts = append(parts, styles.KeyStyle.Render(sc.Key)+styles.HelpStyle.Render(":"+sc.Desc))
	}
	sep := lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
	return strings.Join(parts, sep)
}

// Shortcut sets for each screen.
var (
	// HomeShortcuts are shortcuts for the homepage.
	HomeShortcuts = []ShortcutDef{
		{"↑↓", "раздел"},
		{"←→", "товар"},
		{"[ ]", "листать"},
		{"Enter", "открыть"},
		{"Tab", "вкладка"},
		{"?", "справка"},
	}

	// AssortmentShortcuts are shortcuts for the assortment grid.
	AssortmentShortcuts = []ShortcutDef{
		{"/", "поиск"},
		{"s", "сортировка"},
		{"←↑↓→", "товар"},
		{"Enter", "открыть"},
		{"Tab", "вкладка"},
		{"?", "справка"},
	}

	// SearchShortcuts are shortcuts while typing a query.
	SearchShortcuts = []ShortcutDef{
		{"Enter", "готово"},
		{"Esc", "готово"},
		{"Ctrl+U", "очистить"},
	}

	// ModalShortcuts are shortcuts for the product dialog.
	ModalShortcuts = []ShortcutDef{
		{"←", "назад"},
		{"→", "вперёд"},
		{"Esc", "закрыть"},
	}

	// NoticeShortcuts are shortcuts for the load failure notice.
	NoticeShortcuts = []ShortcutDef{
		{"Enter", "повторить"},
		{"q", "выход"},
	}
)

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// ShortcutGroup represents a group of related shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []ShortcutDef
}

// HelpOverlay displays keyboard shortcuts and help information.
type HelpOverlay struct {
	visible bool
	width   int
	groups  []ShortcutGroup
}

// NewHelpOverlay creates a new HelpOverlay component.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width: 56,
		groups: []ShortcutGroup{
			{
				Title: "Главная",
				Shortcuts: []ShortcutDef{
					{"↑/↓ k/j", "Предыдущий/следующий раздел"},
					{"←/→ h/l", "Предыдущий/следующий товар"},
					{"[ ]", "Листать карусель"},
					{"Enter", "Открыть товар"},
				},
			},
			{
				Title: "Ассортимент",
				Shortcuts: []ShortcutDef{
					{"/", "Поиск по названию и описанию"},
					{"s", "Сменить сортировку по цене"},
					{"Enter", "Открыть товар"},
				},
			},
			{
				Title: "Карточка товара",
				Shortcuts: []ShortcutDef{
					{"←/→", "Листать фотографии"},
					{"мышь", "Свайп по фотографии"},
					{"Esc", "Закрыть"},
				},
			},
			{
				Title: "Общие",
				Shortcuts: []ShortcutDef{
					{"Tab 1 2", "Переключить вкладку"},
					{"PgUp/PgDn", "Прокрутить страницу"},
					{"?", "Справка"},
					{"q", "Выход"},
				},
			},
		},
	}
}

// SetWidth sets the overlay width.
func (h *HelpOverlay) SetWidth(width int) {
	h.width = width
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update closes the overlay on any key or click.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		h.Hide()
		return func() tea.Msg { return HelpClosedMsg{} }
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			h.Hide()
			return func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Width(h.width - 6)
	b.WriteString(titleStyle.Render("Клавиши"))
	b.WriteString("\n\n")

	for i, group := range h.groups {
		b.WriteString(h.renderGroup(group))
		if i < len(h.groups)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Italic(true).Render("Любая клавиша закрывает справку"))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2).
		Render(b.String())
}

func (h *HelpOverlay) renderGroup(group ShortcutGroup) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Render(group.Title))
	b.WriteString("\n")

	keyStyle := lipgloss.NewStyle().Foreground(styles.Foreground).Bold(true).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(styles.MutedLight)
	for _, sc := range group.Shortcuts {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(sc.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(sc.Desc))
		b.WriteString("\n")
	}

	return b.String()
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}

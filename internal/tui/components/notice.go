package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// NoticeDialog tells the user that the catalog could not be loaded and
// offers to try again.
type NoticeDialog struct {
	visible bool
	title   string
	message string
	details string
	width   int
}

// NewNoticeDialog creates a new hidden NoticeDialog.
func NewNoticeDialog() *NoticeDialog {
	return &NoticeDialog{width: 60}
}

// Show displays the dialog. details is shown below the message in a muted
// style and may be empty.
func (n *NoticeDialog) Show(title, message, details string) {
	n.visible = true
	n.title = title
	n.message = message
	n.details = details
}

// ShowLoadFailure shows the catalog load failure notice. Transient
// failures suggest trying again; a rejected document asks for a fix first.
func (n *NoticeDialog) ShowLoadFailure(details string, transient bool) {
	message := "Каталог недоступен. Попробуйте загрузить его ещё раз."
	if !transient {
		message = "Файл каталога содержит ошибки. Исправьте его и загрузите снова."
	}
	n.Show("Не удалось загрузить каталог", message, details)
}

// Hide hides the dialog.
func (n *NoticeDialog) Hide() {
	n.visible = false
}

// IsVisible returns whether the dialog is visible.
func (n *NoticeDialog) IsVisible() bool {
	return n.visible
}

// Details returns the details text.
func (n *NoticeDialog) Details() string {
	return n.details
}

// SetWidth sets the dialog width.
func (n *NoticeDialog) SetWidth(width int) {
	n.width = width
}

// Update handles input messages.
func (n *NoticeDialog) Update(msg tea.Msg) tea.Cmd {
	if !n.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "enter", "r", " ":
			n.Hide()
			return func() tea.Msg { return NoticeRetryMsg{} }
		case "q", "esc", "ctrl+c":
			n.Hide()
			return func() tea.Msg { return NoticeQuitMsg{} }
		}
	}
	return nil
}

// View renders the dialog.
func (n *NoticeDialog) View() string {
	if !n.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Error).
		Bold(true).
		Padding(0, 1).
		Width(n.width - 6)
	b.WriteString(titleStyle.Render(n.title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(styles.Foreground).Width(n.width - 6).Render(n.message))
	b.WriteString("\n\n")

	if n.details != "" {
		b.WriteString(styles.MutedTextStyle.Width(n.width - 6).Render(n.details))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.ButtonPrimaryStyle.Render("[Enter] Повторить"))
	b.WriteString("  ")
	b.WriteString(styles.ButtonSecondaryUnfocusedStyle.Render("[q] Выход"))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Error).
		Padding(1, 2).
		Render(b.String())
}

// NoticeRetryMsg is sent when the user asks to load the catalog again.
type NoticeRetryMsg struct{}

// NoticeQuitMsg is sent when the user gives up.
type NoticeQuitMsg struct{}

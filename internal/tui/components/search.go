package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// SearchPlaceholder is shown in an empty search field.
const SearchPlaceholder = "Поиск по названию и описанию"

// SearchInput wraps the bubbles text input as the assortment search field.
type SearchInput struct {
	model   textinput.Model
	focused bool
	width   int
}

// NewSearchInput creates an unfocused, empty search field.
func NewSearchInput() *SearchInput {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "🔍 "
	ti.CharLimit = 128
	ti.Width = 40

	return &SearchInput{model: ti}
}

// Focus focuses the search field.
func (s *SearchInput) Focus() tea.Cmd {
	s.focused = true
	return s.model.Focus()
}

// Blur removes focus from the search field.
func (s *SearchInput) Blur() {
	s.focused = false
	s.model.Blur()
}

// Focused returns whether the search field is focused.
func (s *SearchInput) Focused() bool {
	return s.focused
}

// SetValue sets the query text.
func (s *SearchInput) SetValue(value string) {
	s.model.SetValue(value)
}

// Value returns the current query text.
func (s *SearchInput) Value() string {
	return s.model.Value()
}

// SetWidth sets the width of the field.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.model.Width = max(width-8, 10)
}

// Update forwards messages to the text input while focused. It reports
// whether the value changed.
func (s *SearchInput) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !s.focused {
		return nil, false
	}
	before := s.model.Value()

	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+u" {
		s.model.Reset()
		return nil, before != ""
	}

	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd, s.model.Value() != before
}

// View renders the search field.
func (s *SearchInput) View() string {
	style := styles.BoxStyle
	if s.focused {
		style = styles.FocusedBoxStyle
	}
	if s.width > 0 {
		style = style.Width(s.width - 2)
	}
	return style.Render(s.model.View())
}

// Height is the number of lines the field occupies.
func (s *SearchInput) Height() int {
	return lipgloss.Height(s.View())
}

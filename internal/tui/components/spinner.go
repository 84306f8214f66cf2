package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/vitrina/internal/tui/styles"
)

// Spinner is the loading indicator shown while the catalog document is
// fetched. Every Start counts as one load attempt.
type Spinner struct {
	spinner  spinner.Model
	label    string
	now      func() time.Time
	started  time.Time
	attempts int
}

// NewSpinner creates a loading indicator reading time from now.
func NewSpinner(label string, now func() time.Time) *Spinner {
	if now == nil {
		now = time.Now
	}
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{spinner: s, label: label, now: now}
}

// Start begins a load attempt.
func (s *Spinner) Start() {
	s.started = s.now()
	s.attempts++
}

// Attempts returns how many loads were started.
func (s *Spinner) Attempts() int {
	return s.attempts
}

// Elapsed returns the time spent in the current attempt.
func (s *Spinner) Elapsed() time.Duration {
	if s.started.IsZero() {
		return 0
	}
	return s.now().Sub(s.started)
}

// Tick advances the animation.
func (s *Spinner) Tick() tea.Msg {
	return s.spinner.Tick()
}

func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

func (s *Spinner) View() string {
	line := s.spinner.View() + " " + lipgloss.NewStyle().Foreground(styles.Foreground).Render(s.label)

	var extra string
	if s.attempts > 1 {
		extra = fmt.Sprintf("попытка %d", s.attempts)
	}
	if d := s.Elapsed().Truncate(time.Second); d > 0 {
		if extra != "" {
			extra += ", "
		}
		extra += d.String()
	}
	if extra != "" {
		line += " " + lipgloss.NewStyle().Foreground(styles.MutedLight).Render("("+extra+")")
	}
	return line
}

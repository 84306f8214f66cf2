package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/vitrina/internal/logging"
)

// Runner owns the Bubble Tea program that hosts the browser.
type Runner struct {
	ctx     context.Context
	model   *Model
	program *tea.Program
}

// NewRunner creates a runner for the browser. The program uses the alternate
// screen and reports mouse presses, releases and motion while a button is held.
func NewRunner(ctx context.Context, opts Options, extra ...tea.ProgramOption) *Runner {
	model := New(opts)

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	programOpts = append(programOpts, extra...)

	return &Runner{
		ctx:     ctx,
		model:   model,
		program: tea.NewProgram(model, programOpts...),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (r *Runner) Run() error {
	_, err := r.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && r.ctx.Err() != nil {
		logging.Info("browser stopped by context")
		return nil
	}
	return err
}

// Notify shows text in the status bar. Safe to call from any goroutine; it
// blocks until the program receives the message or stops.
func (r *Runner) Notify(text string) {
	r.program.Send(StatusMsg{Text: text})
}

// Program returns the underlying program.
func (r *Runner) Program() *tea.Program {
	return r.program
}

// Model returns the browser model.
func (r *Runner) Model() *Model {
	return r.model
}

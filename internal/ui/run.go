package ui

import (
	"context"
	"errors"

	"github.com/atomicstack/curselect/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// Run executes the Bubble Tea program for session and reports how it ended.
// widget.Continue means the program stopped without the user deciding.
func Run(ctx context.Context, session Session, opts Options) (widget.Control, error) {
	model := NewModel(session, opts)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return widget.Continue, ctx.Err()
		}
		return widget.Continue, err
	}
	if m, ok := final.(*Model); ok {
		return m.Outcome(), nil
	}
	return model.Outcome(), nil
}

package tui

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/vcsmake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetPicker = (*Picker)(nil)

// Picker implements ports.TargetPicker with a Bubble Tea program.
type Picker struct {
	opts []tea.ProgramOption
}

// NewPicker creates a Picker. opts are passed to every program it runs.
func NewPicker(opts ...tea.ProgramOption) *Picker {
	return &Picker{opts: opts}
}

// Pick runs the checklist until the user saves or cancels.
func (p *Picker) Pick(ctx context.Context, title string, available, selected []string) ([]string, bool, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.opts...)
	program := tea.NewProgram(NewModel(title, available, selected), opts...)

	final, err := program.Run()
	if err != nil {
		return nil, false, zerr.Wrap(err, "target picker failed")
	}

	m, ok := final.(Model)
	if !ok || !m.Accepted {
		return nil, false, nil
	}
	return slices.Clone(m.Checked), true, nil
}

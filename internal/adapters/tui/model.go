// Package tui provides the interactive target checklist used by "make select".
package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the checklist state. Checked targets are kept in the order they were checked.
type Model struct {
	Title     string
	Targets   []string
	Checked   []string
	Cursor    int
	Accepted  bool
	Cancelled bool

	keys keyMap
	help help.Model
}

// NewModel creates a checklist over available with selected already checked.
// Selected targets missing from available are listed after it.
func NewModel(title string, available, selected []string) Model {
	targets := slices.Clone(available)
	for _, t := range selected {
		if !slices.Contains(targets, t) {
			targets = append(targets, t)
		}
	}

	var checked []string
	for _, t := range selected {
		if !slices.Contains(checked, t) {
			checked = append(checked, t)
		}
	}

	return Model{
		Title:   title,
		Targets: targets,
		Checked: checked,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.Cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.Accepted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.Cursor > 0 {
				m.Cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.Cursor < len(m.Targets)-1 {
				m.Cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.Targets) > 0 {
				m.toggle(m.Targets[m.Cursor])
			}
		case key.Matches(msg, m.keys.All):
			m.toggleAll()
		}
	}

	return m, nil
}

// IsChecked reports whether target is checked.
//
//nolint:gocritic // hugeParam ignored
func (m Model) IsChecked(target string) bool {
	return slices.Contains(m.Checked, target)
}

func (m *Model) toggle(target string) {
	if idx := slices.Index(m.Checked, target); idx >= 0 {
		m.Checked = slices.Delete(m.Checked, idx, idx+1)
		return
	}
	m.Checked = append(m.Checked, target)
}

// toggleAll checks every target, or clears the list when all are checked already.
func (m *Model) toggleAll() {
	if len(m.Checked) == len(m.Targets) {
		m.Checked = nil
		return
	}
	for _, t := range m.Targets {
		if !slices.Contains(m.Checked, t) {
			m.Checked = append(m.Checked, t)
		}
	}
}

package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vcsmake/internal/adapters/tui"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(tui.Model)
		require.True(t, ok)
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := tui.NewModel("Make", []string{"all", "clean"}, []string{"install", "all", "install"})

	assert.Equal(t, []string{"all", "clean", "install"}, m.Targets)
	assert.Equal(t, []string{"install", "all"}, m.Checked)
	assert.True(t, m.IsChecked("all"))
	assert.False(t, m.IsChecked("clean"))
}

func TestModel_ToggleKeepsSelectionOrder(t *testing.T) {
	m := tui.NewModel("Make", []string{"all", "clean", "install"}, nil)

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyUp},
		keyRunes("x"),
	)

	assert.Equal(t, []string{"install", "all"}, m.Checked)

	m = send(t, m, keyRunes("x"))
	assert.Equal(t, []string{"install"}, m.Checked)
}

func TestModel_CursorBounds(t *testing.T) {
	m := tui.NewModel("Make", []string{"all", "clean"}, nil)

	m = send(t, m, keyRunes("k"))
	assert.Equal(t, 0, m.Cursor)

	m = send(t, m, keyRunes("j"), keyRunes("j"), keyRunes("j"))
	assert.Equal(t, 1, m.Cursor)
}

func TestModel_ToggleAll(t *testing.T) {
	m := tui.NewModel("Make", []string{"all", "clean", "install"}, []string{"clean"})

	m = send(t, m, keyRunes("a"))
	assert.Equal(t, []string{"clean", "all", "install"}, m.Checked)

	m = send(t, m, keyRunes("a"))
	assert.Empty(t, m.Checked)
}

func TestModel_AcceptAndCancel(t *testing.T) {
	m := tui.NewModel("Make", []string{"all"}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	accepted, ok := next.(tui.Model)
	require.True(t, ok)
	assert.True(t, accepted.Accepted)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	next, _ = m.Update(keyRunes("q"))
	cancelled, ok := next.(tui.Model)
	require.True(t, ok)
	assert.True(t, cancelled.Cancelled)
	assert.False(t, cancelled.Accepted)
}

func TestModel_ToggleWithoutTargets(t *testing.T) {
	m := tui.NewModel("Make", nil, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Empty(t, m.Checked)
}

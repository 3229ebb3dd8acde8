package tui

import (
	"strings"

	"go.trai.ch/vcsmake/internal/ui/style"
)

// View renders the checklist followed by the key help.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	if m.Accepted || m.Cancelled {
		return ""
	}

	var s strings.Builder

	s.WriteString(style.Title.Render(m.Title) + "\n\n")

	if len(m.Targets) == 0 {
		s.WriteString(style.Muted.Render("  no targets available") + "\n")
	}

	for i, target := range m.Targets {
		pointer := " "
		if i == m.Cursor {
			pointer = style.Cursor.Render(style.Pointer)
		}

		icon := style.Muted.Render(style.Circle)
		name := target
		if m.IsChecked(target) {
			icon = style.Selected.Render(style.Check)
			name = style.Selected.Render(target)
		}

		s.WriteString(pointer + " " + icon + " " + name + "\n")
	}

	s.WriteString("\n" + m.help.View(m.keys) + "\n")
	return s.String()
}

// Package style holds the colors and icons shared by the logger, the CLI and the target picker.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Pointer = "›"
)

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
	Selected = lipgloss.NewStyle().Foreground(Green)
	Cursor   = lipgloss.NewStyle().Bold(true).Foreground(Iris)
)

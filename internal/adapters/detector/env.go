// Package detector decides whether the CLI may prompt the user interactively.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how the CLI talks to the user.
type OutputMode int

const (
	// ModeAuto defers to DetectEnvironment.
	ModeAuto OutputMode = iota
	// ModeInteractive allows full screen prompts such as the target picker.
	ModeInteractive
	// ModePlain prints plain lines only.
	ModePlain
)

// DetectEnvironment returns ModeInteractive when both stdin and stdout are terminals
// and no CI environment variable is set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	return detect(isTTY, os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModePlain
	}
	return ModeInteractive
}

// ResolveMode applies the user's --output flag to the detected mode.
// Unknown values keep the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "interactive", "tui":
		return ModeInteractive
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}

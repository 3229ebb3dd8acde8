package shell

import (
	"path/filepath"
	"strings"

	"go.trai.ch/vcsmake/internal/core/domain"
)

// Locator implements ports.CommandLocator using the PATH of the given environment.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the executable path of command in env.
func (l *Locator) Locate(command string, env domain.Environment) (string, bool) {
	if command == "" {
		return "", false
	}
	if filepath.IsAbs(command) || strings.ContainsRune(command, filepath.Separator) {
		if findExecutable(command) != nil {
			return "", false
		}
		return command, true
	}
	path, err := lookPath(command, []string{"PATH=" + env.Get("PATH")})
	if err != nil {
		return "", false
	}
	return path, true
}

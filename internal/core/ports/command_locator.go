package ports

import "go.trai.ch/vcsmake/internal/core/domain"

// CommandLocator resolves command names against the PATH of an environment.
//
//go:generate mockgen -source=command_locator.go -destination=mocks/mock_command_locator.go -package=mocks
type CommandLocator interface {
	// Locate returns the executable path of command and whether it was found.
	// Commands given as a path are checked directly.
	Locate(command string, env domain.Environment) (string, bool)
}

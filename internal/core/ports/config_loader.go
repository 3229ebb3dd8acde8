package ports

import "go.trai.ch/vcsmake/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the project file starting at cwd and returns the parsed project.
	Load(cwd string) (*domain.Project, error)
	// Find returns the path of the nearest project file at or above cwd.
	Find(cwd string) (string, bool)
}

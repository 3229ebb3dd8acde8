// Package app implements the application layer for vcsmake.
package app

import (
	"go.trai.ch/vcsmake/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	vcs          ports.VersionControl
	executor     ports.Executor
	settings     ports.SettingsStore
	toolchains   ports.ToolchainFactory
	locator      ports.CommandLocator
	watcher      ports.Watcher
	picker       ports.TargetPicker
	logger       ports.Logger

	detectMode func() detector.OutputMode
	baseEnv    *domain.Environment
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	vcs ports.VersionControl,
	executor ports.Executor,
	settings ports.SettingsStore,
	toolchains ports.ToolchainFactory,
	locator ports.CommandLocator,
	watcher ports.Watcher,
	picker ports.TargetPicker,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		vcs:          vcs,
		executor:     executor,
		settings:     settings,
		toolchains:   toolchains,
		locator:      locator,
		watcher:      watcher,
		picker:       picker,
		logger:       log,
		detectMode:   detector.DetectEnvironment,
	}
}

// WithModeDetection replaces the terminal detection used before prompting.
// This is primarily used for testing.
func (a *App) WithModeDetection(detect func() detector.OutputMode) *App {
	a.detectMode = detect
	return a
}

// WithBaseEnvironment sets the environment summaries are derived from instead of the
// environment of the current process.
func (a *App) WithBaseEnvironment(env domain.Environment) *App {
	env = env.Clone()
	a.baseEnv = &env
	return a
}

// loadProject loads the project file found at or above cwd.
func (a *App) loadProject(cwd string) (*domain.Project, error) {
	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

// toolchain builds the toolchain selected by the kit. It returns nil when the kit has none.
func (a *App) toolchain(project *domain.Project) (ports.Toolchain, error) {
	spec, ok := project.Toolchain()
	if !ok {
		return nil, nil
	}
	tc, err := a.toolchains.New(spec)
	if err != nil {
		return nil, zerr.With(err, "toolchain", spec.ID)
	}
	return tc, nil
}

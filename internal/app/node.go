package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcsmake/internal/adapters/bazaar"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/vcsmake/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups the App with the adapters the CLI uses directly.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			bazaar.NodeID,
			shell.NodeID,
			settings.NodeID,
			toolchain.NodeID,
			shell.LocatorNodeID,
			watcher.NodeID,
			tui.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	vcs, err := graft.Dep[ports.VersionControl](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	toolchains, err := graft.Dep[ports.ToolchainFactory](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.CommandLocator](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	picker, err := graft.Dep[ports.TargetPicker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, vcs, executor, store, toolchains, locator, w, picker, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          a,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}

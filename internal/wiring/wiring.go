// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vcsmake/internal/adapters/bazaar"
	_ "go.trai.ch/vcsmake/internal/adapters/config"
	_ "go.trai.ch/vcsmake/internal/adapters/fs"
	_ "go.trai.ch/vcsmake/internal/adapters/logger"
	_ "go.trai.ch/vcsmake/internal/adapters/settings"
	_ "go.trai.ch/vcsmake/internal/adapters/shell"
	_ "go.trai.ch/vcsmake/internal/adapters/toolchain"
	_ "go.trai.ch/vcsmake/internal/adapters/tui"
	_ "go.trai.ch/vcsmake/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/vcsmake/internal/app"
)

package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcsmake/internal/adapters/shell"
	"go.trai.ch/vcsmake/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain factory Graft node.
const NodeID graft.ID = "adapter.toolchain_factory"

func init() {
	graft.Register(graft.Node[ports.ToolchainFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.LocatorNodeID},
		Run: func(ctx context.Context) (ports.ToolchainFactory, error) {
			locator, err := graft.Dep[ports.CommandLocator](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(locator), nil
		},
	})
}

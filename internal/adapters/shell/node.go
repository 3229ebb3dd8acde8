package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcsmake/internal/adapters/logger"
	"go.trai.ch/vcsmake/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// LocatorNodeID is the unique identifier for the command locator Graft node.
	LocatorNodeID graft.ID = "adapter.locator"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[ports.CommandLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommandLocator, error) {
			return NewLocator(), nil
		},
	})
}

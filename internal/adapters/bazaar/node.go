package bazaar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcsmake/internal/adapters/fs"
	"go.trai.ch/vcsmake/internal/adapters/logger"
	"go.trai.ch/vcsmake/internal/adapters/shell"
	"go.trai.ch/vcsmake/internal/core/ports"
)

// NodeID is the unique identifier for the Bazaar client Graft node.
const NodeID graft.ID = "adapter.bazaar"

func init() {
	graft.Register(graft.Node[ports.VersionControl]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionControl, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(executor, fsys, log), nil
		},
	})
}

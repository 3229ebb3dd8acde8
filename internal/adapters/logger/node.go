package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcsmake/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run:       runNode,
	})
}

// runNode builds the process logger. The --json flag can still switch the format later.
func runNode(_ context.Context) (ports.Logger, error) {
	return NewFromEnv(os.Getenv), nil
}

package tui

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vcsmake/internal/core/ports"
)

// NodeID is the unique identifier for the target picker Graft node.
const NodeID graft.ID = "adapter.target_picker"

func init() {
	graft.Register(graft.Node[ports.TargetPicker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TargetPicker, error) {
			return NewPicker(), nil
		},
	})
}

package identity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskscope/internal/core/ports"
)

// NodeID is the unique identifier for the identity tracker Graft node.
const NodeID graft.ID = "adapter.identity_tracker"

func init() {
	graft.Register(graft.Node[ports.IdentityTracker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IdentityTracker, error) {
			return NewTracker(), nil
		},
	})
}

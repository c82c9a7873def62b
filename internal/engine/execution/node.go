package execution

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskscope/internal/adapters/identity"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskscope/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskscope/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskscope/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/taskscope/internal/core/ports"
)

// NodeID is the unique identifier for the executer chain Graft node.
const NodeID graft.ID = "engine.executer"

// Executer is the fully decorated executer used by the application.
type Executer struct {
	ports.TaskExecuter
}

func init() {
	graft.Register(graft.Node[*Executer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			identity.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Executer, error) {
			leaf, err := graft.Dep[ports.TaskExecuter](ctx)
			if err != nil {
				return nil, err
			}

			tracker, err := graft.Dep[ports.IdentityTracker](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Executer{
				TaskExecuter: Chain(leaf,
					WithTracing(tracer),
					WithTracking(tracker, log),
				),
			}, nil
		},
	})
}

package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskscope/internal/adapters/logger"
	"go.trai.ch/taskscope/internal/adapters/problems"
	"go.trai.ch/taskscope/internal/core/ports"
)

// NodeID is the unique identifier for the shell executer Graft node.
const NodeID graft.ID = "adapter.shell_executer"

func init() {
	graft.Register(graft.Node[ports.TaskExecuter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, problems.NodeID},
		Run: func(ctx context.Context) (ports.TaskExecuter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[*problems.Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecuter(log, registry), nil
		},
	})
}

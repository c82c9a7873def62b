package problems

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/taskscope/internal/adapters/identity"
	"go.trai.ch/taskscope/internal/adapters/logger"
	"go.trai.ch/taskscope/internal/adapters/telemetry"
	"go.trai.ch/taskscope/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the problems registry Graft node.
	NodeID graft.ID = "adapter.problems"
	// MetricsNodeID is the unique identifier for the metrics registry Graft node.
	MetricsNodeID graft.ID = "adapter.metrics"
)

func init() {
	graft.Register(graft.Node[*prometheus.Registry]{
		ID:        MetricsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*prometheus.Registry, error) {
			return prometheus.NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{identity.NodeID, logger.NodeID, telemetry.TracerNodeID, MetricsNodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			tracker, err := graft.Dep[ports.IdentityTracker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[*prometheus.Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(tracker, log, tracer, reg)
		},
	})
}

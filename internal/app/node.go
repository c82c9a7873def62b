package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskscope/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/taskscope/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/taskscope/internal/adapters/problems"  //nolint:depguard // Wired in app layer
	"go.trai.ch/taskscope/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/taskscope/internal/core/ports"
	"go.trai.ch/taskscope/internal/engine/execution"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			execution.NodeID,
			problems.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executer, err := graft.Dep[*execution.Executer](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*problems.Registry](ctx)
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

	return New(loader, executer, registry, log, tracer), nil
}

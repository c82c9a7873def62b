// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/taskscope/internal/adapters/config"
	_ "go.trai.ch/taskscope/internal/adapters/identity"
	_ "go.trai.ch/taskscope/internal/adapters/logger"
	_ "go.trai.ch/taskscope/internal/adapters/problems"
	_ "go.trai.ch/taskscope/internal/adapters/shell"
	_ "go.trai.ch/taskscope/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/taskscope/internal/app"
	_ "go.trai.ch/taskscope/internal/engine/execution"
)

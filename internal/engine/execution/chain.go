// Package execution composes task executers.
//
// Every stage implements ports.TaskExecuter; decorators wrap exactly one inner
// executer, so a chain is built by nesting them around a leaf executer.
package execution

import (
	"context"

	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
)

// Decorator wraps a TaskExecuter with additional behavior.
type Decorator func(inner ports.TaskExecuter) ports.TaskExecuter

// Chain wraps leaf with the given decorators. The first decorator is outermost.
func Chain(leaf ports.TaskExecuter, decorators ...Decorator) ports.TaskExecuter {
	executer := leaf
	for i := len(decorators) - 1; i >= 0; i-- {
		executer = decorators[i](executer)
	}
	return executer
}

// ExecuterFunc adapts a function to the ports.TaskExecuter interface.
type ExecuterFunc func(
	ctx context.Context,
	task *domain.Task,
	state *domain.TaskState,
	execCtx *domain.ExecutionContext,
) (*domain.ExecutionResult, error)

// Execute calls f.
func (f ExecuterFunc) Execute(
	ctx context.Context,
	task *domain.Task,
	state *domain.TaskState,
	execCtx *domain.ExecutionContext,
) (*domain.ExecutionResult, error) {
	return f(ctx, task, state, execCtx)
}

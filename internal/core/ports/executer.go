// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/taskscope/internal/core/domain"
)

// TaskExecuter defines the shared contract for executing a single task.
// Decorators implement it and wrap another TaskExecuter, so chains compose
// without special-casing.
//
//go:generate mockgen -source=executer.go -destination=mocks/mock_executer.go -package=mocks
type TaskExecuter interface {
	// Execute runs the given task.
	//
	// state and execCtx are owned by the caller; decorators pass them through unchanged.
	// It returns the execution result, or an error if the task execution fails.
	Execute(
		ctx context.Context,
		task *domain.Task,
		state *domain.TaskState,
		execCtx *domain.ExecutionContext,
	) (*domain.ExecutionResult, error)
}

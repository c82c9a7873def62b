package execution

import (
	"context"

	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
)

// TrackingExecuter makes the identity of the executing task available to problem
// reporting for the duration of the inner execution.
type TrackingExecuter struct {
	inner   ports.TaskExecuter
	tracker ports.IdentityTracker
	logger  ports.Logger
}

// NewTrackingExecuter wraps inner so that every execution is tracked by tracker.
func NewTrackingExecuter(inner ports.TaskExecuter, tracker ports.IdentityTracker, logger ports.Logger) *TrackingExecuter {
	return &TrackingExecuter{
		inner:   inner,
		tracker: tracker,
		logger:  logger,
	}
}

// WithTracking returns a Decorator that applies a TrackingExecuter.
func WithTracking(tracker ports.IdentityTracker, logger ports.Logger) Decorator {
	return func(inner ports.TaskExecuter) ports.TaskExecuter {
		return NewTrackingExecuter(inner, tracker, logger)
	}
}

// Execute tracks task's identity on a lane of its own, delegates to the inner
// executer and clears the lane before returning, whatever way the inner call exits.
// The inner result and error are returned unchanged.
func (e *TrackingExecuter) Execute(
	ctx context.Context,
	task *domain.Task,
	state *domain.TaskState,
	execCtx *domain.ExecutionContext,
) (*domain.ExecutionResult, error) {
	ctx = e.tracker.WithLane(ctx)

	id := domain.NewTaskIdentity(task.Identity.BuildPath, task.Identity.TaskPath)
	if err := e.tracker.SetCurrent(ctx, id); err != nil {
		if e.logger != nil {
			e.logger.Error(err)
		}
		return nil, err
	}
	defer e.tracker.Clear(ctx)

	return e.inner.Execute(ctx, task, state, execCtx)
}

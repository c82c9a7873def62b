package execution

import (
	"context"

	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
)

// Span attribute keys set by TracingExecuter.
const (
	AttrBuildPath = "build.path"
	AttrTaskPath  = "task.path"
	AttrOutcome   = "task.outcome"
)

// TracingExecuter wraps every task execution in a span.
type TracingExecuter struct {
	inner  ports.TaskExecuter
	tracer ports.Tracer
}

// NewTracingExecuter wraps inner so that every execution is recorded by tracer.
func NewTracingExecuter(inner ports.TaskExecuter, tracer ports.Tracer) *TracingExecuter {
	return &TracingExecuter{inner: inner, tracer: tracer}
}

// WithTracing returns a Decorator that applies a TracingExecuter.
func WithTracing(tracer ports.Tracer) Decorator {
	return func(inner ports.TaskExecuter) ports.TaskExecuter {
		return NewTracingExecuter(inner, tracer)
	}
}

// Execute starts a span named after the task, delegates and ends the span.
func (e *TracingExecuter) Execute(
	ctx context.Context,
	task *domain.Task,
	state *domain.TaskState,
	execCtx *domain.ExecutionContext,
) (*domain.ExecutionResult, error) {
	ctx, span := e.tracer.Start(ctx, task.Identity.String(),
		ports.WithAttribute(AttrBuildPath, task.Identity.BuildPath),
		ports.WithAttribute(AttrTaskPath, task.Identity.TaskPath),
	)
	defer span.End()

	res, err := e.inner.Execute(ctx, task, state, execCtx)
	if err != nil {
		span.RecordError(err)
	}
	if state != nil {
		span.SetAttribute(AttrOutcome, string(state.Outcome))
	}
	return res, err
}

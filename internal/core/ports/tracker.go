package ports

import (
	"context"

	"go.trai.ch/taskscope/internal/core/domain"
)

// IdentityTracker holds the identity of the task currently executing on an execution lane.
// Lanes are carried by context.Context, so concurrent executions never observe each other.
//
//go:generate mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks
type IdentityTracker interface {
	// WithLane returns a child context carrying a fresh, empty execution lane.
	WithLane(ctx context.Context) context.Context

	// SetCurrent records id as the current identity of the lane in ctx.
	// It fails if ctx carries no lane or the lane already tracks an identity.
	SetCurrent(ctx context.Context, id domain.TaskIdentity) error

	// Current returns the identity tracked by the lane in ctx, if any.
	Current(ctx context.Context) (domain.TaskIdentity, bool)

	// Clear removes the tracked identity from the lane in ctx. It is a no-op when nothing is set.
	Clear(ctx context.Context)
}

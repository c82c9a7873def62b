// Package identity tracks which task is executing on an execution lane.
//
// A lane is a slot carried by context.Context. Every task execution gets its own
// lane, so concurrent executions on different goroutines never observe each other's
// identity. Goroutines started by a task share its lane and stop seeing the identity
// once the owning execution clears it.
package identity

import (
	"context"
	"sync/atomic"

	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/zerr"
)

type laneKey struct{}

type lane struct {
	current atomic.Pointer[domain.TaskIdentity]
}

// Tracker implements ports.IdentityTracker using context-carried lanes.
// It holds no state of its own and is safe for concurrent use.
type Tracker struct{}

// NewTracker creates a new Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// WithLane returns a child context carrying a fresh, empty lane.
// A lane already present in ctx is shadowed, not modified.
func (t *Tracker) WithLane(ctx context.Context) context.Context {
	return context.WithValue(ctx, laneKey{}, &lane{})
}

// SetCurrent records id as the identity of the lane in ctx.
//
// Setting an identity on a lane that already tracks one is rejected with
// domain.ErrIdentityAlreadyTracked and the tracked identity is kept, so a stale
// identity is never silently replaced.
func (t *Tracker) SetCurrent(ctx context.Context, id domain.TaskIdentity) error {
	l, ok := laneFrom(ctx)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrNoExecutionLane, "cannot track task identity"), "task", id.String())
	}

	if l.current.CompareAndSwap(nil, &id) {
		return nil
	}

	err := zerr.With(zerr.Wrap(domain.ErrIdentityAlreadyTracked, "cannot track task identity"), "task", id.String())
	if prev := l.current.Load(); prev != nil {
		err = zerr.With(err, "tracked_task", prev.String())
	}
	return err
}

// Current returns the identity tracked by the lane in ctx.
func (t *Tracker) Current(ctx context.Context) (domain.TaskIdentity, bool) {
	l, ok := laneFrom(ctx)
	if !ok {
		return domain.TaskIdentity{}, false
	}
	id := l.current.Load()
	if id == nil {
		return domain.TaskIdentity{}, false
	}
	return *id, true
}

// Clear removes the identity from the lane in ctx. Clearing an empty lane, or a
// context without a lane, does nothing.
func (t *Tracker) Clear(ctx context.Context) {
	if l, ok := laneFrom(ctx); ok {
		l.current.Store(nil)
	}
}

func laneFrom(ctx context.Context) (*lane, bool) {
	l, ok := ctx.Value(laneKey{}).(*lane)
	return l, ok
}

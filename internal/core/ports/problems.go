package ports

import (
	"context"

	"go.trai.ch/taskscope/internal/core/domain"
)

// ProblemReporter receives diagnostics emitted during a build.
//
//go:generate mockgen -source=problems.go -destination=mocks/mock_problems.go -package=mocks
type ProblemReporter interface {
	// Report records the problem, attributing it to the task executing on ctx's lane.
	// It returns the problem as recorded.
	Report(ctx context.Context, problem domain.Problem) domain.Problem
}

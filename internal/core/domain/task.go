package domain

import (
	"io"
	"time"
)

// Task represents a unit of work in the build system.
type Task struct {
	Identity    TaskIdentity
	Command     []string
	Environment map[string]string
	WorkingDir  string
}

// TaskOutcome describes how a task execution ended.
type TaskOutcome string

const (
	// OutcomePending indicates the task has not been executed yet.
	OutcomePending TaskOutcome = "pending"
	// OutcomeExecuted indicates the task ran and completed successfully.
	OutcomeExecuted TaskOutcome = "executed"
	// OutcomeSkipped indicates the task had no work to do.
	OutcomeSkipped TaskOutcome = "skipped"
	// OutcomeFailed indicates the task ran and failed.
	OutcomeFailed TaskOutcome = "failed"
)

// TaskState is the mutable execution state of a single task.
// Decorators pass it through untouched; only leaf executers write to it.
type TaskState struct {
	Outcome TaskOutcome
	DidWork bool
	Failure error
}

// NewTaskState returns a TaskState in the pending outcome.
func NewTaskState() *TaskState {
	return &TaskState{Outcome: OutcomePending}
}

// ExecutionContext carries per-execution inputs for a task.
type ExecutionContext struct {
	// Env holds additional environment variables in "KEY=VALUE" format.
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

// ExecutionResult is what an executer reports back for one task execution.
type ExecutionResult struct {
	DidWork          bool
	ExecutionReasons []string
	Duration         time.Duration
}

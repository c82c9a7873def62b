package domain

import "go.trai.ch/zerr"

var (
	// ErrNoExecutionLane is returned when the tracker is used with a context that carries no execution lane.
	ErrNoExecutionLane = zerr.New("no execution lane in context")

	// ErrIdentityAlreadyTracked is returned when a task identity is set on a lane that already tracks one.
	ErrIdentityAlreadyTracked = zerr.New("task identity already tracked on this execution lane")

	// ErrTaskAlreadyExists is returned when attempting to add a task with a path that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrTaskNotFound is returned when a requested task is not found in the workspace.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrInvalidTaskName is returned when a task name contains invalid characters.
	ErrInvalidTaskName = zerr.New("invalid task name")

	// ErrInvalidBuildPath is returned when the configured build path does not start with ':'.
	ErrInvalidBuildPath = zerr.New("build path must start with ':'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrBuildExecutionFailed is returned when one or more tasks fail.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCommandFailed is returned when a task command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrReportWriteFailed is returned when the problems report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write problems report")
)

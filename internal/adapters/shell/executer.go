// Package shell runs task commands as child processes.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executer implements ports.TaskExecuter using os/exec.
// Diagnostics printed on stderr are reported as problems.
type Executer struct {
	logger   ports.Logger
	reporter ports.ProblemReporter
}

// NewExecuter creates a new Executer.
func NewExecuter(logger ports.Logger, reporter ports.ProblemReporter) *Executer {
	return &Executer{
		logger:   logger,
		reporter: reporter,
	}
}

// Execute runs the task's command and waits for it to complete.
func (e *Executer) Execute(
	ctx context.Context,
	task *domain.Task,
	state *domain.TaskState,
	execCtx *domain.ExecutionContext,
) (*domain.ExecutionResult, error) {
	start := time.Now()
	if state == nil {
		state = domain.NewTaskState()
	}
	if execCtx == nil {
		execCtx = &domain.ExecutionContext{}
	}

	if len(task.Command) == 0 {
		state.Outcome = domain.OutcomeSkipped
		return &domain.ExecutionResult{
			ExecutionReasons: []string{"no command"},
			Duration:         time.Since(start),
		}, nil
	}

	stdout, stderr := e.outputs(execCtx)
	diagnostics := newLineWriter(func(line string) {
		if p, ok := ParseDiagnostic(line); ok && e.reporter != nil {
			e.reporter.Report(ctx, p)
		}
	})

	cmd := e.command(ctx, task, execCtx.Env)
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, diagnostics)

	runErr := cmd.Run()
	_ = diagnostics.Close()
	closeWriter(stdout)
	closeWriter(stderr)

	result := &domain.ExecutionResult{
		DidWork:          true,
		ExecutionReasons: []string{"executed " + task.Command[0]},
		Duration:         time.Since(start),
	}
	state.DidWork = true

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err := zerr.With(fmt.Errorf("%w: %w", domain.ErrCommandFailed, runErr), "exit_code", exitCode)
		err = zerr.With(err, "task", task.Identity.String())
		state.Outcome = domain.OutcomeFailed
		state.Failure = err
		return result, err
	}

	state.Outcome = domain.OutcomeExecuted
	return result, nil
}

func (e *Executer) command(ctx context.Context, task *domain.Task, env []string) *exec.Cmd {
	name := task.Command[0]
	cmdEnv := resolveEnvironment(os.Environ(), env, task.Environment)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, task.Command[1:]...) //nolint:gosec // user provided command
	cmd.Args[0] = name
	cmd.Dir = task.WorkingDir
	cmd.Env = cmdEnv
	return cmd
}

// outputs returns the writers for the child's stdout and stderr.
// Missing writers fall back to the logger.
func (e *Executer) outputs(execCtx *domain.ExecutionContext) (stdout, stderr io.Writer) {
	stdout, stderr = execCtx.Stdout, execCtx.Stderr
	if stdout == nil {
		stdout = e.logLines(func(l ports.Logger, line string) { l.Info(line) })
	}
	if stderr == nil {
		stderr = e.logLines(func(l ports.Logger, line string) { l.Warn(line) })
	}
	return stdout, stderr
}

func (e *Executer) logLines(emit func(ports.Logger, string)) io.Writer {
	if e.logger == nil {
		return io.Discard
	}
	return newLineWriter(func(line string) { emit(e.logger, line) })
}

func closeWriter(w io.Writer) {
	if lw, ok := w.(*lineWriter); ok {
		_ = lw.Close()
	}
}

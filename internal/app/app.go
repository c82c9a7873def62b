// Package app implements the application layer for taskscope.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/taskscope/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultConfigPath is the configuration file used when none is given.
const DefaultConfigPath = "taskscope.yaml"

// ProblemsReport exposes the problems collected while tasks run.
type ProblemsReport interface {
	Problems() []domain.Problem
	WriteReport(w io.Writer) error
}

type jsonSwitch interface {
	SetJSON(enabled bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executer     ports.TaskExecuter
	problems     ProblemsReport
	logger       ports.Logger
	tracer       ports.Tracer
	otelSetup    bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executer ports.TaskExecuter,
	problems ProblemsReport,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		executer:     executer,
		problems:     problems,
		logger:       log,
		tracer:       tracer,
		otelSetup:    true,
	}
}

// WithoutTelemetrySetup keeps the global TracerProvider untouched.
// This is primarily used for testing.
func (a *App) WithoutTelemetrySetup() *App {
	a.otelSetup = false
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath  string
	Parallelism int
	ReportPath  string
	JSON        bool
}

// Run executes the selected tasks of the workspace. All tasks run when taskPaths is empty.
func (a *App) Run(ctx context.Context, taskPaths []string, opts RunOptions) error {
	if opts.JSON {
		if s, ok := a.logger.(jsonSwitch); ok {
			s.SetJSON(true)
		}
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	ws, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	tasks, err := selectTasks(ws, taskPaths)
	if err != nil {
		return err
	}

	parallelism := ws.Parallelism
	if opts.Parallelism > 0 {
		parallelism = opts.Parallelism
	}
	reportPath := ws.ReportPath
	if opts.ReportPath != "" {
		reportPath = opts.ReportPath
	}

	if a.otelSetup {
		tp := telemetry.Setup(telemetry.NewLogBridge(a.logger))
		defer func() {
			_ = tp.Shutdown(context.WithoutCancel(ctx))
		}()
	}

	ctx, span := a.tracer.Start(ctx, "build", ports.WithAttribute("build.path", ws.BuildPath))
	defer span.End()

	states, errs := a.execute(ctx, tasks, parallelism)
	runErr := errors.Join(errs...)

	a.logger.Info(summarize(states, len(a.problems.Problems())))

	if reportPath != "" {
		if err := a.writeReport(reportPath); err != nil {
			a.logger.Error(err)
			runErr = errors.Join(runErr, err)
		}
	}

	if runErr != nil {
		span.RecordError(runErr)
		return errors.Join(domain.ErrBuildExecutionFailed, runErr)
	}
	return nil
}

// execute runs every task on its own lane, at most parallelism at a time.
// Independent tasks keep running when one of them fails.
func (a *App) execute(ctx context.Context, tasks []*domain.Task, parallelism int) ([]*domain.TaskState, []error) {
	states := make([]*domain.TaskState, len(tasks))
	errs := make([]error, len(tasks))

	var g errgroup.Group
	g.SetLimit(max(parallelism, 1))

	for i, task := range tasks {
		states[i] = domain.NewTaskState()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				states[i].Outcome = domain.OutcomeSkipped
				errs[i] = zerr.With(zerr.Wrap(err, "task not started"), "task", task.Identity.String())
				return nil
			}
			_, errs[i] = a.executer.Execute(ctx, task, states[i], &domain.ExecutionContext{})
			return nil
		})
	}
	_ = g.Wait()

	return states, errs
}

func (a *App) writeReport(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrReportWriteFailed, err.Error()), "path", path)
	}

	// #nosec G304 -- path comes from the workspace configuration or the command line
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrReportWriteFailed, err.Error()), "path", path)
	}

	writeErr := a.problems.WriteReport(f)
	closeErr := f.Close()
	if writeErr != nil {
		return zerr.With(writeErr, "path", path)
	}
	if closeErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrReportWriteFailed, closeErr.Error()), "path", path)
	}

	a.logger.Info("problems report written to " + path)
	return nil
}

func selectTasks(ws *domain.Workspace, taskPaths []string) ([]*domain.Task, error) {
	if len(taskPaths) == 0 {
		return ws.Tasks(), nil
	}

	seen := make(map[string]struct{}, len(taskPaths))
	tasks := make([]*domain.Task, 0, len(taskPaths))
	for _, path := range taskPaths {
		path = normalizeTaskPath(path)
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}

		task, ok := ws.Task(path)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "cannot select task"), "task", path)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// normalizeTaskPath accepts both "compile" and ":compile".
func normalizeTaskPath(path string) string {
	if len(path) > 0 && path[0] == ':' {
		return path
	}
	return domain.RootBuildPath + path
}

func summarize(states []*domain.TaskState, problemCount int) string {
	counts := make(map[domain.TaskOutcome]int)
	for _, s := range states {
		counts[s.Outcome]++
	}
	return fmt.Sprintf("%d tasks: %d executed, %d failed, %d skipped, %d problems",
		len(states),
		counts[domain.OutcomeExecuted],
		counts[domain.OutcomeFailed],
		counts[domain.OutcomeSkipped],
		problemCount,
	)
}

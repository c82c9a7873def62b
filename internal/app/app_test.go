package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskscope/internal/adapters/identity"
	"go.trai.ch/taskscope/internal/adapters/logger"
	"go.trai.ch/taskscope/internal/adapters/problems"
	"go.trai.ch/taskscope/internal/adapters/telemetry"
	"go.trai.ch/taskscope/internal/app"
	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
	"go.trai.ch/taskscope/internal/core/ports/mocks"
	"go.trai.ch/taskscope/internal/engine/execution"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func newWorkspace(t *testing.T, names ...string) *domain.Workspace {
	t.Helper()
	ws := domain.NewWorkspace(":")
	for _, name := range names {
		require.NoError(t, ws.AddTask(&domain.Task{
			Identity: domain.NewTaskIdentity(":", ":"+name),
			Command:  []string{"true"},
		}))
	}
	return ws
}

type fixture struct {
	loader   *mocks.MockConfigLoader
	logger   *mocks.MockLogger
	tracker  *identity.Tracker
	registry *problems.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		tracker: identity.NewTracker(),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	registry, err := problems.NewRegistry(f.tracker, f.logger, telemetry.NewNoOpTracer(), prometheus.NewRegistry())
	require.NoError(t, err)
	f.registry = registry
	return f
}

func (f *fixture) app(leaf ports.TaskExecuter) *app.App {
	chain := execution.Chain(leaf, execution.WithTracking(f.tracker, f.logger))
	return app.New(f.loader, chain, f.registry, f.logger, telemetry.NewNoOpTracer()).WithoutTelemetrySetup()
}

func recordingLeaf(mu *sync.Mutex, seen *[]string) execution.ExecuterFunc {
	return func(
		_ context.Context,
		task *domain.Task,
		state *domain.TaskState,
		_ *domain.ExecutionContext,
	) (*domain.ExecutionResult, error) {
		mu.Lock()
		*seen = append(*seen, task.Identity.TaskPath)
		mu.Unlock()
		state.Outcome = domain.OutcomeExecuted
		return &domain.ExecutionResult{DidWork: true}, nil
	}
}

func TestApp_Run_AllTasksByDefault(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(newWorkspace(t, "compile", "test", "lint"), nil)

	var mu sync.Mutex
	var seen []string
	err := f.app(recordingLeaf(&mu, &seen)).Run(context.Background(), nil, app.RunOptions{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{":compile", ":test", ":lint"}, seen)
}

func TestApp_Run_SelectedTasks(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("custom.yaml").Return(newWorkspace(t, "compile", "test", "lint"), nil)

	var mu sync.Mutex
	var seen []string
	err := f.app(recordingLeaf(&mu, &seen)).Run(
		context.Background(),
		[]string{"compile", ":lint", ":compile"},
		app.RunOptions{ConfigPath: "custom.yaml"},
	)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{":compile", ":lint"}, seen)
}

func TestApp_Run_UnknownTask(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(newWorkspace(t, "compile"), nil)

	ctrl := gomock.NewController(t)
	leaf := mocks.NewMockTaskExecuter(ctrl)

	err := f.app(leaf).Run(context.Background(), []string{"deploy"}, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, ":deploy", zErr.Metadata()["task"])
}

func TestApp_Run_ConfigLoadFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigReadFailed)

	ctrl := gomock.NewController(t)
	leaf := mocks.NewMockTaskExecuter(ctrl)

	err := f.app(leaf).Run(context.Background(), nil, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_FailureDoesNotStopOtherTasks(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(newWorkspace(t, "a", "b", "c"), nil)

	taskErr := errors.New("tests failed")
	var ran atomic.Int32
	leaf := execution.ExecuterFunc(func(
		_ context.Context,
		task *domain.Task,
		state *domain.TaskState,
		_ *domain.ExecutionContext,
	) (*domain.ExecutionResult, error) {
		ran.Add(1)
		if task.Identity.TaskPath == ":b" {
			state.Outcome = domain.OutcomeFailed
			return nil, taskErr
		}
		state.Outcome = domain.OutcomeExecuted
		return &domain.ExecutionResult{}, nil
	})

	err := f.app(leaf).Run(context.Background(), nil, app.RunOptions{Parallelism: 1})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	require.ErrorIs(t, err, taskErr)
	assert.Equal(t, int32(3), ran.Load())
}

func TestApp_Run_RespectsParallelism(t *testing.T) {
	f := newFixture(t)
	ws := newWorkspace(t, "a", "b", "c", "d", "e", "f")
	ws.Parallelism = 16
	f.loader.EXPECT().Load(gomock.Any()).Return(ws, nil)

	var running, peak atomic.Int32
	leaf := execution.ExecuterFunc(func(
		_ context.Context,
		_ *domain.Task,
		_ *domain.TaskState,
		_ *domain.ExecutionContext,
	) (*domain.ExecutionResult, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return &domain.ExecutionResult{}, nil
	})

	err := f.app(leaf).Run(context.Background(), nil, app.RunOptions{Parallelism: 2})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestApp_Run_EachTaskSeesOwnIdentity(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(newWorkspace(t, "x", "y", "z"), nil)

	var mismatches atomic.Int32
	leaf := execution.ExecuterFunc(func(
		ctx context.Context,
		task *domain.Task,
		_ *domain.TaskState,
		_ *domain.ExecutionContext,
	) (*domain.ExecutionResult, error) {
		for range 50 {
			id, ok := f.tracker.Current(ctx)
			if !ok || id != task.Identity {
				mismatches.Add(1)
			}
			time.Sleep(100 * time.Microsecond)
		}
		return &domain.ExecutionResult{}, nil
	})

	err := f.app(leaf).Run(context.Background(), nil, app.RunOptions{Parallelism: 3})
	require.NoError(t, err)
	assert.Zero(t, mismatches.Load())
}

func TestApp_Run_WritesProblemsReport(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(newWorkspace(t, "lint", "test"), nil)

	leaf := execution.ExecuterFunc(func(
		ctx context.Context,
		task *domain.Task,
		state *domain.TaskState,
		_ *domain.ExecutionContext,
	) (*domain.ExecutionResult, error) {
		if task.Identity.TaskPath == ":lint" {
			f.registry.Report(ctx, domain.Problem{Label: "line too long", Severity: domain.SeverityWarning})
		}
		state.Outcome = domain.OutcomeExecuted
		return &domain.ExecutionResult{}, nil
	})

	reportPath := filepath.Join(t.TempDir(), "out", "problems.yaml")
	err := f.app(leaf).Run(context.Background(), nil, app.RunOptions{ReportPath: reportPath})
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var decoded struct {
		Problems []struct {
			Label string `yaml:"label"`
			Task  struct {
				Task string `yaml:"task"`
			} `yaml:"task"`
		} `yaml:"problems"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Problems, 1)
	assert.Equal(t, "line too long", decoded.Problems[0].Label)
	assert.Equal(t, ":lint", decoded.Problems[0].Task.Task)
}

func TestApp_Run_ReportWriteFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(newWorkspace(t, "a"), nil)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var mu sync.Mutex
	var seen []string
	err := f.app(recordingLeaf(&mu, &seen)).Run(context.Background(), nil, app.RunOptions{
		ReportPath: filepath.Join(blocker, "problems.yaml"),
	})
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	require.ErrorIs(t, err, domain.ErrReportWriteFailed)
}

func TestApp_Run_CancelledContextSkipsTasks(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(newWorkspace(t, "a", "b"), nil)

	ctrl := gomock.NewController(t)
	leaf := mocks.NewMockTaskExecuter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app(leaf).Run(ctx, nil, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Run_JSONLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(newWorkspace(t), nil)

	log := logger.New()
	var buf bytes.Buffer
	log.(*logger.Logger).SetOutput(&buf)

	tracker := identity.NewTracker()
	registry, err := problems.NewRegistry(tracker, log, telemetry.NewNoOpTracer(), prometheus.NewRegistry())
	require.NoError(t, err)

	a := app.New(loader, execution.Chain(mocks.NewMockTaskExecuter(ctrl)), registry, log, telemetry.NewNoOpTracer()).
		WithoutTelemetrySetup()
	require.NoError(t, a.Run(context.Background(), nil, app.RunOptions{JSON: true}))

	assert.Contains(t, buf.String(), `"msg":"0 tasks: 0 executed, 0 failed, 0 skipped, 0 problems"`)
}

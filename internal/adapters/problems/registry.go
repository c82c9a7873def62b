// Package problems collects diagnostics reported during a build and attributes them
// to the task executing on the reporting lane.
package problems

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// MetricName is the name of the counter incremented for every reported problem.
const MetricName = "taskscope_problems_reported_total"

// Registry is a ports.ProblemReporter that deduplicates problems by fingerprint.
type Registry struct {
	tracker ports.IdentityTracker
	logger  ports.Logger
	tracer  ports.Tracer
	counter *prometheus.CounterVec

	mu       sync.Mutex
	problems map[string]*domain.Problem
}

// NewRegistry creates a Registry and registers its counter on reg.
// A counter already registered on reg under the same name is reused.
// Problems are recorded as events on the span active in the reporting context;
// a nil tracer disables this.
func NewRegistry(
	tracker ports.IdentityTracker,
	logger ports.Logger,
	tracer ports.Tracer,
	reg prometheus.Registerer,
) (*Registry, error) {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricName,
			Help: "Total number of problems reported, by task and severity",
		},
		[]string{"build", "task", "severity"},
	)

	if reg != nil {
		if err := reg.Register(counter); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, zerr.Wrap(err, "failed to register problems counter")
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, zerr.Wrap(err, "problems counter registered with a different type")
			}
			counter = existing
		}
	}

	return &Registry{
		tracker:  tracker,
		logger:   logger,
		tracer:   tracer,
		counter:  counter,
		problems: make(map[string]*domain.Problem),
	}, nil
}

// Report records problem under the identity tracked on ctx.
// Problems reported outside a tracked execution are kept unattributed.
func (r *Registry) Report(ctx context.Context, problem domain.Problem) domain.Problem {
	if id, ok := r.tracker.Current(ctx); ok {
		problem.Task = id
	} else {
		problem.Task = domain.TaskIdentity{}
	}
	problem.ID = Fingerprint(problem)

	r.mu.Lock()
	recorded, seen := r.problems[problem.ID]
	if seen {
		recorded.Occurrences++
	} else {
		problem.Occurrences = 1
		recorded = &problem
		r.problems[problem.ID] = recorded
	}
	snapshot := *recorded
	snapshot.Solutions = append([]string(nil), recorded.Solutions...)
	r.mu.Unlock()

	r.counter.WithLabelValues(
		snapshot.Task.BuildPath,
		snapshot.Task.TaskPath,
		snapshot.Severity.String(),
	).Inc()

	if r.tracer != nil {
		r.tracer.SpanFromContext(ctx).AddEvent("problem", map[string]any{
			"problem.id":       snapshot.ID,
			"problem.label":    snapshot.Label,
			"problem.severity": snapshot.Severity.String(),
			"problem.location": snapshot.Location.String(),
		})
	}

	r.log(snapshot)
	return snapshot
}

func (r *Registry) log(p domain.Problem) {
	if r.logger == nil {
		return
	}

	owner := "unattributed"
	if p.Attributed() {
		owner = p.Task.String()
	}
	msg := fmt.Sprintf("%s %s: %s", owner, p.Severity, p.Label)
	if !p.Location.IsZero() {
		msg += " (" + p.Location.String() + ")"
	}

	if p.Severity == domain.SeverityAdvice {
		r.logger.Info(msg)
		return
	}
	r.logger.Warn(msg)
}

// Problems returns a snapshot of every recorded problem, ordered by task,
// then by descending severity, then by label.
func (r *Registry) Problems() []domain.Problem {
	r.mu.Lock()
	out := make([]domain.Problem, 0, len(r.problems))
	for _, p := range r.problems {
		cp := *p
		cp.Solutions = append([]string(nil), p.Solutions...)
		out = append(out, cp)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if at, bt := a.Task.String(), b.Task.String(); at != bt {
			return at < bt
		}
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.ID < b.ID
	})
	return out
}

type report struct {
	Problems []domain.Problem `yaml:"problems"`
}

// WriteReport writes every recorded problem to w as YAML.
func (r *Registry) WriteReport(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(report{Problems: r.Problems()}); err != nil {
		return zerr.Wrap(domain.ErrReportWriteFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(domain.ErrReportWriteFailed, err.Error())
	}
	return nil
}

// Fingerprint identifies a problem by its owner, severity, label and location.
func Fingerprint(p domain.Problem) string {
	d := xxhash.New()
	for _, part := range []string{
		p.Task.BuildPath,
		p.Task.TaskPath,
		p.Severity.String(),
		p.Label,
		p.Location.File,
		strconv.Itoa(p.Location.Line),
	} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

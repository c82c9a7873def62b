package domain

import (
	"strconv"
	"strings"
)

// Severity is the severity of a reported problem.
type Severity int

const (
	// SeverityAdvice is a suggestion that does not indicate a defect.
	SeverityAdvice Severity = iota
	// SeverityWarning indicates a potential defect.
	SeverityWarning
	// SeverityError indicates a defect.
	SeverityError
)

// String returns the lower case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "advice"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSeverity converts a diagnostic keyword to a Severity.
// "note" is treated as advice. The second return value is false for unknown keywords.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "advice", "note":
		return SeverityAdvice, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	default:
		return SeverityAdvice, false
	}
}

// Location points at the source of a problem.
type Location struct {
	File string `yaml:"file,omitempty"`
	Line int    `yaml:"line,omitempty"`
}

// IsZero reports whether the location is unset.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

// String renders the location as file:line.
func (l Location) String() string {
	if l.Line == 0 {
		return l.File
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}

// Problem is a diagnostic emitted during a build.
// Task is the zero identity when the problem was reported outside any tracked task execution.
type Problem struct {
	ID          string       `yaml:"id"`
	Label       string       `yaml:"label"`
	Details     string       `yaml:"details,omitempty"`
	Severity    Severity     `yaml:"severity"`
	Location    Location     `yaml:"location,omitempty"`
	Solutions   []string     `yaml:"solutions,omitempty"`
	Task        TaskIdentity `yaml:"task,omitempty"`
	Occurrences int          `yaml:"occurrences"`
}

// Attributed reports whether the problem is associated with a task.
func (p Problem) Attributed() bool {
	return !p.Task.IsZero()
}

package shell

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/taskscope/internal/core/domain"
)

// diagnosticPattern matches compiler-style diagnostics such as
// "main.go:12:3: warning: unused variable" or "error: build failed".
var diagnosticPattern = regexp.MustCompile(
	`(?i)^(?:([^:\s][^:]*):(\d+)(?::\d+)?:\s*)?(advice|note|warning|warn|error):\s*(.+)$`,
)

// ParseDiagnostic converts a single output line into a problem.
// The second return value is false when the line is not a diagnostic.
func ParseDiagnostic(line string) (domain.Problem, bool) {
	m := diagnosticPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.Problem{}, false
	}

	severity, ok := domain.ParseSeverity(m[3])
	if !ok {
		return domain.Problem{}, false
	}

	p := domain.Problem{
		Label:    strings.TrimSpace(m[4]),
		Severity: severity,
	}
	if m[1] != "" {
		if n, err := strconv.Atoi(m[2]); err == nil {
			p.Location = domain.Location{File: m[1], Line: n}
		}
	}
	return p, true
}

// maxLineLength bounds the bytes buffered for one line. Longer output without a
// newline is emitted in chunks of this size.
const maxLineLength = 64 * 1024

// lineWriter splits written bytes into lines and hands each complete line to emit.
type lineWriter struct {
	mu   sync.Mutex
	emit func(string)
	buf  []byte
}

func newLineWriter(emit func(string)) *lineWriter {
	return &lineWriter{emit: emit}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emitLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	for len(w.buf) >= maxLineLength {
		w.emitLine(w.buf[:maxLineLength])
		w.buf = w.buf[maxLineLength:]
	}
	return len(p), nil
}

// Close flushes a trailing line without a newline.
func (w *lineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emitLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *lineWriter) emitLine(line []byte) {
	w.emit(strings.TrimSuffix(string(line), "\r"))
}

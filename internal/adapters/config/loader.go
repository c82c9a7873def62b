// Package config provides the configuration loader for taskscope.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/taskscope/internal/core/domain"
	"go.trai.ch/taskscope/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validTaskNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and returns the workspace it describes.
func (l *Loader) Load(path string) (*domain.Workspace, error) {
	var workfile Workfile
	if err := readAndUnmarshalYAML(path, &workfile); err != nil {
		return nil, err
	}

	if workfile.Build != "" && !strings.HasPrefix(workfile.Build, domain.RootBuildPath) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidBuildPath, "invalid workspace"), "build", workfile.Build)
	}

	ws := domain.NewWorkspace(workfile.Build)
	switch {
	case workfile.Parallelism > 0:
		ws.Parallelism = workfile.Parallelism
	case workfile.Parallelism < 0:
		l.warn(fmt.Sprintf("ignoring negative parallelism %d, using %d", workfile.Parallelism, ws.Parallelism))
	}

	root := resolveRoot(path, workfile.Root)
	if workfile.Report != "" {
		ws.ReportPath = resolvePath(filepath.Dir(path), workfile.Report)
	}

	if len(workfile.Tasks) == 0 {
		l.warn(fmt.Sprintf("no tasks defined in %s", path))
	}

	for name, dto := range workfile.Tasks {
		if err := validateTaskName(name); err != nil {
			return nil, err
		}
		if dto == nil {
			dto = &TaskDTO{}
		}

		task := &domain.Task{
			Identity:    domain.NewTaskIdentity(ws.BuildPath, domain.RootBuildPath+name),
			Command:     dto.Cmd,
			Environment: dto.Environment,
			WorkingDir:  resolvePath(root, dto.WorkingDir),
		}
		if err := ws.AddTask(task); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid workspace"), "task", name)
		}
	}

	return ws, nil
}

func (l *Loader) warn(msg string) {
	if l.Logger != nil {
		l.Logger.Warn(msg)
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, parseErr), "path", configPath)
	}

	return nil
}

// validateTaskName checks that a task name only contains letters, digits, '_' and '-'.
func validateTaskName(name string) error {
	if !validTaskNameRegex.MatchString(name) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidTaskName, "invalid workspace"), "task_name", name)
	}
	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolvePath(filepath.Dir(configPath), configuredRoot)
}

// resolvePath resolves configured relative to baseDir. An empty value resolves to baseDir.
func resolvePath(baseDir, configured string) string {
	if configured == "" {
		return filepath.Clean(baseDir)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(baseDir, configured))
}

package domain

import (
	"runtime"
	"sort"
)

// DirPerm is the default permission for directories created by taskscope (rwxr-x---).
const DirPerm = 0o750

// Workspace is the loaded taskscope configuration: a build and its tasks.
type Workspace struct {
	BuildPath   string
	Parallelism int
	ReportPath  string
	tasks       map[string]*Task
}

// NewWorkspace creates an empty workspace for the given build path.
func NewWorkspace(buildPath string) *Workspace {
	if buildPath == "" {
		buildPath = RootBuildPath
	}
	return &Workspace{
		BuildPath:   buildPath,
		Parallelism: runtime.NumCPU(),
		tasks:       make(map[string]*Task),
	}
}

// AddTask registers a task under its task path.
func (w *Workspace) AddTask(task *Task) error {
	path := task.Identity.TaskPath
	if _, exists := w.tasks[path]; exists {
		return ErrTaskAlreadyExists
	}
	w.tasks[path] = task
	return nil
}

// Task returns the task with the given task path.
func (w *Workspace) Task(path string) (*Task, bool) {
	t, ok := w.tasks[path]
	return t, ok
}

// Tasks returns all tasks sorted by task path.
func (w *Workspace) Tasks() []*Task {
	paths := make([]string, 0, len(w.tasks))
	for p := range w.tasks {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	res := make([]*Task, len(paths))
	for i, p := range paths {
		res[i] = w.tasks[p]
	}
	return res
}

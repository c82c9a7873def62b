// Package domain holds the core value types of taskscope.
package domain

// RootBuildPath is the build path of the top-level build.
const RootBuildPath = ":"

// TaskIdentity identifies one task within one build invocation.
// Builds may be nested (included builds), hence the separate BuildPath.
// It is a plain value: compare with ==.
type TaskIdentity struct {
	BuildPath string `yaml:"build" json:"build"`
	TaskPath  string `yaml:"task" json:"task"`
}

// NewTaskIdentity creates a TaskIdentity for the given build and task paths.
// An empty build path is normalized to the root build.
func NewTaskIdentity(buildPath, taskPath string) TaskIdentity {
	if buildPath == "" {
		buildPath = RootBuildPath
	}
	return TaskIdentity{BuildPath: buildPath, TaskPath: taskPath}
}

// IsZero reports whether the identity is unset.
func (id TaskIdentity) IsZero() bool {
	return id == TaskIdentity{}
}

// String returns the fully qualified task path, e.g. ":compile" or ":included:compile".
func (id TaskIdentity) String() string {
	if id.BuildPath == "" || id.BuildPath == RootBuildPath {
		return id.TaskPath
	}
	return id.BuildPath + id.TaskPath
}

package config

// FileName is the default name of the workspace configuration file.
const FileName = "taskscope.yaml"

// Workfile represents the structure of the taskscope.yaml configuration file.
type Workfile struct {
	Build       string              `yaml:"build"`
	Root        string              `yaml:"root"`
	Parallelism int                 `yaml:"parallelism"`
	Report      string              `yaml:"report"`
	Tasks       map[string]*TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the configuration.
type TaskDTO struct {
	Cmd         []string          `yaml:"cmd"`
	Environment map[string]string `yaml:"environment"`
	WorkingDir  string            `yaml:"workingDir"`
}

package app

import "go.trai.ch/taskscope/internal/core/ports"

// Components holds the wired application graph handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

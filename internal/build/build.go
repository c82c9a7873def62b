// Package build holds build-time information.
package build

// These values default to development placeholders and are overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

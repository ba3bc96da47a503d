// Package version holds build-time version information.
package version

// Populated via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Package version provides centralized version information for debugcon.
package version

import "fmt"

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// String returns the full version line for display.
func String() string {
	return fmt.Sprintf("debugcon v%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}

// Package types defines the public interfaces and shared data structures for
// the debugcon console. Command implementations and output sinks plug into the
// engine through these interfaces.
package types

// OutputLevel classifies a console message for the output sink.
type OutputLevel int

const (
	// LevelInfo represents informational output.
	LevelInfo OutputLevel = iota
	// LevelWarning represents warning output.
	LevelWarning
	// LevelError represents error output.
	LevelError
)

// String returns the human-readable name of the level.
func (l OutputLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// OutputSink receives leveled messages from the engine and from commands.
// Emit returns once the message has been handed to the underlying destination
// (console, file, capture buffer). Implementations must be safe for
// concurrent use: multiple dispatches may emit at the same time.
type OutputSink interface {
	Emit(level OutputLevel, message string) error
}

// Command is the capability every console command implements. Commands are
// registered once at setup time and are immutable afterwards; the registry
// shares them, it never owns or destroys them.
type Command interface {
	// Name returns the registry key. It is matched case-insensitively and
	// must be non-empty.
	Name() string
	// Description returns a one-line human-readable summary.
	Description() string
	// Module returns the grouping label used for help/listing output.
	Module() string
	// Execute runs the command with the parsed argument tokens, writing any
	// user-facing output to the sink. A returned error is reported by the
	// engine and does not propagate further.
	Execute(args []string, out OutputSink) error
}

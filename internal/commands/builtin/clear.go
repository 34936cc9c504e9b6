package builtin

import (
	"debugcon/internal/history"
	"debugcon/pkg/types"
)

// ClearCommand implements the clear command. It empties the console's
// history ring and resets history navigation.
type ClearCommand struct {
	history *history.Ring
}

// NewClearCommand creates a clear command operating on the given ring.
func NewClearCommand(ring *history.Ring) *ClearCommand {
	return &ClearCommand{history: ring}
}

// Name returns the command name "clear" for registration and lookup.
func (c *ClearCommand) Name() string {
	return "clear"
}

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string {
	return "Clear the command history"
}

// Module returns the grouping label for listing output.
func (c *ClearCommand) Module() string {
	return "console"
}

// Execute empties the history ring.
func (c *ClearCommand) Execute(_ []string, out types.OutputSink) error {
	c.history.Clear()
	return out.Emit(types.LevelInfo, "History cleared.")
}

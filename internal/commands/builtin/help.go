package builtin

import (
	"fmt"

	"debugcon/internal/commands"
	"debugcon/pkg/types"
)

// HelpCommand implements the help command. It renders the registered
// commands grouped by module, one line per command.
type HelpCommand struct {
	registry *commands.Registry
}

// NewHelpCommand creates a help command listing the given registry.
func NewHelpCommand(registry *commands.Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "List available commands grouped by module"
}

// Module returns the grouping label for listing output.
func (c *HelpCommand) Module() string {
	return "console"
}

// Execute writes the grouped command listing to the sink.
func (c *HelpCommand) Execute(_ []string, out types.OutputSink) error {
	for _, group := range c.registry.Grouped() {
		if err := out.Emit(types.LevelInfo, fmt.Sprintf("[%s]", group.Module)); err != nil {
			return err
		}
		for _, cmd := range group.Commands {
			line := fmt.Sprintf("  %-12s %s", cmd.Name(), cmd.Description())
			if err := out.Emit(types.LevelInfo, line); err != nil {
				return err
			}
		}
	}
	return nil
}

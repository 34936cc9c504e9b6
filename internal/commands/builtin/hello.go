// Package builtin provides the built-in console commands that ship with
// debugcon. They are registered by the engine during initialization.
package builtin

import (
	"fmt"
	"strings"

	"debugcon/pkg/types"
)

// HelloCommand implements the hello command, a minimal demonstration command
// that greets the caller.
type HelloCommand struct{}

// NewHelloCommand creates a new hello command.
func NewHelloCommand() *HelloCommand {
	return &HelloCommand{}
}

// Name returns the command name "hello" for registration and lookup.
func (c *HelloCommand) Name() string {
	return "hello"
}

// Description returns a brief description of what the hello command does.
func (c *HelloCommand) Description() string {
	return "Print a greeting"
}

// Module returns the grouping label for listing output.
func (c *HelloCommand) Module() string {
	return "demo"
}

// Execute greets the world, or the first argument if one is given.
func (c *HelloCommand) Execute(args []string, out types.OutputSink) error {
	target := "world"
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		target = args[0]
	}
	return out.Emit(types.LevelInfo, fmt.Sprintf("Hello, %s!", target))
}

// Package shell provides the interactive terminal front-end for debugcon.
// It feeds readline input into the dispatch engine and backs tab completion
// with the registry's suggestion lookup.
package shell

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"debugcon/internal/engine"
	"debugcon/internal/logger"
)

// Shell is the interactive console loop.
type Shell struct {
	engine *engine.Engine
	prompt string
}

// New creates a shell driving the given engine.
func New(eng *engine.Engine) *Shell {
	return &Shell{
		engine: eng,
		prompt: "debugcon> ",
	}
}

// Run reads lines until EOF or an exit command, dispatching each to the
// engine. It drains each submission before presenting the next prompt so
// output lines land above the prompt, and shuts the engine down on return.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt,
		AutoComplete:    &completer{engine: s.engine},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	shellLog := logger.NewStyledLogger("Shell")
	shellLog.Debug("Interactive shell started")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "exit" || trimmed == "quit" {
			break
		}

		s.engine.ProcessInput(line)
		s.engine.Wait()
	}

	s.engine.Shutdown()
	shellLog.Debug("Interactive shell stopped")
	return nil
}

// completer implements readline.AutoCompleter on top of the registry's
// subsequence suggestions. Only prefix matches can be completed in place, so
// subsequence-only matches are filtered out here.
type completer struct {
	engine *engine.Engine
}

// Do implements the readline.AutoCompleter interface.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])

	// Completion applies to the command word only.
	if strings.ContainsAny(strings.TrimLeft(lineStr, " \t"), " \t") {
		return nil, 0
	}
	current := strings.TrimLeft(lineStr, " \t")

	var suggestions [][]rune
	for _, name := range c.engine.Suggest(current) {
		if strings.HasPrefix(name, strings.ToLower(current)) {
			suggestions = append(suggestions, []rune(name[len(current):]))
		}
	}
	return suggestions, len(current)
}

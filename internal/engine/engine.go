// Package engine implements the debugcon dispatch engine. It orchestrates
// the per-input pipeline: record to history, tokenize, resolve the command in
// the registry, invoke it, and report the outcome through the output sink.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"debugcon/internal/commands"
	"debugcon/internal/commands/builtin"
	"debugcon/internal/history"
	"debugcon/internal/logger"
	"debugcon/internal/parser"
	"debugcon/pkg/types"
)

// ErrNilSink is returned when an engine is constructed without an output
// sink.
var ErrNilSink = errors.New("output sink must not be nil")

// dispatchState tracks where a single input submission is in its pipeline.
// Each submission walks Idle -> Recording -> Tokenizing -> Dispatching and
// terminates in one of the three result states.
type dispatchState int

const (
	stateIdle dispatchState = iota
	stateRecording
	stateTokenizing
	stateDispatching
	stateSucceeded
	stateCommandNotFound
	stateHandlerFailed
)

func (s dispatchState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRecording:
		return "recording"
	case stateTokenizing:
		return "tokenizing"
	case stateDispatching:
		return "dispatching"
	case stateSucceeded:
		return "succeeded"
	case stateCommandNotFound:
		return "command_not_found"
	case stateHandlerFailed:
		return "handler_failed"
	default:
		return "unknown"
	}
}

// Config holds the construction parameters for an Engine.
type Config struct {
	// MaxHistorySize bounds the history ring. Must be positive.
	MaxHistorySize int
	// Sink receives all user-visible console output. Must not be nil.
	Sink types.OutputSink
}

// Engine is the console dispatch engine. Submissions run as independent
// asynchronous tasks; within one submission the pipeline steps are strictly
// ordered, across submissions no ordering is guaranteed. A failing handler or
// unknown command never leaves the engine unusable.
type Engine struct {
	registry *commands.Registry
	history  *history.Ring
	sink     types.OutputSink
	log      *log.Logger

	wg sync.WaitGroup

	mu          sync.Mutex
	initialized bool
}

// New creates an engine from the given configuration. It fails fast on a
// non-positive history capacity or a nil sink; an engine that failed to
// construct must not be used.
func New(cfg Config) (*Engine, error) {
	if cfg.Sink == nil {
		return nil, ErrNilSink
	}
	ring, err := history.NewRing(cfg.MaxHistorySize)
	if err != nil {
		return nil, err
	}
	return &Engine{
		registry: commands.NewRegistry(),
		history:  ring,
		sink:     cfg.Sink,
		log:      logger.NewStyledLogger("Engine"),
	}, nil
}

// Initialize registers the built-in commands. The owner must call it, and
// wait for it to return, before accepting input; this replaces any
// fire-and-forget background setup so early input can never race default
// command registration. Calling it more than once is a no-op.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return nil
	}

	defaults := []types.Command{
		builtin.NewHelloCommand(),
		builtin.NewClearCommand(e.history),
		builtin.NewHelpCommand(e.registry),
	}
	for _, cmd := range defaults {
		if !e.registry.Register(cmd) {
			return fmt.Errorf("builtin command %q already registered", cmd.Name())
		}
	}

	e.initialized = true
	e.log.Debug("Engine initialized", "commands", e.registry.Len())
	return nil
}

// Register adds a user-supplied command to the registry. It returns false if
// the name is empty or already taken; the existing command stays
// authoritative.
func (e *Engine) Register(cmd types.Command) bool {
	return e.registry.Register(cmd)
}

// ProcessInput submits one raw input line for dispatch and returns
// immediately. The submission runs as its own task; its outcome is reported
// exclusively through the output sink. Use Wait to drain in-flight
// submissions.
func (e *Engine) ProcessInput(input string) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.process(input)
	}()
}

// Wait blocks until all submissions in flight at the time of the call have
// finished.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Shutdown drains in-flight submissions, then clears the history ring and
// resets navigation. Registered commands are kept; there is no unregister.
func (e *Engine) Shutdown() {
	e.wg.Wait()
	e.history.Clear()
	e.log.Debug("Engine shut down")
}

// process runs the full pipeline for one submission. Steps are strictly
// ordered: echo, record, tokenize, dispatch, report.
func (e *Engine) process(input string) {
	id := uuid.NewString()[:8]
	state := stateIdle

	if strings.TrimSpace(input) == "" {
		// Validation failure: warn, never record.
		e.emit(types.LevelWarning, "Empty input. Type \"help\" to list available commands.")
		return
	}

	state = stateRecording
	e.log.Debug("State transition", "dispatch", id, "state", state.String())
	e.emit(types.LevelInfo, "> "+input)
	e.history.Append(input)

	state = stateTokenizing
	e.log.Debug("State transition", "dispatch", id, "state", state.String())
	tokens := parser.Tokenize(input)
	var name string
	var args []string
	if len(tokens) > 0 {
		name = strings.ToLower(tokens[0])
		args = tokens[1:]
	}
	logger.Dispatch(id, name, args)

	state = stateDispatching
	e.log.Debug("State transition", "dispatch", id, "state", state.String())
	cmd, found := e.registry.Lookup(name)
	if !found {
		state = stateCommandNotFound
		e.log.Debug("Dispatch finished", "dispatch", id, "state", state.String())
		e.emit(types.LevelError, fmt.Sprintf("Unknown command %q. Type \"help\" to list available commands.", name))
		return
	}

	if err := e.invoke(cmd, args); err != nil {
		state = stateHandlerFailed
		e.log.Debug("Dispatch finished", "dispatch", id, "state", state.String(), "error", err)
		e.emit(types.LevelError, fmt.Sprintf("Command %q failed: %s", name, err))
		return
	}

	state = stateSucceeded
	e.log.Debug("Dispatch finished", "dispatch", id, "state", state.String())
	e.emit(types.LevelInfo, fmt.Sprintf("Command %q completed.", name))
}

// invoke runs a handler, converting a panic into a returned error. Handler
// failures stop at this boundary: they are reported, never propagated.
func (e *Engine) invoke(cmd types.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return cmd.Execute(args, e.sink)
}

func (e *Engine) emit(level types.OutputLevel, message string) {
	if err := e.sink.Emit(level, message); err != nil {
		e.log.Error("Output sink write failed", "error", err)
	}
}

// Suggest returns command-name suggestions for a partial input line. It reads
// committed registry state only and may be called at any time, including
// while dispatches are in flight.
func (e *Engine) Suggest(input string) []string {
	return e.registry.Suggest(input)
}

// Grouped returns the registered commands grouped by module for listing
// output.
func (e *Engine) Grouped() []commands.Group {
	return e.registry.Grouped()
}

// HistoryPrevious moves history navigation one step toward older entries.
// The navigation cursor belongs to this engine instance; callers must not
// navigate from multiple goroutines at once.
func (e *Engine) HistoryPrevious() string {
	return e.history.Previous()
}

// HistoryNext moves history navigation one step toward newer entries.
func (e *Engine) HistoryNext() string {
	return e.history.Next()
}

// History returns a copy of the retained history entries, oldest first.
func (e *Engine) History() []string {
	return e.history.Entries()
}

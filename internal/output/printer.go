// Package output provides the console output sinks for debugcon. The engine
// and commands write leveled messages through the types.OutputSink interface;
// this package supplies a styled terminal printer and a capture sink for
// tests.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"debugcon/pkg/types"
)

// Printer writes leveled messages to an io.Writer, optionally styled with
// lipgloss. It is safe for concurrent use: multiple in-flight dispatches may
// emit at the same time.
type Printer struct {
	writer io.Writer
	plain  bool
	prefix string

	mu sync.Mutex
}

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithWriter configures the printer to write to the specified writer.
// Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// PlainText forces plain output with no ANSI styling. Useful for
// non-terminal sinks and deterministic test output.
func PlainText() Option {
	return func(p *Printer) {
		p.plain = true
	}
}

// WithPrefix adds a prefix to every line the printer emits.
func WithPrefix(prefix string) Option {
	return func(p *Printer) {
		p.prefix = prefix
	}
}

// NewPrinter creates a new Printer with the given options.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Info lines stay unstyled; warnings and errors get colored.
var levelStyles = map[types.OutputLevel]lipgloss.Style{
	types.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	types.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// Emit implements types.OutputSink. It writes one line per message and
// returns once the write has been handed to the underlying writer.
func (p *Printer) Emit(level types.OutputLevel, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	text := message
	if !p.plain {
		if style, ok := levelStyles[level]; ok {
			text = style.Render(text)
		}
	}
	if p.prefix != "" {
		text = p.prefix + text
	}

	_, err := fmt.Fprintln(p.writer, text)
	return err
}

// Info emits an informational message.
func (p *Printer) Info(message string) error {
	return p.Emit(types.LevelInfo, message)
}

// Warning emits a warning message.
func (p *Printer) Warning(message string) error {
	return p.Emit(types.LevelWarning, message)
}

// Error emits an error message.
func (p *Printer) Error(message string) error {
	return p.Emit(types.LevelError, message)
}

package output

import (
	"strings"
	"sync"

	"debugcon/pkg/types"
)

// CapturedMessage is a single (level, text) pair recorded by a Capture sink.
type CapturedMessage struct {
	Level types.OutputLevel
	Text  string
}

// Capture is a thread-safe sink that records every emitted message.
// It is the test double for the console's output collaborator.
type Capture struct {
	mu       sync.Mutex
	messages []CapturedMessage
}

// NewCapture creates a new capture sink.
func NewCapture() *Capture {
	return &Capture{}
}

// Emit implements types.OutputSink by recording the message.
func (c *Capture) Emit(level types.OutputLevel, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, CapturedMessage{Level: level, Text: message})
	return nil
}

// Messages returns a copy of all recorded messages in emission order.
func (c *Capture) Messages() []CapturedMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Texts returns just the message texts in emission order.
func (c *Capture) Texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	for i, m := range c.messages {
		out[i] = m.Text
	}
	return out
}

// Len returns the number of recorded messages.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Contains reports whether any recorded message contains the given text.
func (c *Capture) Contains(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if strings.Contains(m.Text, text) {
			return true
		}
	}
	return false
}

// Reset clears all recorded messages.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

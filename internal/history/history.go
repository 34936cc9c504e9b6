// Package history implements the bounded command history ring with
// cursor-based navigation for debugcon.
package history

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidCapacity is returned when a ring is constructed with a
// non-positive capacity.
var ErrInvalidCapacity = errors.New("history capacity must be positive")

// Ring is a bounded, insertion-ordered buffer of past inputs with an
// independent navigation cursor. Appends evict the oldest entry once the
// capacity is exceeded, strictly FIFO.
//
// Entry storage is safe for concurrent Append from multiple dispatches. The
// navigation cursor has a single logical owner (the console engine) and is
// not safe against concurrent navigation calls.
type Ring struct {
	mu       sync.Mutex
	entries  []string
	capacity int
	cursor   int // offset from the most recent entry; -1 = not navigating
}

// NewRing creates a history ring holding at most capacity entries.
// Returns ErrInvalidCapacity if capacity is not positive.
func NewRing(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Ring{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
		cursor:   -1,
	}, nil
}

// Append records an entry at the most-recent end. If the ring is full the
// single oldest entry is evicted. Any in-progress navigation is abandoned:
// the cursor resets to the "not navigating" state.
func (r *Ring) Append(entry string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[1:]
	}
	r.cursor = -1
}

// Previous moves the cursor one step toward older entries and returns the
// entry there. At the oldest retained entry, or with an empty ring, it
// returns "" and the cursor stays put.
func (r *Ring) Previous() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 || r.cursor >= len(r.entries)-1 {
		return ""
	}
	r.cursor++
	return r.entries[len(r.entries)-1-r.cursor]
}

// Next moves the cursor one step toward newer entries and returns the entry
// there. When not navigating it returns "" without moving; stepping past the
// most recent entry returns "" and leaves the cursor at the "not navigating"
// sentinel (the empty-prompt state).
func (r *Ring) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cursor == -1 {
		return ""
	}
	r.cursor--
	if r.cursor == -1 {
		return ""
	}
	return r.entries[len(r.entries)-1-r.cursor]
}

// Entries returns a copy of the retained entries, oldest first.
func (r *Ring) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of retained entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Capacity returns the maximum number of retained entries.
func (r *Ring) Capacity() int {
	return r.capacity
}

// Clear empties the ring and resets the cursor.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
	r.cursor = -1
}

// Package commands provides the concurrent command registry for debugcon.
// It manages registration, case-insensitive lookup, grouped listing and
// subsequence-based name suggestion.
package commands

import (
	"sort"
	"strings"
	"sync"

	"debugcon/pkg/types"
)

// Registry manages command registration and lookup. All operations are safe
// for concurrent use. Registered commands are shared references; the registry
// never constructs or destroys them, and there is no unregister operation.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]types.Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]types.Command),
	}
}

// Register adds a command under its lowercased name. It returns true if the
// command was inserted, false if the name is empty or a command with the same
// normalized name already exists. On duplicate the existing entry is
// preserved, never replaced. The check and insert happen under one lock, so
// concurrent duplicate registrations cannot race past each other.
func (r *Registry) Register(cmd types.Command) bool {
	name := strings.ToLower(cmd.Name())
	if name == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return false
	}
	r.commands[name] = cmd
	return true
}

// Lookup retrieves a command by name, case-insensitively. It returns the
// command and true if found, or nil and false otherwise.
func (r *Registry) Lookup(name string) (types.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[strings.ToLower(name)]
	return cmd, exists
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Group is one module's worth of commands in a grouped listing.
type Group struct {
	Module   string
	Commands []types.Command
}

// Grouped returns all registered commands grouped by their module label.
// Groups are sorted ascending by module name and commands within a group are
// sorted ascending by name. Intended for help/listing output only.
func (r *Registry) Grouped() []Group {
	r.mu.RLock()
	byModule := make(map[string][]types.Command)
	for _, cmd := range r.commands {
		byModule[cmd.Module()] = append(byModule[cmd.Module()], cmd)
	}
	r.mu.RUnlock()

	groups := make([]Group, 0, len(byModule))
	for module, cmds := range byModule {
		sort.Slice(cmds, func(i, j int) bool {
			return cmds[i].Name() < cmds[j].Name()
		})
		groups = append(groups, Group{Module: module, Commands: cmds})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Module < groups[j].Module
	})
	return groups
}

// Suggest returns the registered command names that the user's partial input
// could mean. Only the first whitespace-delimited token of the input is
// considered, lowercased; a name matches when that token is a non-contiguous
// ordered subsequence of it. Results are sorted ascending. Blank input yields
// nothing.
func (r *Registry) Suggest(input string) []string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}
	token := strings.ToLower(fields[0])

	r.mu.RLock()
	var matches []string
	for name := range r.commands {
		if isSubsequence(token, name) {
			matches = append(matches, name)
		}
	}
	r.mu.RUnlock()

	sort.Strings(matches)
	return matches
}

// isSubsequence reports whether every character of query appears in target in
// the same relative order, not necessarily adjacent. Two-pointer scan: the
// target pointer advances every character, the query pointer only on a match.
func isSubsequence(query, target string) bool {
	q := []rune(query)
	i := 0
	for _, r := range strings.ToLower(target) {
		if i < len(q) && q[i] == r {
			i++
		}
	}
	return i == len(q)
}

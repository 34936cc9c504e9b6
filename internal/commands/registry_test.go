package commands

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debugcon/pkg/types"
)

// MockCommand implements types.Command for testing.
type MockCommand struct {
	name        string
	description string
	module      string
	executeFunc func(args []string, out types.OutputSink) error
}

func NewMockCommand(name, module string) *MockCommand {
	return &MockCommand{
		name:        name,
		description: fmt.Sprintf("Mock command: %s", name),
		module:      module,
	}
}

func (m *MockCommand) Name() string        { return m.name }
func (m *MockCommand) Description() string { return m.description }
func (m *MockCommand) Module() string      { return m.module }

func (m *MockCommand) Execute(args []string, out types.OutputSink) error {
	if m.executeFunc != nil {
		return m.executeFunc(args, out)
	}
	return nil
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	assert.True(t, registry.Register(NewMockCommand("hello", "demo")))
	assert.Equal(t, 1, registry.Len())
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	registry := NewRegistry()

	first := NewMockCommand("hello", "demo")
	second := NewMockCommand("hello", "demo")

	require.True(t, registry.Register(first))
	assert.False(t, registry.Register(second))

	cmd, exists := registry.Lookup("hello")
	require.True(t, exists)
	assert.Same(t, first, cmd, "original command must remain authoritative")
}

func TestRegistry_RegisterCaseInsensitiveCollision(t *testing.T) {
	registry := NewRegistry()

	first := NewMockCommand("Hello", "demo")
	second := NewMockCommand("HELLO", "demo")

	require.True(t, registry.Register(first))
	assert.False(t, registry.Register(second))
	assert.Equal(t, 1, registry.Len())

	cmd, exists := registry.Lookup("hello")
	require.True(t, exists)
	assert.Same(t, first, cmd)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	registry := NewRegistry()
	assert.False(t, registry.Register(NewMockCommand("", "demo")))
	assert.Equal(t, 0, registry.Len())
}

func TestRegistry_LookupCaseInsensitive(t *testing.T) {
	registry := NewRegistry()
	require.True(t, registry.Register(NewMockCommand("hello", "demo")))

	for _, name := range []string{"hello", "HELLO", "HeLLo"} {
		cmd, exists := registry.Lookup(name)
		assert.True(t, exists, "lookup %q", name)
		assert.Equal(t, "hello", cmd.Name())
	}
}

func TestRegistry_LookupMissing(t *testing.T) {
	registry := NewRegistry()
	cmd, exists := registry.Lookup("nope")
	assert.False(t, exists)
	assert.Nil(t, cmd)
}

func TestRegistry_Grouped(t *testing.T) {
	registry := NewRegistry()
	require.True(t, registry.Register(NewMockCommand("status", "runtime")))
	require.True(t, registry.Register(NewMockCommand("help", "console")))
	require.True(t, registry.Register(NewMockCommand("clear", "console")))
	require.True(t, registry.Register(NewMockCommand("hello", "demo")))

	groups := registry.Grouped()
	require.Len(t, groups, 3)

	assert.Equal(t, "console", groups[0].Module)
	assert.Equal(t, "demo", groups[1].Module)
	assert.Equal(t, "runtime", groups[2].Module)

	require.Len(t, groups[0].Commands, 2)
	assert.Equal(t, "clear", groups[0].Commands[0].Name())
	assert.Equal(t, "help", groups[0].Commands[1].Name())
}

func TestRegistry_GroupedIdempotent(t *testing.T) {
	registry := NewRegistry()
	require.True(t, registry.Register(NewMockCommand("help", "console")))
	require.True(t, registry.Register(NewMockCommand("hello", "demo")))

	first := registry.Grouped()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, registry.Grouped())
	}
}

func TestRegistry_Suggest(t *testing.T) {
	registry := NewRegistry()
	require.True(t, registry.Register(NewMockCommand("hello", "demo")))
	require.True(t, registry.Register(NewMockCommand("help", "console")))

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "shared prefix matches both",
			input:    "he",
			expected: []string{"hello", "help"},
		},
		{
			// "hl" is a subsequence of both h-e-l-l-o and h-e-l-p.
			name:     "non-contiguous subsequence",
			input:    "hl",
			expected: []string{"hello", "help"},
		},
		{
			name:     "subsequence unique to hello",
			input:    "ho",
			expected: []string{"hello"},
		},
		{
			name:     "subsequence unique to help",
			input:    "hp",
			expected: []string{"help"},
		},
		{
			name:     "case insensitive",
			input:    "HE",
			expected: []string{"hello", "help"},
		},
		{
			name:     "only first token considered",
			input:    "he world",
			expected: []string{"hello", "help"},
		},
		{
			name:     "no match",
			input:    "xyz",
			expected: nil,
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace-only input",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "full name matches itself",
			input:    "hello",
			expected: []string{"hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, registry.Suggest(tt.input))
		})
	}
}

func TestRegistry_SuggestIdempotent(t *testing.T) {
	registry := NewRegistry()
	require.True(t, registry.Register(NewMockCommand("hello", "demo")))
	require.True(t, registry.Register(NewMockCommand("help", "console")))

	first := registry.Suggest("he")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, registry.Suggest("he"))
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			registry.Register(NewMockCommand(fmt.Sprintf("cmd%d", n), "stress"))
		}(i)
		go func(n int) {
			defer wg.Done()
			registry.Lookup(fmt.Sprintf("cmd%d", n))
			registry.Suggest("cmd")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, registry.Len())
}

func TestRegistry_ConcurrentDuplicateRegistration(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	inserted := make([]bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			inserted[n] = registry.Register(NewMockCommand("shared", "stress"))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, ok := range inserted {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one registration may win")
	assert.Equal(t, 1, registry.Len())
}

func TestIsSubsequence(t *testing.T) {
	tests := []struct {
		query   string
		target  string
		matches bool
	}{
		{"", "hello", true},
		{"h", "hello", true},
		{"hl", "hello", true},
		{"hl", "help", true},
		{"lo", "hello", true},
		{"ol", "hello", false},
		{"hello", "hello", true},
		{"helloo", "hello", false},
		{"x", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.target, func(t *testing.T) {
			assert.Equal(t, tt.matches, isSubsequence(tt.query, tt.target))
		})
	}
}

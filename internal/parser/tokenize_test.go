package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_BasicSplitting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   \t  ",
			expected: nil,
		},
		{
			name:     "single token",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "multiple tokens",
			input:    "cmd arg1 arg2",
			expected: []string{"cmd", "arg1", "arg2"},
		},
		{
			name:     "consecutive whitespace collapses",
			input:    "cmd    arg1\t\targ2",
			expected: []string{"cmd", "arg1", "arg2"},
		},
		{
			name:     "leading and trailing whitespace",
			input:    "  cmd arg  ",
			expected: []string{"cmd", "arg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_Quoting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "double quoted argument",
			input:    `cmd "a b" c`,
			expected: []string{"cmd", "a b", "c"},
		},
		{
			name:     "single quoted argument",
			input:    `cmd 'x y'`,
			expected: []string{"cmd", "x y"},
		},
		{
			name:     "unterminated double quote emits partial token",
			input:    `cmd "abc`,
			expected: []string{"cmd", "abc"},
		},
		{
			name:     "unterminated single quote emits partial token",
			input:    `cmd 'abc def`,
			expected: []string{"cmd", "abc def"},
		},
		{
			name:     "quote opened mid-token joins the current token",
			input:    `a"b c"`,
			expected: []string{"ab c"},
		},
		{
			name:     "double quotes preserve single quote",
			input:    `say "it's fine"`,
			expected: []string{"say", "it's fine"},
		},
		{
			name:     "single quotes preserve double quote",
			input:    `say 'a "b" c'`,
			expected: []string{"say", `a "b" c`},
		},
		{
			name:     "quoted empty string becomes empty token",
			input:    `cmd ""`,
			expected: []string{"cmd", ""},
		},
		{
			name:     "adjacent quoted spans concatenate",
			input:    `"foo"'bar'`,
			expected: []string{"foobar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	input := `cmd "a b" c`
	first := Tokenize(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Tokenize(input))
	}
}

package convert

import "testing"

func TestEscapeMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "nothing to escape here",
			expected: "nothing to escape here",
		},
		{
			name:     "substitution",
			input:    "value is |x| today",
			expected: `value is \|x\| today`,
		},
		{
			name:     "interpreted text becomes literal",
			input:    "reference to parameter `x` here",
			expected: "reference to parameter ``x`` here",
		},
		{
			name:     "existing literal untouched",
			input:    "already ``lit`` ok",
			expected: "already ``lit`` ok",
		},
		{
			name:     "literal next to interpreted",
			input:    "``a`` and `b`",
			expected: "``a`` and ``b``",
		},
		{
			name:     "pipes inside backticks are literal",
			input:    "use `|x|` verbatim",
			expected: "use ``|x|`` verbatim",
		},
		{
			name:     "line block marker is not a substitution",
			input:    "| wow, x is pretty neat!",
			expected: "| wow, x is pretty neat!",
		},
		{
			name:     "spaced pipes",
			input:    "a | b | c",
			expected: "a | b | c",
		},
		{
			name:     "already escaped",
			input:    `keep \|x| as is`,
			expected: `keep \|x| as is`,
		},
		{
			name:     "several spans",
			input:    "|a| `b` |c d|",
			expected: "\\|a\\| ``b`` \\|c d\\|",
		},
		{
			name:     "escaped pipe before a span",
			input:    `\|a|b|`,
			expected: `\|a\|b\|`,
		},
		{
			name:     "unbalanced backtick",
			input:    "it`s fine",
			expected: "it`s fine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeMarkup(tt.input); got != tt.expected {
				t.Errorf("EscapeMarkup(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

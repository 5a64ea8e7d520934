package convert

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cleaned docstring of a function documented in the informal style
const customDocstring = `prints x and y. Not intended for actual use; for testing purposes.

Trying to check how the docstring is rendered.

x: any value
    wow, x is so cool!
y: None or bool
    default None
    multiline docs here for y
    I wonder how it will look
additional kwargs go to print

returns None
`

func TestProcessDocstringCustom(t *testing.T) {
	got, err := ProcessDocstring("function", "lumache.test_custom_docstring_format1", strings.Split(customDocstring, "\n"))
	if err != nil {
		t.Fatalf("ProcessDocstring() error: %v", err)
	}

	expected := []string{
		"| prints x and y. Not intended for actual use; for testing purposes.",
		"",
		"| Trying to check how the docstring is rendered.",
		"",
		"x: any value",
		"    | wow, x is so cool!",
		"y: None or bool",
		"    | default None",
		"    | multiline docs here for y",
		"    | I wonder how it will look",
		"| additional kwargs go to print",
		"",
		"| returns None",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ProcessDocstring() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessDocstringIgnoresIdentity(t *testing.T) {
	lines := strings.Split(customDocstring, "\n")

	a, err := ProcessDocstring("function", "a", lines)
	if err != nil {
		t.Fatalf("ProcessDocstring() error: %v", err)
	}
	b, err := ProcessDocstring("class", "b", lines)
	if err != nil {
		t.Fatalf("ProcessDocstring() error: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("result depends on kind or name (-a +b):\n%s", diff)
	}
}

func TestProcessDocstringPassthrough(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"native", []string{"summary", "", ":param kind: desc", ""}},
		{"single line", []string{"Raised if the kind is invalid."}},
		{"single line with trailing blank", []string{"summary", ""}},
		{"only blank lines", []string{"", "  ", ""}},
		{"empty", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProcessDocstring("function", "f", tt.lines)
			if err != nil {
				t.Fatalf("ProcessDocstring() error: %v", err)
			}
			if diff := cmp.Diff(tt.lines, got); diff != "" {
				t.Errorf("ProcessDocstring() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertText(t *testing.T) {
	got, err := ConvertText("summary\n    line one\n    line two\n\n")
	if err != nil {
		t.Fatalf("ConvertText() error: %v", err)
	}

	expected := "| summary\n| line one\n| line two"
	if got != expected {
		t.Errorf("ConvertText() = %q, want %q", got, expected)
	}
}

func TestConvertTextEscapesSpanAfterEscapedPipe(t *testing.T) {
	got, err := ConvertText("summary\n\\|a|b|")
	if err != nil {
		t.Fatalf("ConvertText() error: %v", err)
	}

	expected := "| summary\n| \\|a\\|b\\|"
	if got != expected {
		t.Errorf("ConvertText() = %q, want %q", got, expected)
	}
}

package convert

import (
	"strings"

	"github.com/gerunddev/docbridge/internal/docstring"
)

// Convert rewrites a docstring into reStructuredText lines.
// Native and unconvertible docstrings come back as their source lines.
func Convert(d *docstring.Docstring) ([]string, error) {
	if !d.Convertible() {
		return d.Source(), nil
	}

	lines, err := d.Classify()
	if err != nil {
		return nil, err
	}

	return Render(lines, d.Convention())
}

// ProcessDocstring is the hook a documentation build calls once per
// documented object. kind and name identify the object and do not affect
// the result.
func ProcessDocstring(kind, name string, lines []string) ([]string, error) {
	return Convert(docstring.FromLines(lines))
}

// ConvertText converts raw docstring text
func ConvertText(text string) (string, error) {
	lines, err := Convert(docstring.New(text))
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

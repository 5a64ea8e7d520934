package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/docbridge/internal/convert"
)

// Format represents the output format for diffs
type Format int

const (
	// FormatTerminal renders diffs with Glamour (default)
	FormatTerminal Format = iota
	// FormatPlain returns the unified diff as is
	FormatPlain
)

// Generate converts a docstring and diffs the result against the original.
// An empty string means the conversion changes nothing.
func Generate(name, original string, format Format) (string, error) {
	converted, err := convert.ConvertText(original)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", name, err)
	}

	unified := Unified(name, original, converted)
	if unified == "" {
		return "", nil
	}

	switch format {
	case FormatPlain:
		return unified, nil
	case FormatTerminal:
		return render(unified), nil
	default:
		return "", fmt.Errorf("unsupported diff format: %d", format)
	}
}

// Unified returns the unified diff between the original and converted
// docstring of name
func Unified(name, original, converted string) string {
	if original == converted {
		return ""
	}

	from := name + " (original)"
	to := name + " (converted)"
	edits := myers.ComputeEdits(span.URIFromPath(from), original, converted)
	return fmt.Sprint(gotextdiff.ToUnified(from, to, original, edits))
}

// render wraps a unified diff in a markdown code fence and renders it with
// Glamour, falling back to the fenced text
func render(unified string) string {
	// Wrap in diff code fence for proper syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}

	return rendered
}

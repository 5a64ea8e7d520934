package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gerunddev/docbridge/internal/docstring"
)

// LineBreakMarker starts a reStructuredText line block line, which keeps
// the author's line break instead of reflowing the paragraph
const LineBreakMarker = "| "

// ErrUnknownRole means a classified line carries a role Render does not know
var ErrUnknownRole = errors.New("unknown line role")

// Render turns classified lines into reStructuredText.
// Native lines are emitted verbatim. Custom lines are escaped, re-indented
// and tagged by role; a blank line is inserted between text and a following
// parameter declaration.
func Render(lines []docstring.Line, conv docstring.Convention) ([]string, error) {
	out := make([]string, 0, len(lines))

	if conv == docstring.Native {
		for _, line := range lines {
			out = append(out, line.Text)
		}
		return out, nil
	}

	prev := docstring.RoleEmpty
	for _, line := range lines {
		indent := strings.Repeat(" ", max(line.Indent, 0))

		switch line.Role {
		case docstring.RoleEmpty:
			out = append(out, "")
		case docstring.RoleText, docstring.RoleParamDescription:
			out = append(out, indent+LineBreakMarker+EscapeMarkup(line.Text))
		case docstring.RoleParam:
			// Without the blank line the declaration is swallowed by the
			// preceding line block
			if prev == docstring.RoleText {
				out = append(out, "")
			}
			out = append(out, indent+EscapeMarkup(line.Text))
		default:
			return nil, fmt.Errorf("line %d: %w: %v", line.Index, ErrUnknownRole, line.Role)
		}

		prev = line.Role
	}

	return out, nil
}

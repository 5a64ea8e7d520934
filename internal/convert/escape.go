package convert

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// ``literal``
	literalPattern = regexp.MustCompile("``[^`]+``")
	// `interpreted`
	interpretedPattern = regexp.MustCompile("`([^`]+)`")
	// |substitution|, no whitespace right inside the pipes
	substitutionPattern = regexp.MustCompile(`\|([^|\s](?:[^|]*[^|\s])?)\|`)
)

// marker stands in for a span that must survive escaping untouched
type marker struct {
	id          string
	replacement string
}

// escaper rewrites reserved markup in a single line of text.
// It is not shared between calls.
type escaper struct {
	markers []marker
}

// EscapeMarkup makes docstring text safe for reStructuredText.
// |token| is escaped so it is not read as a substitution reference and
// `token` becomes a double-backquoted inline literal. Existing inline literals
// are left alone, and so is everything inside them.
func EscapeMarkup(text string) string {
	if !strings.ContainsAny(text, "`|") {
		return text
	}

	e := &escaper{}
	text = e.extractLiterals(text)
	text = e.extractInterpreted(text)
	text = escapeSubstitutions(text)
	return e.applyMarkers(text)
}

// createMarker generates a unique placeholder for a span
func (e *escaper) createMarker(replacement string) string {
	id := "DOCBRIDGE" + strings.ReplaceAll(uuid.NewString(), "-", "")
	e.markers = append(e.markers, marker{id: id, replacement: replacement})
	return id
}

// extractLiterals swaps existing inline literals for markers
func (e *escaper) extractLiterals(text string) string {
	return literalPattern.ReplaceAllStringFunc(text, func(match string) string {
		return e.createMarker(match)
	})
}

// extractInterpreted swaps `token` spans for markers of their literal form
func (e *escaper) extractInterpreted(text string) string {
	return interpretedPattern.ReplaceAllStringFunc(text, func(match string) string {
		token := match[1 : len(match)-1]
		return e.createMarker("``" + token + "``")
	})
}

// applyMarkers replaces markers with their final text
func (e *escaper) applyMarkers(text string) string {
	for _, m := range e.markers {
		text = strings.Replace(text, m.id, m.replacement, 1)
	}
	return text
}

// escapeSubstitutions backslash-escapes both pipes of every |token| span
// that is not escaped already
func escapeSubstitutions(text string) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(text) {
		m := substitutionPattern.FindStringIndex(text[pos:])
		if m == nil {
			break
		}
		start, end := pos+m[0], pos+m[1]
		// An escaped opening pipe is literal; its closing pipe may open the next span
		if start > 0 && text[start-1] == '\\' {
			pos = start + 1
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(`\|`)
		b.WriteString(text[start+1 : end-1])
		b.WriteString(`\|`)
		last, pos = end, end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])

	return b.String()
}

package docstring

import (
	"fmt"
	"strings"
)

// Convention tells whether a docstring already uses reStructuredText field
// markup or needs conversion
type Convention int

const (
	// Custom docstrings use the informal indentation-based convention
	Custom Convention = iota
	// Native docstrings already use reStructuredText field lists
	Native
)

func (c Convention) String() string {
	switch c {
	case Custom:
		return "custom"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// Role is the semantic role of a single docstring line
type Role int

const (
	RoleText Role = iota
	RoleEmpty
	RoleParam
	RoleParamDescription
)

func (r Role) String() string {
	switch r {
	case RoleText:
		return "text"
	case RoleEmpty:
		return "empty"
	case RoleParam:
		return "param"
	case RoleParamDescription:
		return "param-description"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Line is a classified docstring line.
// Indent is the depth the line is re-emitted at, Text has its leading
// whitespace removed.
type Line struct {
	Index  int
	Role   Role
	Indent int
	Text   string
}

// Docstring is the documentation text of a single documented object
type Docstring struct {
	source     []string
	lines      []string
	convention Convention
	baseIndent int
}

// New splits raw docstring text into lines and builds a Docstring
func New(text string) *Docstring {
	return FromLines(SplitLines(text))
}

// FromLines builds a Docstring from already split lines.
// The slice is copied; trailing blank lines are trimmed once here.
func FromLines(lines []string) *Docstring {
	source := cloneLines(lines)
	trimmed := TrimTrailingBlankLines(source)

	return &Docstring{
		source:     source,
		lines:      trimmed,
		convention: InferConvention(trimmed),
		baseIndent: InferBaseIndent(trimmed),
	}
}

// SplitLines splits text on line breaks, dropping a trailing \r from each line
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Source returns the lines as given, before trimming
func (d *Docstring) Source() []string {
	return cloneLines(d.source)
}

// Lines returns the lines after trailing blank lines were trimmed
func (d *Docstring) Lines() []string {
	return cloneLines(d.lines)
}

func (d *Docstring) Convention() Convention {
	return d.convention
}

func (d *Docstring) BaseIndent() int {
	return d.baseIndent
}

// Convertible reports whether the docstring needs and supports conversion.
// Native docstrings, empty or all-blank docstrings and single-line
// docstrings are passed through unchanged.
func (d *Docstring) Convertible() bool {
	return d.convention == Custom && len(d.lines) > 1
}

// Classify assigns a role to every line.
// Docstrings that are not Convertible come back verbatim as text lines so
// that rendering them with their convention reproduces the source.
func (d *Docstring) Classify() ([]Line, error) {
	if !d.Convertible() {
		return Verbatim(d.source), nil
	}
	return ClassifyLines(d.lines)
}

// Params returns the number of parameter declarations in the docstring
func (d *Docstring) Params() int {
	if !d.Convertible() {
		return 0
	}
	return len(LocateParameterBlocks(d.lines))
}

// Verbatim wraps lines as unindented text lines without touching them
func Verbatim(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, line := range lines {
		out[i] = Line{Index: i, Role: RoleText, Text: line}
	}
	return out
}

// TrimTrailingBlankLines returns lines without the run of blank lines at the end
func TrimTrailingBlankLines(lines []string) []string {
	end := len(lines)
	for end > 0 && isBlank(lines[end-1]) {
		end--
	}
	return cloneLines(lines[:end])
}

// InferBaseIndent returns the minimum indentation of all non-blank lines
// after the first, or 0 if there are none
func InferBaseIndent(lines []string) int {
	base := -1
	for i := 1; i < len(lines); i++ {
		if isBlank(lines[i]) {
			continue
		}
		if indent := indentOf(lines[i]); base < 0 || indent < base {
			base = indent
		}
	}
	if base < 0 {
		return 0
	}
	return base
}

// InferConvention returns Native as soon as one line is a reStructuredText
// field, Custom otherwise. Mixed docstrings are therefore Native.
func InferConvention(lines []string) Convention {
	for _, line := range lines {
		if IsNativeField(line) {
			return Native
		}
	}
	return Custom
}

const tabWidth = 8

// indentOf returns the indentation of a line in columns
func indentOf(line string) int {
	col := 0
	for _, r := range line {
		switch r {
		case ' ':
			col++
		case '\t':
			col += tabWidth - col%tabWidth
		default:
			return col
		}
	}
	return col
}

func cloneLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func stripIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}

package docstring

import (
	"errors"
	"fmt"
)

// ErrMalformedBlock means a description line is not indented deeper than
// its declaration. The block scan never produces one.
var ErrMalformedBlock = errors.New("malformed parameter block")

// ClassifyLines assigns a role, a re-emission depth and de-indented text to
// every line. The first line is always text.
func ClassifyLines(lines []string) ([]Line, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	base := InferBaseIndent(lines)
	blocks := LocateParameterBlocks(lines)

	owners := make(map[int]int)
	for key, desc := range blocks {
		for _, i := range desc {
			owners[i] = key
		}
	}

	out := make([]Line, 0, len(lines))
	out = append(out, Line{Index: 0, Role: RoleText, Text: stripIndent(lines[0])})

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		indent := indentOf(line)

		if key, ok := owners[i]; ok {
			declIndent := indentOf(lines[key])
			if isBlank(line) {
				out = append(out, Line{Index: i, Role: RoleEmpty, Indent: depth(declIndent, base)})
				continue
			}
			if indent <= declIndent {
				return nil, fmt.Errorf("line %d under declaration on line %d: %w", i, key, ErrMalformedBlock)
			}
			out = append(out, Line{Index: i, Role: RoleParamDescription, Indent: depth(indent, base), Text: stripIndent(line)})
			continue
		}

		switch {
		case isBlank(line):
			next := effectiveIndent(lines, i)
			if next < 0 {
				next = base
			}
			out = append(out, Line{Index: i, Role: RoleEmpty, Indent: depth(next, base)})
		case isDeclaration(blocks, i):
			out = append(out, Line{Index: i, Role: RoleParam, Indent: depth(indent, base), Text: stripIndent(line)})
		default:
			out = append(out, Line{Index: i, Role: RoleText, Indent: depth(indent, base), Text: stripIndent(line)})
		}
	}

	return out, nil
}

func isDeclaration(blocks map[int][]int, i int) bool {
	_, ok := blocks[i]
	return ok
}

// depth is the indentation left after removing the base indentation
func depth(indent, base int) int {
	if indent < base {
		return 0
	}
	return indent - base
}

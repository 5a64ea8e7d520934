package docstring

// blockState is the accumulator of the parameter block scan.
// At most one block is open at any time.
type blockState struct {
	open   bool
	key    int // line index of the declaration
	indent int // indentation of the declaration
}

// LocateParameterBlocks maps the index of every parameter declaration line
// to the ordered indices of its description lines.
//
// A block stays open while lines are indented deeper than its declaration.
// Blank lines are judged by the next non-blank line. The first line that is
// not deeper closes the block and is tested as a new declaration.
func LocateParameterBlocks(lines []string) map[int][]int {
	blocks := make(map[int][]int)

	state := blockState{}
	for i := 1; i < len(lines); i++ {
		state = scanLine(state, lines, i, blocks)
	}

	return blocks
}

// scanLine advances the block scan over line i
func scanLine(state blockState, lines []string, i int, blocks map[int][]int) blockState {
	if state.open {
		if effectiveIndent(lines, i) > state.indent {
			blocks[state.key] = append(blocks[state.key], i)
			return state
		}
		state = blockState{}
	}

	line := lines[i]
	if isBlank(line) || !IsParamDeclaration(line) {
		return state
	}

	blocks[i] = []int{}
	return blockState{open: true, key: i, indent: indentOf(line)}
}

// effectiveIndent returns the indentation of line i, or of the next
// non-blank line if line i is blank. -1 if there is none.
func effectiveIndent(lines []string, i int) int {
	for j := i; j < len(lines); j++ {
		if !isBlank(lines[j]) {
			return indentOf(lines[j])
		}
	}
	return -1
}

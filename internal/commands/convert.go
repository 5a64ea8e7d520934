package commands

import (
	"fmt"
	"strings"

	"github.com/gerunddev/docbridge/internal/convert"
	"github.com/gerunddev/docbridge/internal/docstring"
	"github.com/gerunddev/docbridge/internal/styles"
)

// Convert converts a single docstring from a file or stdin to stdout
func Convert(args []string) {
	paths := positional(args)
	path := ""
	if len(paths) > 0 {
		path = paths[0]
	}

	text, err := readInput(path)
	if err != nil {
		fail("Error reading docstring", err)
	}

	out, err := convert.ConvertText(text)
	if err != nil {
		fail("Error converting docstring", err)
	}

	fmt.Println(out)
}

// Classify prints every line of a docstring with its role and depth
func Classify(args []string) {
	paths := positional(args)
	path := ""
	if len(paths) > 0 {
		path = paths[0]
	}

	text, err := readInput(path)
	if err != nil {
		fail("Error reading docstring", err)
	}

	d := docstring.New(text)
	lines, err := d.Classify()
	if err != nil {
		fail("Error classifying docstring", err)
	}

	conv := d.Convention()
	fmt.Printf("%s %s  %s %d\n",
		styles.LabelStyle.Render("convention:"),
		styles.ConventionStyle(conv).Render(conv.String()),
		styles.LabelStyle.Render("base indent:"),
		d.BaseIndent())
	if !d.Convertible() {
		fmt.Println(styles.DimStyle.Render("(passed through unchanged)"))
	}
	fmt.Println()

	for _, line := range lines {
		role := styles.RoleStyle(line.Role).Render(fmt.Sprintf("%-17s", line.Role))
		fmt.Printf("%3d %s %2d  %s%s\n", line.Index, role, line.Indent, strings.Repeat(" ", line.Indent), line.Text)
	}
}

package commands

import (
	"fmt"

	"github.com/gerunddev/docbridge/internal/diff"
	"github.com/gerunddev/docbridge/internal/styles"
)

// Diff shows what conversion changes in a docstring file or a manifest
func Diff(args []string) {
	paths := positional(args, "--name")
	if len(paths) == 0 {
		fail("No input file specified", nil)
	}
	path := paths[0]

	format := diff.FormatTerminal
	if hasFlag(args, "--plain") {
		format = diff.FormatPlain
	}

	if !isManifest(path) {
		text, err := readInput(path)
		if err != nil {
			fail("Error reading docstring", err)
		}
		printDiff(path, text, format)
		return
	}

	m := loadManifest(path)
	name := flagValue(args, "--name")
	if name != "" {
		obj, ok := m.Find(name)
		if !ok {
			fail("No object named "+name, nil)
		}
		printDiff(obj.Name, obj.Docstring, format)
		return
	}

	for _, obj := range m.Objects {
		printDiff(obj.Name, obj.Docstring, format)
	}
}

func printDiff(name, text string, format diff.Format) {
	out, err := diff.Generate(name, text, format)
	if err != nil {
		fail("Error generating diff", err)
	}

	if out == "" {
		fmt.Println(styles.DimStyle.Render("= " + name + " (unchanged)"))
		return
	}
	fmt.Print(out)
}

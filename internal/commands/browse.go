package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/docbridge/internal/build"
	"github.com/gerunddev/docbridge/internal/diff"
	"github.com/gerunddev/docbridge/internal/styles"
	"github.com/gerunddev/docbridge/internal/tui"
)

// Browse opens an interactive browser over the objects of a manifest
func Browse(args []string) {
	paths := positional(args)
	if len(paths) == 0 {
		fail("No manifest specified", nil)
	}
	manifestPath := paths[0]

	cfg, st := loadEnvironment()
	m := loadManifest(manifestPath)

	diffFunc := func(name string) (string, error) {
		obj, ok := m.Find(name)
		if !ok {
			return "", fmt.Errorf("no object named %s", name)
		}
		return diff.Generate(obj.Name, obj.Docstring, diff.FormatTerminal)
	}

	p := tea.NewProgram(tui.InitBrowseModel(diffFunc), tea.WithAltScreen(), tea.WithInput(os.Stdin))

	go func() {
		// Dry run: browsing never touches the state file
		builder := build.NewBuilder(cfg, st)
		builder.DryRun = true

		result, err := builder.Build(context.Background(), manifestPath, m)
		if err != nil {
			p.Send(tui.BrowseMsg{Err: err})
			return
		}

		data := &tui.BrowseData{Source: manifestPath}
		for _, obj := range result.Objects {
			data.Objects = append(data.Objects, tui.ObjectInfo{
				Name:       obj.Name,
				Kind:       obj.Kind,
				Convention: obj.Convention.String(),
				Params:     obj.Params,
				Status:     string(obj.Status),
				// Dry runs leave the state alone, so this is the last real build
				ConvertedAt: st.GetConvertedAt(obj.Name),
			})
		}
		p.Send(tui.BrowseMsg{Data: data})
	}()

	if _, err := p.Run(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error: " + err.Error()))
		os.Exit(1)
	}
}

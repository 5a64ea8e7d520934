package commands

import (
	"fmt"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/state"
	"github.com/gerunddev/docbridge/internal/styles"
	"github.com/gerunddev/docbridge/internal/tui"
)

// Status opens a live dashboard over the state file and the build log
func Status() {
	cfg, err := config.Load()
	if err != nil {
		fail("Error loading config", err)
	}

	loadFunc := func() (*tui.StatusData, error) {
		return loadStatus(cfg, config.StateFilePath())
	}

	p := tea.NewProgram(tui.InitStatusModel(loadFunc, cfg.Interval), tea.WithInput(os.Stdin))
	if _, err := p.Run(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error: " + err.Error()))
		os.Exit(1)
	}
}

// loadStatus summarizes the state file and the tail of the log
func loadStatus(cfg *config.Config, statePath string) (*tui.StatusData, error) {
	st, err := state.Load(statePath)
	if err != nil {
		return nil, err
	}

	data := &tui.StatusData{
		StatePath: statePath,
		Tracked:   len(st.Objects),
	}

	for _, obj := range st.Objects {
		switch obj.Convention {
		case "custom":
			data.Custom++
		case "native":
			data.Native++
		}
	}

	for path, ms := range st.Manifests {
		data.Manifests = append(data.Manifests, tui.ManifestInfo{
			Path:   path,
			SeenAt: time.Unix(ms.MTime, 0),
		})
	}
	sort.Slice(data.Manifests, func(i, j int) bool {
		return data.Manifests[i].Path < data.Manifests[j].Path
	})

	if cfg.LogFile != "" {
		data.LogLines, data.LastBuild, data.Converted = ParseLogFile(cfg.LogFile, 10)
	}

	return data, nil
}

// Config prints the active configuration, or writes the defaults with "init"
func Config(args []string) {
	if len(args) > 0 && args[0] == "init" {
		cfg := config.DefaultConfig()
		if err := cfg.Save(); err != nil {
			fail("Error writing config", err)
		}
		fmt.Println(styles.SuccessStyle.Render("✓ Wrote " + config.ConfigPath()))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail("Error loading config", err)
	}

	rows := [][2]string{
		{"Config file", config.ConfigPath()},
		{"State file", config.StateFilePath()},
		{"Log file", cfg.LogFile},
		{"Interval", cfg.Interval.String()},
		{"Workers", fmt.Sprint(cfg.Workers)},
		{"Output format", cfg.OutputFormat},
		{"Excluded kinds", fmt.Sprint(cfg.ExcludeKinds)},
	}
	for _, row := range rows {
		fmt.Printf("%s %s\n", styles.LabelStyle.Render(fmt.Sprintf("%-15s", row[0]+":")), styles.ValueStyle.Render(row[1]))
	}
}

package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/docbridge/internal/build"
	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/logger"
	"github.com/gerunddev/docbridge/internal/styles"
	"github.com/gerunddev/docbridge/internal/tui"
)

// Build converts every docstring of a manifest
func Build(args []string) {
	paths := positional(args, "--out")
	if len(paths) == 0 {
		fail("No manifest specified", nil)
	}
	manifestPath := paths[0]
	dryRun := hasFlag(args, "--dry-run")

	if dryRun {
		fmt.Println(styles.TitleStyle.Render("DocBridge Build (DRY RUN)"))
	} else {
		fmt.Println(styles.TitleStyle.Render("DocBridge Build"))
	}
	fmt.Println()

	cfg, st := loadEnvironment()
	m := loadManifest(manifestPath)

	outPath := flagValue(args, "--out")
	if outPath == "" {
		outPath = defaultOutputPath(manifestPath, cfg.OutputFormat)
	}

	fmt.Printf("%s → %s\n", styles.DimStyle.Render(manifestPath), styles.DimStyle.Render(outPath))
	if dryRun {
		fmt.Println(styles.DimStyle.Render("(dry run - no files will be modified)"))
	}
	fmt.Println()

	log, cleanup := logger.Open(cfg.LogFile)
	defer cleanup()
	log.ConfigLoaded(cfg.Workers, cfg.OutputFormat, cfg.Interval)

	builder := build.NewBuilder(cfg, st)
	builder.DryRun = dryRun
	builder.SetLogger(log)

	p := tea.NewProgram(tui.InitBuildModel(manifestPath), tea.WithInput(os.Stdin))

	var result *build.Result
	var buildErr error
	done := make(chan struct{})

	go func() {
		defer close(done)
		result, buildErr = builder.Build(context.Background(), manifestPath, m)

		var tuiResult *tui.BuildResult
		if result != nil {
			tuiResult = &tui.BuildResult{
				Converted: result.Converted,
				Unchanged: result.Unchanged,
				Excluded:  result.Excluded,
				Errors:    result.Errors,
				Duration:  result.EndTime.Sub(result.StartTime),
				DryRun:    dryRun,
			}
		}

		p.Send(tui.BuildMsg{Result: tuiResult, Err: buildErr})
	}()

	if _, err := p.Run(); err != nil {
		fail("Error", err)
	}
	<-done

	if buildErr != nil || result == nil {
		os.Exit(1)
	}

	for _, err := range result.Errors {
		fmt.Println(styles.WarningStyle.Render("⚠ " + err.Error()))
	}

	if dryRun {
		return
	}

	if err := result.Output.Save(outPath); err != nil {
		fail("Error writing output", err)
	}
	if err := st.Save(config.StateFilePath()); err != nil {
		log.StateError("save", err)
		fail("Error saving state", err)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Wrote " + outPath))
}

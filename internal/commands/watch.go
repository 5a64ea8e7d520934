package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerunddev/docbridge/internal/build"
	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/logger"
	"github.com/gerunddev/docbridge/internal/manifest"
	"github.com/gerunddev/docbridge/internal/state"
	"github.com/gerunddev/docbridge/internal/styles"
)

// Watch rebuilds a manifest whenever its content changes
func Watch(args []string) {
	paths := positional(args, "--out", "--interval")
	if len(paths) == 0 {
		fail("No manifest specified", nil)
	}
	manifestPath := paths[0]

	cfg, st := loadEnvironment()

	if v := flagValue(args, "--interval"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			fmt.Fprintf(os.Stderr, "Error: Invalid interval: %s\n", v)
			os.Exit(1)
		}
		cfg.Interval = interval
	}

	outPath := flagValue(args, "--out")
	if outPath == "" {
		outPath = defaultOutputPath(manifestPath, cfg.OutputFormat)
	}

	log, cleanup := logger.Open(cfg.LogFile)
	defer cleanup()

	log.Info("watch started",
		"manifest", manifestPath,
		"interval", cfg.Interval)

	fmt.Println(styles.TitleStyle.Render("DocBridge Watch"))
	fmt.Printf("%s → %s %s\n\n",
		styles.DimStyle.Render(manifestPath),
		styles.DimStyle.Render(outPath),
		styles.HelpStyle.Render(fmt.Sprintf("(every %v, ctrl+c to stop)", cfg.Interval)))

	builder := build.NewBuilder(cfg, st)
	builder.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watchLoop(ctx, cfg, st, builder, log, manifestPath, outPath)

	// Save final state
	if err := st.Save(config.StateFilePath()); err != nil {
		log.StateError("save on shutdown", err)
	}
	log.Info("watch stopped")
	fmt.Println(styles.DimStyle.Render("Stopped watching"))
}

// watchLoop polls the manifest until ctx is cancelled
func watchLoop(ctx context.Context, cfg *config.Config, st *state.State, builder *build.Builder, log *logger.Logger, manifestPath, outPath string) {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		changed, err := st.ManifestChanged(manifestPath)
		switch {
		case err != nil:
			log.Error("failed to check manifest", "manifest", manifestPath, "error", err)
		case changed:
			log.ManifestChanged(manifestPath)
			if result, err := rebuild(ctx, builder, manifestPath, outPath); err != nil {
				log.Error("rebuild failed", "error", err)
				fmt.Println(styles.ErrorStyle.Render("✗ Rebuild failed: " + err.Error()))
			} else {
				if err := st.UpdateManifest(manifestPath); err != nil {
					log.StateError("update manifest", err)
				}
				if err := st.Save(config.StateFilePath()); err != nil {
					log.StateError("save", err)
				}
				fmt.Printf("%s %s\n",
					styles.DimStyle.Render(time.Now().Format(time.TimeOnly)),
					styles.SuccessStyle.Render(result.String()))
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// rebuild converts the manifest and writes the output
func rebuild(ctx context.Context, builder *build.Builder, manifestPath, outPath string) (*build.Result, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	result, err := builder.Build(ctx, manifestPath, m)
	if err != nil {
		return nil, err
	}

	if err := result.Output.Save(outPath); err != nil {
		return nil, err
	}

	return result, nil
}

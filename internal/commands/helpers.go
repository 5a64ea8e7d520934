package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/manifest"
	"github.com/gerunddev/docbridge/internal/state"
	"github.com/gerunddev/docbridge/internal/styles"
)

// fail prints a styled error and exits
func fail(msg string, err error) {
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Println(styles.ErrorStyle.Render("✗ " + msg))
	os.Exit(1)
}

// hasFlag reports whether a boolean flag is present
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// flagValue returns the value following a flag, or "" if it is absent
func flagValue(args []string, name string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v
		}
	}
	return ""
}

// positional returns the arguments that are neither flags nor flag values
func positional(args []string, valueFlags ...string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "--") {
			if !strings.Contains(arg, "=") {
				for _, f := range valueFlags {
					if arg == f {
						i++
						break
					}
				}
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

// readInput reads a file, or stdin for "" and "-"
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// isManifest reports whether path names a manifest rather than a docstring file
func isManifest(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// defaultOutputPath derives the converted manifest path from the input path
func defaultOutputPath(manifestPath, format string) string {
	ext := filepath.Ext(manifestPath)
	base := strings.TrimSuffix(manifestPath, ext)
	if format == "json" {
		return base + ".rst.json"
	}
	return base + ".rst.yaml"
}

// loadEnvironment loads config and state, exiting on failure
func loadEnvironment() (*config.Config, *state.State) {
	cfg, err := config.Load()
	if err != nil {
		fail("Error loading config", err)
	}

	st, err := state.Load(config.StateFilePath())
	if err != nil {
		fail("Error loading state", err)
	}

	return cfg, st
}

// loadManifest loads a manifest, exiting on failure
func loadManifest(path string) *manifest.Manifest {
	m, err := manifest.Load(path)
	if err != nil {
		fail("Error loading manifest", err)
	}
	return m
}

// ParseLogFile reads the last N lines from the log file and extracts build info
func ParseLogFile(logPath string, maxLines int) ([]string, time.Time, int) {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return []string{"Unable to read log file"}, time.Time{}, 0
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	// Get last N lines
	startIdx := 0
	if len(lines) > maxLines {
		startIdx = len(lines) - maxLines
	}
	recentLines := lines[startIdx:]

	var lastBuild time.Time
	converted := 0

	// Look for most recent "build completed" line
	for i := len(recentLines) - 1; i >= 0; i-- {
		line := recentLines[i]
		if strings.Contains(line, "build completed") {
			// Format: 2025-11-27 14:11:57 INFO build completed converted=3 ...
			if len(line) > 19 {
				if t, err := time.Parse(time.DateTime, line[:19]); err == nil {
					lastBuild = t
				}
			}

			if idx := strings.Index(line, "converted="); idx != -1 {
				_, _ = fmt.Sscanf(line[idx:], "converted=%d", &converted) //nolint:errcheck // best effort parsing
			}
			break
		}
	}

	return recentLines, lastBuild, converted
}

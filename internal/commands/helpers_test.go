package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/state"
)

func TestPositional(t *testing.T) {
	args := []string{"api.yaml", "--out", "out.yaml", "--dry-run", "--interval=5s", "extra"}

	got := positional(args, "--out", "--interval")
	want := []string{"api.yaml", "extra"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positional() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagValue(t *testing.T) {
	args := []string{"api.yaml", "--out", "out.yaml", "--interval=5s"}

	if got := flagValue(args, "--out"); got != "out.yaml" {
		t.Errorf("flagValue(--out) = %q", got)
	}
	if got := flagValue(args, "--interval"); got != "5s" {
		t.Errorf("flagValue(--interval) = %q", got)
	}
	if got := flagValue(args, "--name"); got != "" {
		t.Errorf("flagValue(--name) = %q", got)
	}
	if !hasFlag([]string{"--dry-run"}, "--dry-run") || hasFlag(args, "--dry-run") {
		t.Error("hasFlag() mismatch")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		path, format, want string
	}{
		{"api.yaml", "yaml", "api.rst.yaml"},
		{"docs/api.json", "json", "docs/api.rst.json"},
		{"api.yml", "json", "api.rst.json"},
	}

	for _, tt := range tests {
		if got := defaultOutputPath(tt.path, tt.format); got != tt.want {
			t.Errorf("defaultOutputPath(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
		}
	}
}

func TestIsManifest(t *testing.T) {
	for path, want := range map[string]bool{
		"api.yaml":      true,
		"api.YML":       true,
		"api.json":      true,
		"docstring.txt": false,
		"-":             false,
	} {
		if got := isManifest(path); got != want {
			t.Errorf("isManifest(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestParseLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "docbridge.log")
	content := "2025-11-27 14:11:50 INFO build started manifest=api.yaml objects=3\n" +
		"2025-11-27 14:11:57 INFO build completed converted=3 skipped=0 errors=0 duration=2ms\n" +
		"2025-11-27 14:12:10 INFO watch started manifest=api.yaml interval=2s\n"
	if err := os.WriteFile(logPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}

	lines, lastBuild, converted := ParseLogFile(logPath, 2)

	if len(lines) != 2 {
		t.Errorf("Expected 2 recent lines, got %d", len(lines))
	}
	want := time.Date(2025, 11, 27, 14, 11, 57, 0, time.UTC)
	if !lastBuild.Equal(want) {
		t.Errorf("lastBuild = %v, want %v", lastBuild, want)
	}
	if converted != 3 {
		t.Errorf("converted = %d, want 3", converted)
	}
}

func TestParseLogFileMissing(t *testing.T) {
	lines, lastBuild, converted := ParseLogFile(filepath.Join(t.TempDir(), "missing.log"), 10)

	if len(lines) != 1 || !lastBuild.IsZero() || converted != 0 {
		t.Errorf("unexpected result: %v %v %d", lines, lastBuild, converted)
	}
}

func TestLoadStatus(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	manifestPath := filepath.Join(dir, "api.yaml")
	if err := os.WriteFile(manifestPath, []byte("objects: []\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	st := state.NewState()
	st.Update("lumache", "module", "Lumache.", "custom")
	st.Update("lumache.f", "function", "F.\n\n:param x: X.", "native")
	st.Update("lumache.g", "function", "G.", "custom")
	if err := st.UpdateManifest(manifestPath); err != nil {
		t.Fatalf("UpdateManifest() error = %v", err)
	}
	if err := st.Save(statePath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.LogFile = ""

	data, err := loadStatus(cfg, statePath)
	if err != nil {
		t.Fatalf("loadStatus() error = %v", err)
	}

	if data.Tracked != 3 || data.Custom != 2 || data.Native != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", data.Tracked, data.Custom, data.Native)
	}
	if len(data.Manifests) != 1 || data.Manifests[0].Path != manifestPath {
		t.Errorf("Manifests = %+v", data.Manifests)
	}
	if !data.LastBuild.IsZero() {
		t.Errorf("LastBuild = %v, want zero without a log file", data.LastBuild)
	}
}

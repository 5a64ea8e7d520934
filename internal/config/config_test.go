package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// useConfigPath points ConfigPath at a file inside a temp dir for one test
func useConfigPath(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("Expected Interval to be 2s, got %v", cfg.Interval)
	}
	if cfg.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", cfg.Workers)
	}
	if cfg.OutputFormat != "yaml" {
		t.Errorf("Expected yaml output, got %q", cfg.OutputFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "empty log file disables logging",
			config: &Config{
				Interval:     time.Second,
				Workers:      1,
				OutputFormat: "json",
			},
			wantErr: false,
		},
		{
			name: "zero interval",
			config: &Config{
				Interval:     0,
				Workers:      1,
				OutputFormat: "yaml",
			},
			wantErr: true,
		},
		{
			name: "negative interval",
			config: &Config{
				Interval:     -5 * time.Second,
				Workers:      1,
				OutputFormat: "yaml",
			},
			wantErr: true,
		},
		{
			name: "no workers",
			config: &Config{
				Interval:     time.Second,
				Workers:      0,
				OutputFormat: "yaml",
			},
			wantErr: true,
		},
		{
			name: "unknown output format",
			config: &Config{
				Interval:     time.Second,
				Workers:      1,
				OutputFormat: "toml",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	testConfigPath := useConfigPath(t, "config.json")

	testCfg := &Config{
		LogFile:      "/tmp/docbridge-test.log",
		Interval:     45 * time.Second,
		Workers:      3,
		OutputFormat: "json",
		ExcludeKinds: []string{"module"},
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.Interval != testCfg.Interval {
		t.Errorf("Interval mismatch: got %v, want %v", loadedCfg.Interval, testCfg.Interval)
	}
	if loadedCfg.Workers != 3 {
		t.Errorf("Workers mismatch: got %d, want 3", loadedCfg.Workers)
	}
	if loadedCfg.OutputFormat != "json" {
		t.Errorf("OutputFormat mismatch: got %q, want json", loadedCfg.OutputFormat)
	}
	if !loadedCfg.Excluded("module") || loadedCfg.Excluded("function") {
		t.Errorf("ExcludeKinds not loaded: %v", loadedCfg.ExcludeKinds)
	}
	if loadedCfg.LogFile != "/tmp/docbridge-test.log" {
		t.Errorf("LogFile mismatch: got %q", loadedCfg.LogFile)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	useConfigPath(t, "nonexistent.json")

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	if cfg.Interval != 2*time.Second {
		t.Errorf("Expected default interval 2s, got %v", cfg.Interval)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := useConfigPath(t, "config.json")
	if err := os.WriteFile(path, []byte(`{"log_file": "/tmp/x.log"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Interval != defaults.Interval {
		t.Errorf("Interval = %v, want %v", cfg.Interval, defaults.Interval)
	}
	if cfg.Workers != defaults.Workers {
		t.Errorf("Workers = %d, want %d", cfg.Workers, defaults.Workers)
	}
	if cfg.OutputFormat != "yaml" {
		t.Errorf("OutputFormat = %q, want yaml", cfg.OutputFormat)
	}
	if cfg.ExcludeKinds == nil {
		t.Error("ExcludeKinds should not be nil")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"log_file": `},
		{"bad interval", `{"interval": "soon"}`},
		{"bad format", `{"output_format": "xml"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := useConfigPath(t, "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			if _, err := Load(); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "tilde expansion", input: "~/test"},
		{name: "tilde only", input: "~"},
		{name: "absolute path", input: "/tmp/test"},
		{name: "relative path", input: "logs/docbridge.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if !filepath.IsAbs(result) {
				t.Errorf("expandPath(%q) = %q, want absolute path", tt.input, result)
			}
		})
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	useConfigPath(t, "config.json")

	testCfg := &Config{
		LogFile:      "~/docbridge.log",
		Interval:     30 * time.Second,
		Workers:      1,
		OutputFormat: "yaml",
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/adrg/xdg"
)

// Config represents the docbridge configuration
type Config struct {
	LogFile      string        `json:"log_file"`
	Interval     time.Duration `json:"-"` // Custom JSON handling below
	Workers      int           `json:"workers"`
	OutputFormat string        `json:"output_format,omitempty"`
	ExcludeKinds []string      `json:"exclude_kinds,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogFile:      "/tmp/docbridge.log",
		Interval:     2 * time.Second,
		Workers:      runtime.NumCPU(),
		OutputFormat: "yaml",
		ExcludeKinds: []string{}, // Convert every kind by default
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "docbridge", "config.json")
	}
	return filepath.Join(home, ".config", "docbridge", "config.json")
}

// StateFilePath returns the path to the state file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "docbridge", "state.json")
}

// rawConfig is the on-disk form, with the interval as a string
type rawConfig struct {
	LogFile      string   `json:"log_file"`
	Interval     string   `json:"interval"`
	Workers      int      `json:"workers"`
	OutputFormat string   `json:"output_format,omitempty"`
	ExcludeKinds []string `json:"exclude_kinds,omitempty"`
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultConfig()
	cfg := &Config{
		LogFile:      raw.LogFile,
		Interval:     defaults.Interval,
		Workers:      raw.Workers,
		OutputFormat: raw.OutputFormat,
		ExcludeKinds: raw.ExcludeKinds,
	}

	if raw.Interval != "" {
		interval, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format '%s': %w", raw.Interval, err)
		}
		cfg.Interval = interval
	}

	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = defaults.OutputFormat
	}
	if cfg.ExcludeKinds == nil {
		cfg.ExcludeKinds = []string{}
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		LogFile:      c.LogFile,
		Interval:     c.Interval.String(),
		Workers:      c.Workers,
		OutputFormat: c.OutputFormat,
		ExcludeKinds: c.ExcludeKinds,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	validFormats := map[string]bool{
		"yaml": true,
		"json": true,
	}
	if !validFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output_format '%s': must be one of: yaml, json", c.OutputFormat)
	}

	return nil
}

// Excluded reports whether objects of the given kind are left unconverted
func (c *Config) Excluded(kind string) bool {
	for _, k := range c.ExcludeKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileEnv overrides the config file location.
	ConfigFileEnv = "TODOBAR_CONFIG"

	// configFileName is the config file name within the user config dir.
	configFileName = "config.yaml"

	// Default configuration values
	DefaultBackend         = "file"
	DefaultPriority        = 3
	DefaultRotationSeconds = 2
	DefaultPendingGlyph    = "☐"
	DefaultDoneGlyph       = "☑"
)

// Config represents user configuration from config.yaml.
// This file is user-managed and never written by todobar.
type Config struct {
	// Backend selects the persistence backend: "file" or "sqlite".
	Backend string `yaml:"backend"`

	// DBPath is the sqlite database path when Backend is "sqlite".
	// Empty means a tasks.db sibling of the state file.
	DBPath string `yaml:"db_path"`

	// DefaultPriority is the priority for new tasks when --priority
	// is not given (1-5).
	DefaultPriority int `yaml:"default_priority"`

	// RotationSeconds is how long each pending task stays on the bar.
	RotationSeconds int `yaml:"rotation_seconds"`

	// Signal is the waybar realtime signal number to fire after
	// mutations (0 disables). Overridden by --signal.
	Signal int `yaml:"signal"`

	// PendingGlyph and DoneGlyph prefix tasks in the tooltip and list.
	PendingGlyph string `yaml:"pending_glyph"`
	DoneGlyph    string `yaml:"done_glyph"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Backend:         DefaultBackend,
		DefaultPriority: DefaultPriority,
		RotationSeconds: DefaultRotationSeconds,
		PendingGlyph:    DefaultPendingGlyph,
		DoneGlyph:       DefaultDoneGlyph,
	}
}

// ConfigPath resolves the config file location: TODOBAR_CONFIG if set,
// else $XDG_CONFIG_HOME/todobar/config.yaml, else ~/.config/todobar/config.yaml.
func ConfigPath() (string, error) {
	if p := os.Getenv(ConfigFileEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, dataDirName, configFileName), nil
}

// LoadConfig loads the config file if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Start with defaults so unset keys keep their default values.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

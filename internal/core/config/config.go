// Package config handles configuration loading and validation for tasklist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/tasklist/internal/core/styles"
	"github.com/hay-kot/tasklist/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	IDs     task.IDStrategy     `yaml:"ids" toml:"ids"`
	TUI     TUIConfig           `yaml:"tui" toml:"tui"`
	Keys    map[string][]string `yaml:"keys" toml:"keys"`
	LogFile string              `yaml:"-" toml:"-"` // set by caller, not from config file
}

// TUIConfig holds presentation settings for the interactive UI.
type TUIConfig struct {
	Theme        string `yaml:"theme" toml:"theme"`
	Title        string `yaml:"title" toml:"title"`
	Placeholder  string `yaml:"placeholder" toml:"placeholder"`
	EmptyMessage string `yaml:"empty_message" toml:"empty_message"`
	CharLimit    int    `yaml:"char_limit" toml:"char_limit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		IDs: task.IDStrategyClock,
		TUI: TUIConfig{
			Theme:        styles.DefaultTheme,
			Title:        "Todo List",
			Placeholder:  "Add a new task...",
			EmptyMessage: "No tasks yet. Add one above!",
			CharLimit:    256,
		},
		Keys: DefaultKeys(),
	}
}

// Load reads configuration from the given path. Files ending in .toml are
// decoded as TOML, everything else as YAML. If configPath is empty, doesn't
// exist, or is a directory, defaults are returned.
//
// Load does not validate; callers run Validate or ValidateDeep so that
// problems can be reported instead of aborting the load.
func Load(configPath, logFile string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Keys = nil

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := decode(configPath, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.LogFile = logFile

	// Merge user keys into defaults (user config overrides per action)
	cfg.Keys = mergeKeys(DefaultKeys(), cfg.Keys)

	// Apply defaults for zero values
	cfg.applyDefaults()

	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.IDs == "" {
		c.IDs = defaults.IDs
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Title == "" {
		c.TUI.Title = defaults.TUI.Title
	}
	if c.TUI.Placeholder == "" {
		c.TUI.Placeholder = defaults.TUI.Placeholder
	}
	if c.TUI.EmptyMessage == "" {
		c.TUI.EmptyMessage = defaults.TUI.EmptyMessage
	}
	if c.TUI.CharLimit == 0 {
		c.TUI.CharLimit = defaults.TUI.CharLimit
	}
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// LogDir returns the directory the log file is written to.
func (c *Config) LogDir() string {
	if c.LogFile == "" {
		return ""
	}
	return filepath.Dir(c.LogFile)
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultVersion = 1
	DefaultOutput  = OutputText

	// Default values for TUI configuration.
	DefaultAccent      = "212"
	DefaultHistorySize = 10
	MaxHistorySize     = 100
)

// Output formats for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config defines the calc options file. Nothing in it changes arithmetic
// results; it only controls presentation.
type Config struct {
	Version int        `json:"version"`
	Output  string     `json:"output"`
	TUI     *TUIConfig `json:"tui,omitempty"`
}

// TUIConfig holds interactive mode settings.
type TUIConfig struct {
	// Accent is a lipgloss colour used for the result line (default "212").
	Accent *string `json:"accent,omitempty"`

	// HistorySize is how many results the session keeps on screen (default 10).
	HistorySize *int `json:"history_size,omitempty"`
}

// GetAccent returns the accent colour (default "212").
func (c *TUIConfig) GetAccent() string {
	if c == nil || c.Accent == nil || *c.Accent == "" {
		return DefaultAccent
	}
	return *c.Accent
}

// GetHistorySize returns the history size (default 10).
func (c *TUIConfig) GetHistorySize() int {
	if c == nil || c.HistorySize == nil {
		return DefaultHistorySize
	}
	return *c.HistorySize
}

// Validate checks that TUI values are within sensible ranges.
func (c *TUIConfig) Validate() error {
	if c == nil {
		return nil
	}
	if c.HistorySize != nil {
		if *c.HistorySize < 1 {
			return fmt.Errorf("history_size must be at least 1, got %d", *c.HistorySize)
		}
		if *c.HistorySize > MaxHistorySize {
			return fmt.Errorf("history_size must be at most %d, got %d", MaxHistorySize, *c.HistorySize)
		}
	}
	return nil
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version: DefaultVersion,
		Output:  DefaultOutput,
	}
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault reads config from disk, returning defaults if the file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes a config to disk, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	if c.TUI != nil {
		if err := c.TUI.Validate(); err != nil {
			return fmt.Errorf("invalid tui config: %w", err)
		}
	}
	return nil
}

// Package config loads the optional ~/.leaflog/config.yml. Every field
// has a working default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds wiring-level preferences that live outside the database.
type Config struct {
	DataDir        string  `yaml:"data_dir"`         // override for the db location
	PagesPerMinute float64 `yaml:"pages_per_minute"` // default rate for the live timer
	EvalWindowMS   int     `yaml:"eval_window_ms"`   // achievement coalescing window
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PagesPerMinute: 0,
		EvalWindowMS:   150,
	}
}

// DefaultPath returns ~/.leaflog/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".leaflog", "config.yml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Malformed values are repaired, not rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.PagesPerMinute < 0 {
		cfg.PagesPerMinute = 0
	}
	if cfg.EvalWindowMS <= 0 {
		cfg.EvalWindowMS = Default().EvalWindowMS
	}
	return cfg, nil
}

// EvalWindow returns the coalescing window as a duration.
func (c Config) EvalWindow() time.Duration {
	return time.Duration(c.EvalWindowMS) * time.Millisecond
}

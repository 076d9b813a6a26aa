// Package config provides configuration for the liftbase CLI.
//
// The repository itself never reads configuration: it takes an explicit
// location and options. Config carries the CLI-side choices (default
// database path, pool sizing, log level).
//
// Config file locations (priority order):
//  1. $LIFTBASE_CONFIG
//  2. ./liftbase.yaml
//  3. ~/.config/liftbase/config.yaml
//  4. /etc/liftbase/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig selects the backing store and pool behavior.
type DatabaseConfig struct {
	// Path to the SQLite file, or ":memory:" for an ephemeral store.
	Path string `yaml:"path"`
	// MaxConns bounds the connection pool.
	MaxConns int `yaml:"max_conns"`
	// AcquireTimeout caps per-operation connection acquisition.
	AcquireTimeout Duration `yaml:"acquire_timeout"`
}

// Duration wraps time.Duration so yaml values can use "5s" syntax.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in Go string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// LogConfig controls process-wide logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:           "./liftbase.db",
			MaxConns:       10,
			AcquireTimeout: Duration(5 * time.Second),
		},
		Log: LogConfig{Level: "info"},
	}
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = "./liftbase.db"
	}
	if c.Database.MaxConns <= 0 {
		c.Database.MaxConns = 10
	}
	if c.Database.AcquireTimeout <= 0 {
		c.Database.AcquireTimeout = Duration(5 * time.Second)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

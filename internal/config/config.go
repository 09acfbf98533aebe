// Package config provides configuration for the hungarian command.
//
// Config file locations (priority order):
//  1. $HUNGARIAN_CONFIG
//  2. ./hungarian.yaml
//  3. $XDG_CONFIG_HOME/hungarian/config.yaml
//
// Command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/assignment/internal/codec"
	"github.com/katalvlaran/assignment/internal/logging"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "HUNGARIAN_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "hungarian.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "hungarian"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the on-disk configuration.
type Config struct {
	// Input is a file path, or "-" for stdin.
	Input string `yaml:"input"`
	// InputFormat is one of codec.Formats().
	InputFormat string `yaml:"input_format"`
	// OutputFormat is one of codec.Formats().
	OutputFormat string `yaml:"output_format"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Verify cross-checks the result against the brute-force solver when
	// n is small enough.
	Verify bool `yaml:"verify"`
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Input:        "-",
		InputFormat:  codec.FormatText,
		OutputFormat: codec.FormatText,
		LogLevel:     "info",
	}
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
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
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.InputFormat == "" {
		c.InputFormat = d.InputFormat
	}
	if c.OutputFormat == "" {
		c.OutputFormat = d.OutputFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate checks formats and log level.
func (c *Config) Validate() error {
	if _, err := codec.ForFormat(c.InputFormat); err != nil {
		return fmt.Errorf("%w: input_format: %w", ErrInvalidConfig, err)
	}
	if _, err := codec.ForFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("%w: output_format: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// FindConfigPath returns the first existing config file in priority order,
// or "" when there is none.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

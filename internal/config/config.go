// SPDX-License-Identifier: MIT

// Package config loads matcalc settings: built-in defaults, then an optional
// YAML file, then MATCALC_* environment variables. Later sources win.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/matcalc/internal/logging"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "MATCALC"

// Output formats understood by the renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Form    FormConfig    `yaml:"form"`
	Logging LogConfig     `yaml:"logging"`
}

// DisplayConfig controls result rendering.
type DisplayConfig struct {
	Precision int    `yaml:"precision"`
	Format    string `yaml:"format"`
}

// FormConfig holds the initial grid size of a new form.
type FormConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Logger converts the section to the logger's own configuration.
func (l LogConfig) Logger() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Development = l.Development
	return cfg
}

// env mirrors the overridable settings; nil pointers mean "not set".
type env struct {
	Precision *int    `split_words:"true"`
	Format    *string `split_words:"true"`
	Rows      *int    `split_words:"true"`
	Cols      *int    `split_words:"true"`
	LogLevel  *string `split_words:"true"`
	LogDev    *bool   `split_words:"true"`
}

// Default returns default configuration: 2×2 grids, two decimals, text
// output, warn-level JSON logs.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Precision: 2, Format: FormatText},
		Form:    FormConfig{Rows: 2, Cols: 2},
		Logging: LogConfig{Level: "warn"},
	}
}

// Load builds the configuration. An empty path skips the file stage.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var e env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	if e.Precision != nil {
		c.Display.Precision = *e.Precision
	}
	if e.Format != nil {
		c.Display.Format = *e.Format
	}
	if e.Rows != nil {
		c.Form.Rows = *e.Rows
	}
	if e.Cols != nil {
		c.Form.Cols = *e.Cols
	}
	if e.LogLevel != nil {
		c.Logging.Level = *e.LogLevel
	}
	if e.LogDev != nil {
		c.Logging.Development = *e.LogDev
	}

	return nil
}

// Overrides carries command-line values. Empty strings and nil pointers
// leave the loaded value alone.
type Overrides struct {
	Precision *int
	Format    string
	LogLevel  string
}

// ApplyOverrides updates c using any set override. Call Validate afterwards.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Precision != nil {
		c.Display.Precision = *o.Precision
	}
	if o.Format != "" {
		c.Display.Format = o.Format
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
}

// Validate rejects settings the rest of the program cannot honour.
func (c *Config) Validate() error {
	if c.Display.Precision < 0 || c.Display.Precision > 15 {
		return fmt.Errorf("%w: precision %d outside [0,15]", ErrInvalidConfig, c.Display.Precision)
	}
	switch c.Display.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Display.Format)
	}
	if c.Form.Rows <= 0 || c.Form.Cols <= 0 {
		return fmt.Errorf("%w: form size %dx%d", ErrInvalidConfig, c.Form.Rows, c.Form.Cols)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}

// Package config loads the synthesizer settings from a YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.failmsg/pkg/env"
	"digital.vasic.failmsg/pkg/logging"
	"digital.vasic.failmsg/pkg/render"
)

// Environment variables that override file settings.
const (
	EnvMaxElements    = "FAILMSG_MAX_ELEMENTS"
	EnvFloatPrecision = "FAILMSG_FLOAT_PRECISION"
	EnvLogLevel       = "FAILMSG_LOG_LEVEL"
	EnvLogFormat      = "FAILMSG_LOG_FORMAT"
)

// MaxFloatPrecision is the largest precision that still changes the
// rendering of a float64.
const MaxFloatPrecision = 17

// ErrInvalidConfig is wrapped by every Validate error.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings of the synthesizer and its CLI.
type Config struct {
	Render render.Config `yaml:"render"`
	Log    LogConfig     `yaml:"log"`
}

// LogConfig selects the logger backend.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json, zap, both, none
	Output string `yaml:"output"` // file path for the json and both formats
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Render: render.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file is an
// error. Environment overrides are not applied; see ApplyEnv.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadWithEnv loads path, applies the overrides from loader and
// validates the result. An empty path starts from the defaults.
func LoadWithEnv(path string, loader env.Loader) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(loader); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings with the FAILMSG_* variables visible
// through loader.
func (c *Config) ApplyEnv(loader env.Loader) error {
	n, err := loader.GetInt(EnvMaxElements, c.Render.MaxElements)
	if err != nil {
		return err
	}
	c.Render.MaxElements = n

	n, err = loader.GetInt(EnvFloatPrecision, c.Render.FloatPrecision)
	if err != nil {
		return err
	}
	c.Render.FloatPrecision = n

	c.Log.Level = loader.GetWithDefault(EnvLogLevel, c.Log.Level)
	c.Log.Format = loader.GetWithDefault(EnvLogFormat, c.Log.Format)
	return nil
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if c.Render.MaxElements < 1 {
		return fmt.Errorf("%w: render.max_elements must be positive, got %d",
			ErrInvalidConfig, c.Render.MaxElements)
	}
	if c.Render.FloatPrecision < 1 || c.Render.FloatPrecision > MaxFloatPrecision {
		return fmt.Errorf("%w: render.float_precision must be in [1, %d], got %d",
			ErrInvalidConfig, MaxFloatPrecision, c.Render.FloatPrecision)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatConsole, logging.FormatJSON,
		logging.FormatZap, logging.FormatNone:
	case logging.FormatBoth:
		if c.Log.Output == "" {
			return fmt.Errorf("%w: log.output is required for log.format both",
				ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: log.format %q is not one of console, json, zap, both, none",
			ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// RenderOptions returns the render tunables as options.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{render.WithConfig(c.Render)}
}

// Logger builds the configured logger. verbose forces debug level.
func (c *Config) Logger(verbose bool) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = logging.LevelDebug
	}
	return logging.New(c.Log.Format, level, c.Log.Output)
}

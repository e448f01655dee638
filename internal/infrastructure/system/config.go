// Package system provides infrastructure for system-level configuration.
// This covers the user config file (~/.encapsulab.yaml) and ENCAPSULAB_*
// environment overrides.
package system

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading environment overrides,
// e.g. ENCAPSULAB_FORMAT.
const EnvPrefix = "ENCAPSULAB"

// Config represents the user configuration file (~/.encapsulab.yaml).
type Config struct {
	// Format is the default output format: table, json or yaml
	Format string `mapstructure:"format"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	// Concurrency bounds how many walkthrough files run at once (0 = unbounded)
	Concurrency int `mapstructure:"concurrency"`

	// Timeout bounds an entire run (0 disables it)
	Timeout time.Duration `mapstructure:"timeout"`

	// Color enables ANSI colour in table output
	Color bool `mapstructure:"color"`
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Format:      "table",
		LogLevel:    "info",
		Concurrency: 4,
		Timeout:     2 * time.Minute,
		Color:       true,
	}
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be zero or positive, got %d", c.Concurrency)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be zero or positive, got %s", c.Timeout)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// ConfigLoader loads system configuration from disk and the environment.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// Load reads the config file at path, or ~/.encapsulab.yaml when path is
// empty, then applies ENCAPSULAB_* environment overrides. A missing file is
// not an error: defaults and environment still apply.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".encapsulab")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read system config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid system config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("color", d.Color)
}

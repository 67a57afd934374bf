// Package config loads recipekit settings from the environment, optionally
// seeded from dotenv files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/recipekit/internal/logger"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "RECIPEKIT"

// Config holds all settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Parser ParserConfig `mapstructure:"parser"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ParserConfig holds recipe text conventions and batch settings.
type ParserConfig struct {
	// Marker prefixes every ingredient line.
	Marker string `mapstructure:"marker"`
	// PrepLabelWidth is the width of the label before the duration on
	// the prep-time line ("Preparation time: " is 18).
	PrepLabelWidth int `mapstructure:"prep_label_width"`
	// Concurrency bounds ParseBatch fan-out.
	Concurrency int `mapstructure:"concurrency"`
}

// Defaults.
const (
	DefaultMarker         = "*"
	DefaultPrepLabelWidth = 18
	DefaultConcurrency    = 4
)

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (logger.Level, error) {
	return logger.ParseLevel(c.Log.Level)
}

// Load reads configuration from RECIPEKIT_* environment variables. Any
// envFiles are loaded first with godotenv; missing files are skipped and
// variables already set in the environment take precedence.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "normal")
	v.SetDefault("parser.marker", DefaultMarker)
	v.SetDefault("parser.prep_label_width", DefaultPrepLabelWidth)
	v.SetDefault("parser.concurrency", DefaultConcurrency)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings for values the parser cannot work with.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Parser.Marker == "" {
		return errors.New("parser.marker must not be empty")
	}
	if strings.Contains(c.Parser.Marker, "\t") {
		return errors.New("parser.marker must not contain a tab")
	}
	if c.Parser.PrepLabelWidth < 0 {
		return fmt.Errorf("parser.prep_label_width must be >= 0, got %d", c.Parser.PrepLabelWidth)
	}
	if c.Parser.Concurrency < 1 {
		return fmt.Errorf("parser.concurrency must be >= 1, got %d", c.Parser.Concurrency)
	}
	return nil
}

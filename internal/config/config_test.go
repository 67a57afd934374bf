package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipekit/internal/logger"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "normal", cfg.Log.Level)
	assert.Equal(t, DefaultMarker, cfg.Parser.Marker)
	assert.Equal(t, DefaultPrepLabelWidth, cfg.Parser.PrepLabelWidth)
	assert.Equal(t, DefaultConcurrency, cfg.Parser.Concurrency)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logger.LevelNormal, level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RECIPEKIT_LOG_LEVEL", "verbose")
	t.Setenv("RECIPEKIT_PARSER_MARKER", "-")
	t.Setenv("RECIPEKIT_PARSER_PREP_LABEL_WIDTH", "11")
	t.Setenv("RECIPEKIT_PARSER_CONCURRENCY", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "verbose", cfg.Log.Level)
	assert.Equal(t, "-", cfg.Parser.Marker)
	assert.Equal(t, 11, cfg.Parser.PrepLabelWidth)
	assert.Equal(t, 8, cfg.Parser.Concurrency)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("RECIPEKIT_PARSER_CONCURRENCY=2\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("RECIPEKIT_PARSER_CONCURRENCY") })

	cfg, err := Load(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Parser.Concurrency)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Log:    LogConfig{Level: "normal"},
			Parser: ParserConfig{Marker: "*", PrepLabelWidth: 18, Concurrency: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "shouty" }},
		{"empty marker", func(c *Config) { c.Parser.Marker = "" }},
		{"tab in marker", func(c *Config) { c.Parser.Marker = "*\t" }},
		{"negative label width", func(c *Config) { c.Parser.PrepLabelWidth = -1 }},
		{"zero concurrency", func(c *Config) { c.Parser.Concurrency = 0 }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 2, cfg.Display.Precision)
	assert.Equal(t, FormatText, cfg.Display.Format)
	assert.Equal(t, 2, cfg.Form.Rows)
	assert.Equal(t, 2, cfg.Form.Cols)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, `
display:
  precision: 4
  format: json
form:
  rows: 3
  cols: 5
logging:
  level: debug
  development: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Display.Precision)
	assert.Equal(t, FormatJSON, cfg.Display.Format)
	assert.Equal(t, 3, cfg.Form.Rows)
	assert.Equal(t, 5, cfg.Form.Cols)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "display:\n  precision: 0\n  format: text\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Display.Precision)
	assert.Equal(t, 2, cfg.Form.Rows)
	assert.Equal(t, 2, cfg.Form.Cols)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "display:\n  precision: 4\n")
	t.Setenv("MATCALC_PRECISION", "6")
	t.Setenv("MATCALC_FORMAT", "json")
	t.Setenv("MATCALC_ROWS", "3")
	t.Setenv("MATCALC_COLS", "1")
	t.Setenv("MATCALC_LOG_LEVEL", "error")
	t.Setenv("MATCALC_LOG_DEV", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Display.Precision)
	assert.Equal(t, FormatJSON, cfg.Display.Format)
	assert.Equal(t, 3, cfg.Form.Rows)
	assert.Equal(t, 1, cfg.Form.Cols)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "display: [unclosed"))
	assert.Error(t, err)

	t.Setenv("MATCALC_PRECISION", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative precision", func(c *Config) { c.Display.Precision = -1 }},
		{"huge precision", func(c *Config) { c.Display.Precision = 16 }},
		{"unknown format", func(c *Config) { c.Display.Format = "xml" }},
		{"zero rows", func(c *Config) { c.Form.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Form.Cols = -2 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLogConfig_Logger(t *testing.T) {
	lc := LogConfig{Level: "debug", Development: true}.Logger()
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Development)
	assert.Equal(t, []string{"stderr"}, lc.OutputPaths)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{})
	assert.Equal(t, Default(), cfg)

	zero := 0
	cfg.ApplyOverrides(Overrides{Precision: &zero, Format: FormatJSON, LogLevel: "debug"})
	assert.Equal(t, 0, cfg.Display.Precision)
	assert.Equal(t, FormatJSON, cfg.Display.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

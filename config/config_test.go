package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alem-hub/university-patterns/internal/domain/shared"
	"github.com/alem-hub/university-patterns/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "university-patterns", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.False(t, cfg.Observability.AddCaller)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"APP_NAME":   "campus",
		"APP_ENV":    "production",
		"LOG_LEVEL":  "debug",
		"LOG_CALLER": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "campus", cfg.App.Name)
	assert.True(t, cfg.IsProduction())

	opts := cfg.LoggerOptions()
	assert.Equal(t, logger.LevelDebug, opts.Level)
	assert.True(t, opts.AddCaller)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"unknown environment", map[string]string{"APP_ENV": "qa"}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"malformed bool", map[string]string{"LOG_CALLER": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.environ)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrInvalidConfig)
			assert.True(t, shared.IsValidationError(err))
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("APP_NAME=from-dotenv\n"), 0o600))

	// godotenv does not override variables that are already set.
	t.Setenv("APP_NAME", "")
	require.NoError(t, os.Unsetenv("APP_NAME"))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.Name)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.App.Name)
}

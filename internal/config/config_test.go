package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sehat-ai/backend/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.AppPort)
	assert.Equal(t, "gpt-4o", cfg.DefaultModel)
	assert.Equal(t, "gpt-4o-mini", cfg.ClassifierModel)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 120, cfg.UpstreamTimeoutSeconds)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DEFAULT_MODEL", "gpt-4o-mini")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.AppPort)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "gpt-4o-mini", cfg.DefaultModel)
}

func TestLoadConfigFromDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_PORT=5005\nJWT_SECRET=file-secret\n"), 0o600))
	t.Chdir(dir)
	// The global viper instance caches the discovered file path; reset it so
	// later loads search again from their own working directory.
	t.Cleanup(viper.Reset)

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 5005, cfg.AppPort)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, ".env", filepath.Base(cfg.ConfigFileUsed))
}

func TestLoadConfigWithoutFileReportsNoSource(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(viper.Reset)

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Empty(t, cfg.ConfigFileUsed)
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single wildcard", "*", []string{"*"}},
		{"comma separated", "http://localhost:3000,https://app.example.com", []string{"http://localhost:3000", "https://app.example.com"}},
		{"spaces trimmed", " http://localhost:3000 , https://app.example.com ", []string{"http://localhost:3000", "https://app.example.com"}},
		{"empty entries dropped", "http://localhost:3000,,", []string{"http://localhost:3000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{CORSOrigins: tt.raw}
			assert.Equal(t, tt.want, cfg.AllowedOrigins())
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, 60, cfg.HTTP.RateLimit.RequestsPerMinute)
	require.Equal(t, "https://api.astronomyapi.com/api/v2", cfg.Ephemeris.BaseURL)
	require.Equal(t, "daily", cfg.Daily.KeyPrefix)
	require.Equal(t, "configs/lists", cfg.Content.ListDir)
}

func TestLoadFromFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
http:
  address: ":9090"
daily:
  keyPrefix: "forecast"
  ttl: 48h
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("EPHEMERIS_APP_ID", "app-id")
	t.Setenv("DAILY_TTL", "24h")
	t.Setenv("HTTP_RATE_LIMIT_RPM", "120")

	cfg, err := Load()
	require.NoError(t, err)

	// Env beats file beats defaults.
	require.Equal(t, ":7070", cfg.HTTP.Address)
	require.Equal(t, "forecast", cfg.Daily.KeyPrefix)
	require.Equal(t, 24*time.Hour, cfg.Daily.TTL)
	require.Equal(t, "app-id", cfg.Ephemeris.AppID)
	require.Equal(t, 120, cfg.HTTP.RateLimit.RequestsPerMinute)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.HTTP.Address = ""
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Daily.ValkeyEnabled = true
	require.Error(t, cfg.Validate())

	cfg.Daily.ValkeyAddr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}

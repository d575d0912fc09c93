package config_test

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finboard/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, config.SettlementClient, cfg.Settlement.Mode)
	assert.Equal(t, slog.LevelInfo, cfg.App.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.DevServer.CORSOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.com")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("SETTLEMENT_MODE", "server")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_PATH", "/tmp/finboard/session.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, config.SettlementServer, cfg.Settlement.Mode)
	assert.Equal(t, slog.LevelDebug, cfg.App.LogLevel)

	path, err := cfg.SessionPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/finboard/session.json", path)
}

func TestLoad_InvalidSettlementMode(t *testing.T) {
	t.Setenv("SETTLEMENT_MODE", "both")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfig_SessionPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	cfg, err := config.Load()
	require.NoError(t, err)

	path, err := cfg.SessionPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("finboard", "session.json")), path)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	App    App    `mapstructure:"app"`
	Logger Logger `mapstructure:"logger"`
	API    API    `mapstructure:"api"`
	Redis  Redis  `mapstructure:"redis"`
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  name: habit-engine
logger:
  level: debug
  encoding: console
api:
  port: 9090
  cors_origins: ["http://localhost:3000"]
redis:
  enabled: true
  stream_max_len: 500
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, "habit-engine", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.API.CORSOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, int64(500), cfg.Redis.StreamMaxLen)
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("API_PORT", "7000")

	var cfg testConfig
	err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg, WithDefaults(map[string]interface{}{
		"app.name":     "fallback",
		"api.port":     8000,
		"logger.level": "info",
	}))
	require.NoError(t, err)

	assert.Equal(t, "fallback", cfg.App.Name)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 7000, cfg.API.Port)
}

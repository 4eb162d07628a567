package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  throttle: 50
  max_body_size: 32768

database:
  dsn: "file:/tmp/survey.db"
  max_open_conns: 4
  max_idle_conns: 2
  conn_max_lifetime: 600
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, int64(50), cfg.Server.Throttle)
		assert.Equal(t, int64(32768), cfg.Server.MaxBodySize)
		assert.Equal(t, "file:/tmp/survey.db", cfg.Database.DSN)
		assert.Equal(t, 4, cfg.Database.MaxOpenConns)
		assert.Equal(t, 2, cfg.Database.MaxIdleConns)
		assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxLifetimeDuration())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, int64(100), cfg.Server.Throttle)
		assert.Equal(t, int64(64*1024), cfg.Server.MaxBodySize)
		assert.Equal(t, "file:tgsurvey.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TGSURVEY_TEST_DSN", "postgres://survey:secret@db:5432/survey")
		cfg, err := Load(writeConfig(t, "database:\n  dsn: ${TGSURVEY_TEST_DSN}\n"))
		require.NoError(t, err)
		assert.Equal(t, "postgres://survey:secret@db:5432/survey", cfg.Database.DSN)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("timeout too short", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  timeout: 100ms\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server timeout must be at least 1 second")
	})

	t.Run("idle exceeds open", func(t *testing.T) {
		_, err := Load(writeConfig(t, "database:\n  max_open_conns: 2\n  max_idle_conns: 8\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns (8) exceeds max_open_conns (2)")
	})

	t.Run("body size below schema minimum", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  max_body_size: 100\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.max_body_size must be >= 1024")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
}

func TestConfig_Getters(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Listen: ":9090", Timeout: 45 * time.Second, Throttle: 20, MaxBodySize: 2048},
		Database: DatabaseConfig{DSN: "file:x.db", MaxOpenConns: 3},
	}

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)

	throttle, body := cfg.GetLimits()
	assert.Equal(t, int64(20), throttle)
	assert.Equal(t, int64(2048), body)

	assert.Equal(t, "file:x.db", cfg.GetDatabaseConfig().DSN)
}

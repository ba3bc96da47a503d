package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://localhost/storerating
jwt:
  secret_key: test-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "9090", cfg.Server.MetricsPort)
	assert.Equal(t, 3*time.Hour, cfg.JWT.TokenDuration)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5, cfg.RateLimit.LoginBurst)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "3001"
database:
  url: postgres://localhost/storerating
  max_open_conns: 25
jwt:
  secret_key: test-secret
  token_duration: 1h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.JWT.TokenDuration)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "3001"
database:
  url: postgres://localhost/storerating
jwt:
  secret_key: file-secret
`)

	t.Setenv("STORERATING_SERVER__PORT", "4000")
	t.Setenv("STORERATING_JWT__SECRET_KEY", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.SecretKey)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret_key: test-secret
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.url")
}

func TestLoad_MissingSecretKey(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: postgres://localhost/storerating
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret_key")
}

func TestLoad_MissingFileUsesEnvOnly(t *testing.T) {
	t.Setenv("STORERATING_DATABASE__URL", "postgres://localhost/env")
	t.Setenv("STORERATING_JWT__SECRET_KEY", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/env", cfg.Database.URL)
}

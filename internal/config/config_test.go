package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	path := writeConfig(t, `
database:
  url: postgres://localhost/portal?sslmode=disable
session:
  cookie_name: session
  lifetime_seconds: 3600
  key_file: /etc/portal/secret.key
server:
  port: ":9090"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/portal?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, int64(3600), cfg.Session.LifetimeSeconds)
	assert.Equal(t, "/etc/portal/secret.key", cfg.Session.KeyFile)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/portal")

	cfg, err := config.LoadConfig(writeConfig(t, "{}"))
	require.NoError(t, err)
	assert.Equal(t, "jwt", cfg.Session.CookieName)
	assert.Equal(t, int64(604800), cfg.Session.LifetimeSeconds)
	assert.Equal(t, "secret.key", cfg.Session.KeyFile)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "web/templates/*.html", cfg.Server.Templates)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://prod-host/portal")

	path := writeConfig(t, `
database:
  url: postgres://localhost/portal
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://prod-host/portal", cfg.Database.URL)
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.LoadConfig(writeConfig(t, "{}"))
	assert.ErrorIs(t, err, config.ErrDatabaseURLNotSet)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

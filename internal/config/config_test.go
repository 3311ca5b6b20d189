package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Helper()

	path := writeConfig(t, `
database:
  host: localhost
  dbname: social
redis:
  url: localhost:6379
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8075", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Debug)
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Helper()

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database host",
			content: `
database:
  dbname: social
redis:
  url: localhost:6379
`,
		},
		{
			name: "missing redis url",
			content: `
database:
  host: localhost
  dbname: social
`,
		},
		{
			name: "missing dbname",
			content: `
database:
  host: localhost
redis:
  url: localhost:6379
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Helper()

	t.Setenv("POSTGRES_SOCIAL_HOST", "db.internal")
	t.Setenv("SOCIAL_PUBLISHER_PORT", "9000")
	t.Setenv("APP_DEBUG", "true")

	path := writeConfig(t, `
database:
  host: localhost
  dbname: social
redis:
  url: localhost:6379
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Helper()

	_, err := config.Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

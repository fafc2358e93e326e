package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "postgresql:///blogly", cfg.DB.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Same(t, cfg, Cfg)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9090
database:
  driver: sqlite
  dsn: blogly.db
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))
	t.Setenv("BLOGLY_DATABASE_DSN", "file::memory:")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "file::memory:", cfg.DB.DSN)
	assert.Equal(t, 20, cfg.DB.MaxOpen)
}

func TestLoadConfig_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [port"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

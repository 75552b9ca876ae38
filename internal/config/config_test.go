package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-store/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should read yaml and apply defaults", func(t *testing.T) {
		path := writeConfig(t, `
env: dev
storage_path: storage/storage.db
http_server:
  address: localhost:8082
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.Env)
		assert.Equal(t, "storage/storage.db", cfg.StoragePath)
		assert.Equal(t, "localhost:8082", cfg.Addr)
		assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
		assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("should let the environment override the file", func(t *testing.T) {
		t.Setenv("STORAGE_PATH", ":memory:")
		path := writeConfig(t, `
env: prod
storage_path: storage/storage.db
http_server:
  address: localhost:8082
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":memory:", cfg.StoragePath)
	})

	t.Run("should fail when a required field is missing", func(t *testing.T) {
		path := writeConfig(t, `
env: dev
http_server:
  address: localhost:8082
`)

		_, err := config.Load(path)
		assert.Error(t, err)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "does not exist")
	})
}

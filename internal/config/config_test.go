package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/okayjack/internal/config"
	"github.com/dmitrymomot/okayjack/pkg/directive"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse(map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Empty(t, cfg.CatalogPath)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		assert.False(t, cfg.RewriteErrorStatus)
		assert.Empty(t, cfg.Sentry.DSN)
		assert.Equal(t, "production", cfg.Sentry.Environment)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Parse(map[string]string{
			"ADDR":                 "127.0.0.1:9000",
			"LOG_LEVEL":            "debug",
			"LOG_FORMAT":           "text",
			"OKAYJACK_CATALOG":     "catalog.yaml",
			"SHUTDOWN_TIMEOUT":     "5s",
			"REWRITE_ERROR_STATUS": "true",
			"SENTRY_ENVIRONMENT":   "staging",
		})
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
		assert.True(t, cfg.RewriteErrorStatus)
		assert.Equal(t, "staging", cfg.Sentry.Environment)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Parallel()

		_, err := config.Parse(map[string]string{"SHUTDOWN_TIMEOUT": "soon"})
		require.Error(t, err)

		_, err = config.Parse(map[string]string{"SHUTDOWN_TIMEOUT": "0s"})
		require.Error(t, err)

		_, err = config.Parse(map[string]string{"REWRITE_ERROR_STATUS": "maybe"})
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads env file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("OKAYJACK_TEST_UNUSED=1\nLOG_FORMAT=text\n"), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		if _, set := os.LookupEnv("LOG_FORMAT"); !set {
			assert.Equal(t, "text", cfg.LogFormat)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
	})
}

func TestConfigCatalog(t *testing.T) {
	t.Parallel()

	t.Run("default catalog", func(t *testing.T) {
		t.Parallel()

		cat, err := config.Config{}.Catalog()
		require.NoError(t, err)
		assert.Equal(t, directive.DefaultCatalog().Keys(), cat.Keys())
	})

	t.Run("catalog file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("standard: [Target]\ncustom: [Block]\n"), 0o600))

		cat, err := config.Config{CatalogPath: path}.Catalog()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"HX-Success-Target", "HX-Error-Target",
			"HX-Success-Block", "HX-Error-Block", "HX-Block",
		}, cat.Keys())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.Config{CatalogPath: filepath.Join(t.TempDir(), "nope.yaml")}.Catalog()
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("standard: [HX-Target]\n"), 0o600))

		_, err := config.Config{CatalogPath: path}.Catalog()
		require.ErrorIs(t, err, directive.ErrInvalidName)
	})
}

func TestConfigLogger(t *testing.T) {
	t.Parallel()

	log := config.Config{LogLevel: "debug", LogFormat: "text"}.Logger("test")
	require.NotNil(t, log)
}

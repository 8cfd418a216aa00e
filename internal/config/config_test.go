package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sequential", cfg.OrderIDs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "North Texas Fleet & Refrigeration", cfg.Org.Name)
	assert.Equal(t, "USD", cfg.Org.Currency)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `data_dir: /var/lib/dispatchiq
order_ids: random
log:
  level: debug
  format: json
org:
  name: Acme Refrigeration
  currency: EUR
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadWith(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/dispatchiq", cfg.DataDir)
	assert.Equal(t, "random", cfg.OrderIDs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "Acme Refrigeration", cfg.Org.Name)
	assert.Equal(t, "EUR", cfg.Org.Currency)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DISPATCHIQ_ORDER_IDS", "random")
	t.Setenv("DISPATCHIQ_LOG_LEVEL", "warn")

	cfg, err := LoadWith(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "random", cfg.OrderIDs)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsUnknownIDMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("order_ids: uuid7\n"), 0644))

	_, err := LoadWith(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order_ids")
}

func TestPaths(t *testing.T) {
	cfg := Config{DataDir: "/srv/dq"}
	assert.Equal(t, filepath.Join("/srv/dq", "registry.json"), cfg.RegistryPath())
	assert.Equal(t, filepath.Join("/srv/dq", "dispatchiq.db"), cfg.DatabasePath())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "restaurantData", cfg.Storage.Key)
	assert.Equal(t, 0.08, cfg.Restaurant.TaxRate)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Web.Port, cfg.Web.Port)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restodesk.yml")
	data := []byte(`
system:
  workdir: /tmp/rd
web:
  port: 8080
storage:
  type: memory
restaurant:
  tax_rate: 0.1
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, 0.1, cfg.Restaurant.TaxRate)
	// untouched sections keep their defaults
	assert.Equal(t, "USD", cfg.Restaurant.Currency)
	assert.Equal(t, "/tmp/rd/data/restodesk.db", cfg.GetStoragePath())
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("web: [1,"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"RESTODESK_WEB_PORT":           "9000",
		"RESTODESK_NODE_ID":            "12",
		"RESTODESK_DEBUG":              "true",
		"RESTODESK_TAX_RATE":           "0.05",
		"RESTODESK_STORAGE_TYPE":       "memory",
		"RESTODESK_LOGGER_FILE_ENABLE": "1",
	}
	cfg := DefaultConfig()
	cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(t, 9000, cfg.Web.Port)
	assert.Equal(t, int64(12), cfg.System.NodeID)
	assert.True(t, cfg.System.Debug)
	assert.Equal(t, 0.05, cfg.Restaurant.TaxRate)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.True(t, cfg.Logger.FileEnable)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *AppConfig)
	}{
		{"port", func(c *AppConfig) { c.Web.Port = 0 }},
		{"node id", func(c *AppConfig) { c.System.NodeID = 1024 }},
		{"storage type", func(c *AppConfig) { c.Storage.Type = "redis" }},
		{"bolt path", func(c *AppConfig) { c.Storage.Path = "" }},
		{"tax rate", func(c *AppConfig) { c.Restaurant.TaxRate = -0.1 }},
		{"log file", func(c *AppConfig) { c.Logger.FileEnable = true; c.Logger.Filename = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

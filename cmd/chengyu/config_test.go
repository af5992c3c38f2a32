package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chengyu.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data = ["a.json", "b.tsv"]
listen = "127.0.0.1:9000"
cors_origins = ["https://example.org"]
`), 0o644))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.tsv"}, cfg.Data)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, []string{"https://example.org"}, cfg.CORSOrigins)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadConfigSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("data = [\n"), 0o644))
	_, err := loadConfig(path)
	assert.Error(t, err)
}

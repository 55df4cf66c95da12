package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Address)
	assert.Equal(t, BackendLocal, cfg.Backend)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, filepath.Join(cfg.DataDir, "vml.db"), cfg.DBPath())
}

func TestNewEnvOverrides(t *testing.T) {
	t.Setenv("VML_ADDRESS", "127.0.0.1:9000")
	t.Setenv("VML_DATA_DIR", "/tmp/vml-test")
	t.Setenv("VML_BACKEND", BackendCloud)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, "/tmp/vml-test", cfg.DataDir)
	assert.Equal(t, BackendCloud, cfg.Backend)
}

func TestNewYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
address: "0.0.0.0:8080"
backend: cloud
cloud:
  auth_url: "https://keystone.example.com/v3"
  region: "RegionOne"
  project_name: "demo"
`), 0o644))
	t.Setenv("VML_CONFIG", path)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, BackendCloud, cfg.Backend)
	assert.Equal(t, "https://keystone.example.com/v3", cfg.Cloud.AuthURL)
	assert.Equal(t, "RegionOne", cfg.Cloud.Region)
}

func TestNewEnvBeatsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`address: "0.0.0.0:8080"`), 0o644))
	t.Setenv("VML_CONFIG", path)
	t.Setenv("VML_ADDRESS", "127.0.0.1:9999")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Address)
}

func TestNewUnknownBackend(t *testing.T) {
	t.Setenv("VML_BACKEND", "mainframe")

	_, err := New()
	assert.Error(t, err)
}

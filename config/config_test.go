package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: jalsetu
  log:
    level: debug
remoteStore:
  provider: memory
assessment:
  baseUrl: http://localhost:8000
  timeout: 5s
location:
  fixTimeout: 3s
session:
  surface: gramin
`

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, testYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "jalsetu", cfg.Env.ServiceName)
	assert.Equal(t, RemoteStoreMemory, cfg.RemoteStore.Provider)
	assert.Equal(t, "http://localhost:8000", cfg.Assessment.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Assessment.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Location.FixTimeout)
	assert.Equal(t, "gramin", cfg.Session.Surface)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("ASSESSMENT_BASEURL", "https://assess.example.com")
	t.Setenv("LOCATION_FIXTIMEOUT", "7s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "https://assess.example.com", cfg.Assessment.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.Location.FixTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")

	assert.ErrorContains(t, err, "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.ApplyDefaults()

	assert.Equal(t, RemoteStoreFirebase, cfg.RemoteStore.Provider)
	assert.Equal(t, AuthFirebase, cfg.Auth.Provider)
	assert.Equal(t, 10*time.Second, cfg.Location.FixTimeout)
	assert.Equal(t, 30*time.Second, cfg.Assessment.Timeout)
	assert.Equal(t, defaultGeocoderBaseURL, cfg.Geocoder.BaseURL)
	assert.Equal(t, 256, cfg.Location.GeocodeCacheSize)
	assert.Equal(t, 8000, cfg.Stub.Port)
	assert.NotNil(t, cfg.Session)
}

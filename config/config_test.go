package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/style-peers/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWithEnv("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "maplibre:style", cfg.Host.Namespace)
	assert.Equal(t, "0.1.0", cfg.Host.Version)
}

func TestLoad_File(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join("testdata", "stylepeer.toml"), nil)
	require.NoError(t, err)

	assert.Equal(t, "styles/streets.json", cfg.Style)
	assert.Equal(t, Log{Level: "debug", Development: true}, cfg.Log)
	assert.Equal(t, Host{Namespace: "acme:layers", Version: "1.2.0", MemoryLimitPages: 256}, cfg.Host)
	assert.Len(t, cfg.HostOptions(), 3)
}

func TestLoad_EnvOverrides(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join("testdata", "stylepeer.toml"), map[string]string{
		"STYLEPEER_LOG_LEVEL":      "ERROR",
		"STYLEPEER_HOST_VERSION":   "v2.0.0",
		"STYLEPEER_STYLE":          "other.yaml",
		"UNRELATED_HOST_NAMESPACE": "x:y",
	})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "2.0.0", cfg.Host.Version)
	assert.Equal(t, "acme:layers", cfg.Host.Namespace)
	assert.Equal(t, "other.yaml", cfg.Style)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		environ map[string]string
		kind    errors.Kind
	}{
		{"missing file", filepath.Join("testdata", "missing.toml"), nil, errors.KindInvalidData},
		{"unknown key", filepath.Join("testdata", "unknown_key.toml"), nil, errors.KindInvalidData},
		{"bad level", "", map[string]string{"STYLEPEER_LOG_LEVEL": "loud"}, errors.KindInvalidInput},
		{"bad namespace", "", map[string]string{"STYLEPEER_HOST_NAMESPACE": "style"}, errors.KindInvalidInput},
		{"bad version", "", map[string]string{"STYLEPEER_HOST_VERSION": "one"}, errors.KindInvalidInput},
		{"bad pages", "", map[string]string{"STYLEPEER_HOST_MEMORY_LIMIT_PAGES": "-1"}, errors.KindInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithEnv(tt.path, tt.environ)
			require.Error(t, err)
			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errors.PhaseConfig, e.Phase)
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestConfig_Logger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	cfg.Log.Level = "nope"
	_, err = cfg.Logger()
	require.Error(t, err)
}

func TestLoad_ProcessEnv(t *testing.T) {
	t.Setenv("STYLEPEER_HOST_NAMESPACE", "acme:tiles")
	t.Setenv("STYLEPEER_HOST_MEMORY_LIMIT_PAGES", "32")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "acme:tiles", cfg.Host.Namespace)
	assert.Equal(t, uint32(32), cfg.Host.MemoryLimitPages)
}

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, BackendRing, cfg.Queue.Backend)
	assert.Equal(t, 16, cfg.Queue.InitialCapacity)
	assert.NoError(t, cfg.Validate())
}

func TestParse_Overlay(t *testing.T) {
	raw := []byte(`
logger:
  log_level: debug
  file_log_name: /var/log/queue.log
  max_size: 10
  compress: true
queue:
  initial_capacity: "64"
  backend: list
`)

	cfg, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, "/var/log/queue.log", cfg.Logger.FileLogName)
	assert.Equal(t, 10, cfg.Logger.MaxSize)
	assert.True(t, cfg.Logger.Compress)
	assert.Equal(t, 64, cfg.Queue.InitialCapacity)
	assert.Equal(t, BackendList, cfg.Queue.Backend)
}

func TestParse_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("queue:\n  initial_capacity: 8\n"))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Queue.InitialCapacity)
	assert.Equal(t, BackendRing, cfg.Queue.Backend)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"malformed_yaml", "queue: [", "failed to parse config"},
		{"unknown_key", "queue:\n  capacity: 4\n", "failed to decode config"},
		{"wrong_type", "queue:\n  initial_capacity: lots\n", "failed to decode config"},
		{"negative_capacity", "queue:\n  initial_capacity: -1\n", "invalid config"},
		{"unknown_backend", "queue:\n  backend: heap\n", "invalid config"},
		{"unknown_level", "logger:\n  log_level: loud\n", "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.raw))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queue:\n  backend: list\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendList, cfg.Queue.Backend)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

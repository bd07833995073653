package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-j-channon/not-a-timer/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notatimer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.Empty(t, cfg.Control.Addr)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
control:
  addr: ":8080"
store:
  backend: redis
  options:
    addr: redis.internal:6379
    db: 3
    prefix: "jobs:"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Control.Addr)
	assert.Equal(t, config.BackendRedis, cfg.Store.Backend)

	opts, err := cfg.Store.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, "jobs:", opts.Prefix)
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: cassandra
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cassandra")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "store: [not: a: mapping")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestRedisOptions_Defaults(t *testing.T) {
	opts, err := config.StoreConfig{Backend: config.BackendRedis}.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Zero(t, opts.DB)
}

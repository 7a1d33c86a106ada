package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "listsync", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sources", cfg.Sync.SourcePrefix)
	assert.Equal(t, "id", cfg.Sync.IDField)
	assert.Equal(t, "source", cfg.Sync.Strategy)
	assert.Equal(t, 30*time.Second, cfg.Sync.CacheTTL())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "SERVER_PORT=9090\nSYNC_STRATEGY=append\nSYNC_CACHE_TTL_SECONDS=0\nDATABASE_DRIVER=sqlite\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	t.Cleanup(func() {
		for _, k := range []string{"SERVER_PORT", "SYNC_STRATEGY", "SYNC_CACHE_TTL_SECONDS", "DATABASE_DRIVER"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "append", cfg.Sync.Strategy)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, time.Duration(0), cfg.Sync.CacheTTL())
}

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaultsSqlite(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", DataDir: "/var/lib/daybook", NotifyInterval: 30 * time.Second}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, filepath.Join("/var/lib/daybook", "daybook.db"), cfg.SQLitePath)
	assert.Equal(t, filepath.Join("/var/lib/daybook", "local.db"), cfg.LocalStorePath)
}

func TestResolveDefaultsPostgresNeedsDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres"}
	assert.Error(t, cfg.ResolveDefaults())

	cfg = &Config{DBDriver: "postgres", PostgresDSN: "postgres://localhost/daybook"}
	require.NoError(t, cfg.ResolveDefaults())
}

func TestResolveDefaultsRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "mongo"}
	assert.Error(t, cfg.ResolveDefaults())
}

func TestResolveDefaultsRejectsCoarseNotifyInterval(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", NotifyInterval: 5 * time.Minute}
	assert.Error(t, cfg.ResolveDefaults())
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
}

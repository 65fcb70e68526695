package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/techtracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"TECHTRACKER_STORE", "TECHTRACKER_DATA_PATH", "DATABASE_URL", "REDIS_URL",
		"TECHTRACKER_REDIS_PREFIX", "TECHTRACKER_ROADMAP_NAME", "TECHTRACKER_VERBOSE", "TECHTRACKER_SEED",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TECHTRACKER_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("TECHTRACKER_VERBOSE", "true")
	t.Setenv("TECHTRACKER_SEED", "0")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, store.DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.ShouldSeed())
}

func TestFromEnv_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("TECHTRACKER_VERBOSE", "loud")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TECHTRACKER_VERBOSE")
}

func TestResolve_FileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TECHTRACKER_ROADMAP_NAME", "From Env")
	t.Setenv("TECHTRACKER_STORE", "memory")

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"roadmap_name": "From File"}`), 0644))

	cfg, err := Resolve(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "From File", cfg.RoadmapName)
	assert.Equal(t, store.DriverMemory, cfg.StoreDriver)
}

func TestResolve_DefaultsOnly(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve("")
	require.NoError(t, err)

	assert.Equal(t, store.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, DefaultRoadmapName, cfg.RoadmapName)
}

func TestResolve_InvalidMergedConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("TECHTRACKER_STORE", "postgres")

	_, err := Resolve("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database_url")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.NotEmpty(t, cfg.SQLitePath)
	assert.NotEmpty(t, cfg.MediaDir)
	assert.True(t, cfg.SeedEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRACKFIRE_ENV", "production")
	t.Setenv("TRACKFIRE_DB_PATH", "/tmp/track.db")
	t.Setenv("TRACKFIRE_SEED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/track.db", cfg.SQLitePath)
	assert.False(t, cfg.SeedEnabled)
}

func TestGetBoolEnv_Malformed(t *testing.T) {
	t.Setenv("TRACKFIRE_SEED", "definitely")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.SeedEnabled)
}

package config_test

import (
	"testing"

	"wedding-planner/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "wedding-exports", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.True(t, cfg.Seating.Enabled)
	assert.Equal(t, "columns", cfg.Seating.Strategy)
	assert.True(t, cfg.Seating.IsValidStrategy())
	assert.Equal(t, 1800.0, cfg.Seating.HallWidth)
	assert.Equal(t, 1200.0, cfg.Seating.HallHeight)
	assert.Equal(t, 30, cfg.Seating.CacheTTLSeconds)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SEATING_STRATEGY", "u-shape")
	t.Setenv("SEATING_HALL_WIDTH", "2400")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "u-shape", cfg.Seating.Strategy)
	assert.True(t, cfg.Seating.IsValidStrategy())
	assert.Equal(t, 2400.0, cfg.Seating.HallWidth)
}

func TestLoadConfig_InvalidStrategy(t *testing.T) {
	t.Setenv("SEATING_STRATEGY", "spiral")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Seating.IsValidStrategy())
}

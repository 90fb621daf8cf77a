package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "Asia/Shanghai", cfg.Subscription.Timezone)
	assert.Equal(t, "5 0 * * *", cfg.Subscription.LockSweepCron)
	assert.False(t, cfg.Redis.Enabled())
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KOLHUB_DATABASE_DRIVER", "sqlite")
	t.Setenv("KOLHUB_DATABASE_DATABASE", "kolhub.db")
	t.Setenv("KOLHUB_REDIS_HOST", "cache.internal")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "kolhub.db", cfg.Database.GetDSN())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache.internal:6379", cfg.Redis.GetAddr())
}

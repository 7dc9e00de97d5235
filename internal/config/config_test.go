package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5*time.Minute, cfg.Schedule.CacheTTL)
	assert.Equal(t, 3*time.Second, cfg.Kafka.OutboxInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("SCHEDULE_CACHE_TTL", "90s")
	t.Setenv("ROLE_CATALOG_FILE", "/etc/resto/roles.yaml")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 90*time.Second, cfg.Schedule.CacheTTL)
	assert.Equal(t, "/etc/resto/roles.yaml", cfg.Schedule.RoleCatalogFile)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("garbage", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("-5s", time.Minute))
	assert.Equal(t, 2*time.Hour, parseDuration("2h", time.Minute))
}

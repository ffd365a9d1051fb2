package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte(`
server:
  port: "9090"
database:
  driver: postgres
  dsn: "host=db user=shop dbname=shop"
events:
  enabled: true
  brokers: ["kafka-1:9092", "kafka-2:9092"]
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("JWT_EXPIRE_HOURS", "12")

	cfg := LoadFrom(path)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 12, cfg.JWT.ExpireHours)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Brokers)
	assert.Equal(t, "shopfront.orders", cfg.Events.Topic)
}

func TestLoadFromMissingFileFallsBackToDefaults(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "absent.yml"))

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 6, cfg.Security.PasswordPolicy.MinLength)
	assert.Equal(t, 5, cfg.Security.LoginRateLimit.MaxAttempts)
	assert.Equal(t, 10, cfg.Queue.Queues["default"])
}

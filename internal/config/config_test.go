package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var configKeys = []string{
	"PORT", "APP_ENV", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT",
	"DB_SSLMODE", "DB_MAX_RETRIES", "DB_AUTO_MIGRATE", "REDIS_ADDR", "PLACES_CACHE_TTL",
	"IDEMPOTENCY_TTL", "KAFKA_BROKER", "KAFKA_GROUP_ID", "OUTBOX_POLL_INTERVAL",
	"CORS_ALLOWED_ORIGINS", "JWT_SECRET", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// Empty values count as unset, so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 5, cfg.DBMaxRetries)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, 10*time.Minute, cfg.PlacesCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, "go-attendance-geofence", cfg.KafkaGroupID)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, []string{"https://tamamy.vercel.app"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("REDIS_ADDR", " redis:6379 ")
	t.Setenv("PLACES_CACHE_TTL", "90s")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "0")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "db", cfg.DB.Host)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Second, cfg.PlacesCacheTTL)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 1, cfg.RateLimitBurst)
}

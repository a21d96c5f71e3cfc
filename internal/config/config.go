package config

import (
	"strings"
	"time"

	"go-attendance/internal/shared/connection"

	"github.com/spf13/viper"
)

type Config struct {
	Port   string
	AppEnv string

	DB            connection.PostgresConfig
	DBMaxRetries  int
	DBAutoMigrate bool

	RedisAddr      string
	PlacesCacheTTL time.Duration
	IdempotencyTTL time.Duration

	KafkaBroker        string
	KafkaGroupID       string
	OutboxPollInterval time.Duration

	CORSAllowedOrigins []string
	JWTSecret          string

	RateLimitRPS   float64
	RateLimitBurst int
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// KafkaEnabled reports whether the api should write outbox events.
func (c Config) KafkaEnabled() bool {
	return c.KafkaBroker != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "attendance")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("PLACES_CACHE_TTL", "10m")
	v.SetDefault("IDEMPOTENCY_TTL", "24h")
	v.SetDefault("KAFKA_BROKER", "")
	v.SetDefault("KAFKA_GROUP_ID", "go-attendance-geofence")
	v.SetDefault("OUTBOX_POLL_INTERVAL", "3s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "https://tamamy.vercel.app")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
}

// Load reads the process environment. Call godotenv.Load first to pick up
// a local .env file.
func Load() Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return Config{
		Port:   v.GetString("PORT"),
		AppEnv: v.GetString("APP_ENV"),
		DB: connection.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		DBMaxRetries:       positive(v.GetInt("DB_MAX_RETRIES"), 1),
		DBAutoMigrate:      v.GetBool("DB_AUTO_MIGRATE"),
		RedisAddr:          strings.TrimSpace(v.GetString("REDIS_ADDR")),
		PlacesCacheTTL:     v.GetDuration("PLACES_CACHE_TTL"),
		IdempotencyTTL:     v.GetDuration("IDEMPOTENCY_TTL"),
		KafkaBroker:        strings.TrimSpace(v.GetString("KAFKA_BROKER")),
		KafkaGroupID:       v.GetString("KAFKA_GROUP_ID"),
		OutboxPollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		JWTSecret:          v.GetString("JWT_SECRET"),
		RateLimitRPS:       v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:     positive(v.GetInt("RATE_LIMIT_BURST"), 1),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func positive(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}

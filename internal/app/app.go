package app

import (
	"database/sql"
	"time"

	"go-attendance/internal/config"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/shared/connection"
	"go-attendance/internal/shared/migration"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultCORSOrigin = "https://tamamy.vercel.app"

// Infra holds the shared handles the modules are built on. Redis and
// Outbox stay nil when the corresponding service is not configured.
type Infra struct {
	DB       *sql.DB
	GormDB   *gorm.DB
	Redis    redis.Cmdable
	Outbox   kafka.OutboxRepository
	Registry *prometheus.Registry
}

// BuildApp connects the stores, migrates the schema and mounts every route
// on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	closers := []func(){func() { _ = sqlDB.Close() }}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.DBAutoMigrate {
		if err := migration.Migrate(gormDB); err != nil {
			cleanup()
			return nil, err
		}
		log.Info("schema migrated")
	}

	infra := Infra{
		DB:       sqlDB,
		GormDB:   gormDB,
		Registry: prometheus.NewRegistry(),
	}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		infra.Redis = rdb
		log.Info("redis connection established")
	} else {
		log.Info("REDIS_ADDR not set, place cache and idempotency keys disabled")
	}

	if cfg.KafkaEnabled() {
		infra.Outbox = kafka.NewOutboxRepository(sqlDB)
		log.Info("outbox enabled", zap.String("broker", cfg.KafkaBroker))
	}

	setupRouter(router, cfg, infra, logger)
	return cleanup, nil
}

func setupRouter(router *gin.Engine, cfg config.Config, infra Infra, logger *zap.Logger) {
	infra.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{defaultCORSOrigin}
	}

	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization", middleware.HeaderRequestID, middleware.HeaderIdempotencyKey},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.Use(middleware.NewHTTPMetrics(infra.Registry).Middleware())

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(infra.Registry, promhttp.HandlerOpts{})))

	registerModules(router, cfg, infra, logger)
}

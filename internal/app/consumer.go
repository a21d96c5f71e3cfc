package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-attendance/internal/attendance"
	"go-attendance/internal/config"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka/consumer"
	"go-attendance/internal/place"
	"go-attendance/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer classifies recorded attendance against the stored places
// until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if !cfg.KafkaEnabled() {
		return errKafkaBrokerRequired
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var cache redis.Cmdable
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache = rdb
	}

	placeService := place.NewService(sqlDB, place.NewRepository(gormDB), cache, cfg.PlacesCacheTTL, logger)
	attendanceService := attendance.NewService(sqlDB, attendance.NewRepository(gormDB), logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.AttendanceRecordedTopic,
		GroupID:        cfg.KafkaGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeAttendanceRecorded(ctx, reader, placeService, attendanceService, logger)

	log.Info("consumer shutting down")
	return nil
}

package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go-attendance/internal/config"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/messaging/kafka/producer"
	"go-attendance/internal/shared/connection"

	"go.uber.org/zap"
)

var errKafkaBrokerRequired = errors.New("KAFKA_BROKER is required")

// RunWorker relays outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.DBMaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)

	log.Info("worker shutting down")
	return nil
}

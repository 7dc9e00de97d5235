package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-resto/internal/config"
	"go-resto/internal/messaging/kafka"
	"go-resto/internal/messaging/kafka/producer"
	"go-resto/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to kafka until the process is signalled.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	deps, err := connectInfra(cfg, false)
	if err != nil {
		return err
	}
	defer deps.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(deps.SQLDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Kafka.OutboxInterval)

	log.Info("worker shut down")
	return nil
}

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-resto/internal/config"
	"go-resto/internal/events"
	"go-resto/internal/messaging/kafka"
	"go-resto/internal/messaging/kafka/consumer"
	"go-resto/internal/rolecatalog"
	"go-resto/internal/schedule"
	"go-resto/internal/shared/metrics"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer releases future assignments of fired employees.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	deps, err := connectInfra(cfg, true)
	if err != nil {
		return err
	}
	defer deps.Close()

	catalog, err := rolecatalog.Load(cfg.Schedule.RoleCatalogFile)
	if err != nil {
		return err
	}

	scheduleService := schedule.NewService(
		deps.SQLDB,
		schedule.NewRepository(deps.GormDB),
		kafka.NewOutboxRepository(deps.SQLDB),
		deps.Redis,
		catalog,
		cfg.Schedule.CacheTTL,
		metrics.NewService(),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, scheduleService, logger)

	log.Info("consumer shut down")
	return nil
}

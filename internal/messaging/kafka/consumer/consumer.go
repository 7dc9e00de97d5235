package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-resto/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer loop uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// AssignmentReleaser removes an employee's assignments from a date onward.
type AssignmentReleaser interface {
	ReleaseFrom(ctx context.Context, employeeID, fromDate string) (int, error)
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	releaser AssignmentReleaser,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if !HandleEmployeeLifecycle(ctx, msg, releaser, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleEmployeeLifecycle processes one message and reports whether it may be
// committed. Undecodable messages and unrelated event types are committed so
// they do not block the partition; release failures are left for redelivery.
func HandleEmployeeLifecycle(
	ctx context.Context,
	msg kafkago.Message,
	releaser AssignmentReleaser,
	log *zap.Logger,
) bool {
	var event events.EmployeeFiredEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed", zap.Error(err))
		return true
	}
	if event.EventType != events.EmployeeFiredEventType {
		log.Debug("skipping employee lifecycle event", zap.String("event_type", event.EventType))
		return true
	}

	from := event.EffectiveDate
	if from == "" {
		from = event.OccurredAt.UTC().Format("2006-01-02")
		if event.OccurredAt.IsZero() {
			from = time.Now().UTC().Format("2006-01-02")
		}
	}

	removed, err := releaser.ReleaseFrom(ctx, event.EmployeeID, from)
	if err != nil {
		log.Error("release assignments for fired employee failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("from_date", from),
			zap.Error(err),
		)
		return false
	}

	log.Info("released assignments for fired employee",
		zap.String("request_id", event.RequestID),
		zap.String("employee_id", event.EmployeeID),
		zap.String("from_date", from),
		zap.Int("removed", removed),
	)
	return true
}

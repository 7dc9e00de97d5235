package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-resto/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "evt-1",
		RequestID:     "req-1",
		AggregateType: "employee_schedule",
		AggregateID:   "0b0f6a1e-3f7a-4c55-9d0c-8a1b2c3d4e5f",
		EventType:     "assignment_created",
		Topic:         "resto.schedule.assignments.v1",
		Payload:       []byte(`{"event_type":"assignment_created"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	noID := validEvent()
	noID.ID = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(noID), "outbox id is required")

	noTopic := validEvent()
	noTopic.Topic = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(noTopic), "outbox topic is required")

	noPayload := validEvent()
	noPayload.Payload = nil
	assert.EqualError(t, kafka.ValidateOutboxEvent(noPayload), "outbox payload is required")

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestOutboxRepository_CreateWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ev := validEvent()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(ev.ID, ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, ev.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.WithTx(tx).Create(context.Background(), ev))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ev := validEvent()
	ev.Topic = ""

	repo := kafka.NewOutboxRepository(db)
	assert.Error(t, repo.Create(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("evt-1", "req-1", "employee", "emp-1", "employee_fired", "resto.employee.lifecycle.v1", []byte(`{}`), "pending", 0, sqlmockTime())

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10, float64(90)).
		WillReturnRows(rows)

	repo := kafka.NewOutboxRepository(db)
	got, err := repo.ClaimPending(context.Background(), 10, 90*time.Second)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, "employee_fired", got[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantDead bool
	}{
		{"schedules retry", kafka.OutboxStatusFailed, false},
		{"parks exhausted row", kafka.OutboxStatusDead, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("UPDATE outbox_events")).
				WithArgs("evt-1", kafka.OutboxStatusFailed, "broker down", kafka.MaxAttempts, kafka.OutboxStatusDead).
				WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(tt.status))

			dead, err := kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "evt-1", "broker down")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDead, dead)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_CreateFillsIDAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ev := validEvent()
	ev.ID = ""
	ev.Status = ""
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(sqlmock.AnyArg(), ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).Create(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func sqlmockTime() time.Time {
	return time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)
}

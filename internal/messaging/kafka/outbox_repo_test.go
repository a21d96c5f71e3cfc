package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent("rid-1", "attendance", 42, "attendance_recorded", "attendance.records.v1", map[string]any{"attendance_id": 42})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "42", event.AggregateID)
	assert.Equal(t, OutboxStatusPending, event.Status)
	assert.NoError(t, ValidateOutboxEvent(event))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, float64(42), payload["attendance_id"])
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{ID: "id", Topic: "t", Payload: []byte("{}"), Status: OutboxStatusPending}

	tests := []struct {
		name    string
		mutate  func(e *OutboxEvent)
		wantErr string
	}{
		{name: "missing id", mutate: func(e *OutboxEvent) { e.ID = "" }, wantErr: "outbox id is required"},
		{name: "missing topic", mutate: func(e *OutboxEvent) { e.Topic = "" }, wantErr: "outbox topic is required"},
		{name: "missing payload", mutate: func(e *OutboxEvent) { e.Payload = nil }, wantErr: "outbox payload is required"},
		{name: "unknown status", mutate: func(e *OutboxEvent) { e.Status = "done" }, wantErr: "invalid outbox status: done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.EqualError(t, ValidateOutboxEvent(e), tt.wantErr)
		})
	}
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event, err := NewEvent("", "employee", 7, "employee_created", "attendance.employee.lifecycle.v1", map[string]any{"employee_id": 7})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, "", "employee", "7", "employee_created", "attendance.employee.lifecycle.v1", event.Payload, OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewOutboxRepository(db)
	require.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewOutboxRepository(db).Create(context.Background(), OutboxEvent{})
	assert.EqualError(t, err, "outbox id is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count",
	}).
		AddRow("a", "rid", "attendance", "1", "attendance_recorded", "attendance.records.v1", []byte(`{}`), OutboxStatusPending, 0).
		AddRow("b", "", "employee", "2", "employee_created", "attendance.employee.lifecycle.v1", []byte(`{}`), OutboxStatusFailed, 3)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := NewOutboxRepository(db).ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "rid", events[0].RequestID)
	assert.Equal(t, 3, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("a", OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("retry_count = retry_count + 1")).
		WithArgs("b", OutboxStatusFailed, "broker down").
		WillReturnError(errors.New("conn reset"))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), "a"))
	assert.EqualError(t, repo.MarkFailed(context.Background(), "b", "broker down"), "conn reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

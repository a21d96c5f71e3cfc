package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka/consumer"
	"go-attendance/internal/place"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocator struct {
	matches []place.PlaceResponse
	err     error
}

func (f *fakeLocator) PlacesContaining(ctx context.Context, x, y float64) ([]place.PlaceResponse, error) {
	return f.matches, f.err
}

type applied struct {
	id     uint
	status string
}

// fakeApplier returns failures in order, then err for every later call.
type fakeApplier struct {
	mu       sync.Mutex
	calls    []applied
	failures []error
	err      error
	onCall   func(n int)
}

func (f *fakeApplier) ApplyGeofenceStatus(ctx context.Context, id uint, status string) (bool, error) {
	f.mu.Lock()
	f.calls = append(f.calls, applied{id: id, status: status})
	n := len(f.calls)
	err := f.err
	if len(f.failures) > 0 {
		err, f.failures = f.failures[0], f.failures[1:]
	}
	onCall := f.onCall
	f.mu.Unlock()

	if onCall != nil {
		onCall(n)
	}
	return err == nil, err
}

func (f *fakeApplier) appliedIDs() []uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint, len(f.calls))
	for i, c := range f.calls {
		ids[i] = c.id
	}
	return ids
}

var fastRetry = consumer.WithRetryBackoff(time.Millisecond, 5*time.Millisecond)

func eventMessage(t *testing.T, event events.AttendanceRecordedEvent) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Value: body}
}

func TestHandleAttendanceRecorded(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("inside a place", func(t *testing.T) {
		locator := &fakeLocator{matches: []place.PlaceResponse{{ID: 1}}}
		applier := &fakeApplier{}

		err := consumer.HandleAttendanceRecorded(ctx,
			eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 5, CordX: 1, CordY: 1}),
			locator, applier, log)

		require.NoError(t, err)
		assert.Equal(t, []applied{{id: 5, status: attendance.StatusInPlace}}, applier.calls)
	})

	t.Run("outside every place", func(t *testing.T) {
		applier := &fakeApplier{}

		err := consumer.HandleAttendanceRecorded(ctx,
			eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 6}),
			&fakeLocator{}, applier, log)

		require.NoError(t, err)
		assert.Equal(t, []applied{{id: 6, status: attendance.StatusOutOfPlace}}, applier.calls)
	})

	t.Run("existing status is kept", func(t *testing.T) {
		applier := &fakeApplier{}
		status := "manual"

		err := consumer.HandleAttendanceRecorded(ctx,
			eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 7, AttendanceStatus: &status}),
			&fakeLocator{}, applier, log)

		require.NoError(t, err)
		assert.Empty(t, applier.calls)
	})

	t.Run("undecodable message is dropped", func(t *testing.T) {
		applier := &fakeApplier{}

		err := consumer.HandleAttendanceRecorded(ctx, kafkago.Message{Value: []byte("not json")}, &fakeLocator{}, applier, log)

		assert.NoError(t, err)
		assert.Empty(t, applier.calls)
	})

	t.Run("lookup failure is retried", func(t *testing.T) {
		err := consumer.HandleAttendanceRecorded(ctx,
			eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 8}),
			&fakeLocator{err: errors.New("db down")}, &fakeApplier{}, log)

		assert.EqualError(t, err, "db down")
	})
}

type scriptedReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.msgs) == 0 {
		r.mu.Unlock()
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	r.mu.Unlock()
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func TestConsumeAttendanceRecorded_CommitsOnlyHandledMessages(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	good := eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 1})
	good.Offset = 1
	bad := kafkago.Message{Offset: 2, Value: []byte("{")}

	reader := &scriptedReader{msgs: []kafkago.Message{good, bad}, cancel: cancel}
	applier := &fakeApplier{}

	done := make(chan struct{})
	go func() {
		consumer.ConsumeAttendanceRecorded(ctx, reader, &fakeLocator{}, applier, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.Equal(t, []int64{1, 2}, reader.committed)
	assert.Len(t, applier.calls, 1)
}

func TestConsumeAttendanceRecorded_RetriesFailedMessageBeforeMovingOn(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first := eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 1})
	first.Offset = 10
	second := eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 2})
	second.Offset = 11

	reader := &scriptedReader{msgs: []kafkago.Message{first, second}, cancel: cancel}
	applier := &fakeApplier{failures: []error{errors.New("lock timeout")}}

	consumer.ConsumeAttendanceRecorded(ctx, reader, &fakeLocator{}, applier, zap.NewNop(), fastRetry)

	assert.Equal(t, []uint{1, 1, 2}, applier.appliedIDs())
	assert.Equal(t, []int64{10, 11}, reader.committed)
}

func TestConsumeAttendanceRecorded_StopsWithoutCommittingWhileFailing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 1})
	msg.Offset = 10
	next := eventMessage(t, events.AttendanceRecordedEvent{AttendanceID: 2})
	next.Offset = 11
	reader := &scriptedReader{msgs: []kafkago.Message{msg, next}, cancel: cancel}
	applier := &fakeApplier{
		err: errors.New("locked"),
		onCall: func(n int) {
			if n == 3 {
				cancel()
			}
		},
	}

	consumer.ConsumeAttendanceRecorded(ctx, reader, &fakeLocator{}, applier, zap.NewNop(), fastRetry)

	assert.Empty(t, reader.committed)
	assert.Equal(t, []uint{1, 1, 1}, applier.appliedIDs())
	assert.Len(t, reader.msgs, 1)
}

package consumer

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/events"
	"go-attendance/internal/place"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type PlaceLocator interface {
	PlacesContaining(ctx context.Context, x, y float64) ([]place.PlaceResponse, error)
}

type StatusApplier interface {
	ApplyGeofenceStatus(ctx context.Context, id uint, status string) (bool, error)
}

const (
	DefaultRetryBackoff    = time.Second
	DefaultMaxRetryBackoff = 30 * time.Second
)

type consumerOptions struct {
	retryBackoff    time.Duration
	maxRetryBackoff time.Duration
}

type Option func(*consumerOptions)

// WithRetryBackoff sets the first and the largest wait between attempts
// on a message that failed.
func WithRetryBackoff(initial, max time.Duration) Option {
	return func(o *consumerOptions) {
		o.retryBackoff = initial
		o.maxRetryBackoff = max
	}
}

// ConsumeAttendanceRecorded classifies every recorded attendance that has
// no status yet as IN_PLACE or OUT_OF_PLACE. Undecodable messages are
// committed and skipped. A failed classification is retried in place with
// a doubling back-off; offsets commit in order, so the reader never moves
// past a message that was not handled.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	places PlaceLocator,
	attendanceService StatusApplier,
	logger *zap.Logger,
	opts ...Option,
) {
	o := consumerOptions{retryBackoff: DefaultRetryBackoff, maxRetryBackoff: DefaultMaxRetryBackoff}
	for _, opt := range opts {
		opt(&o)
	}
	if o.retryBackoff <= 0 {
		o.retryBackoff = DefaultRetryBackoff
	}
	if o.maxRetryBackoff < o.retryBackoff {
		o.maxRetryBackoff = o.retryBackoff
	}

	log := logger.Named("kafka.consumer.attendance_geofence")
	log.Info("attendance geofence consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance geofence consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, msg, places, attendanceService, log, o) {
			log.Info("attendance geofence consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Error(err))
		}
	}
}

// handleWithRetry returns false only when ctx ends before msg was handled.
func handleWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	places PlaceLocator,
	attendanceService StatusApplier,
	log *zap.Logger,
	o consumerOptions,
) bool {
	backoff := o.retryBackoff
	for attempt := 1; ; attempt++ {
		err := HandleAttendanceRecorded(ctx, msg, places, attendanceService, log)
		if err == nil {
			return true
		}

		log.Error("classify attendance failed",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", backoff),
			zap.Error(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		backoff *= 2
		if backoff > o.maxRetryBackoff {
			backoff = o.maxRetryBackoff
		}
	}
}

// HandleAttendanceRecorded processes one message. It returns an error only
// when the message should be retried.
func HandleAttendanceRecorded(
	ctx context.Context,
	msg kafkago.Message,
	places PlaceLocator,
	attendanceService StatusApplier,
	log *zap.Logger,
) error {
	var event events.AttendanceRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode attendance_recorded event failed", zap.Error(err))
		return nil
	}

	if event.AttendanceStatus != nil && strings.TrimSpace(*event.AttendanceStatus) != "" {
		log.Debug("attendance already has a status, skipping",
			zap.Uint("attendance_id", event.AttendanceID),
			zap.String("status", *event.AttendanceStatus),
		)
		return nil
	}

	matches, err := places.PlacesContaining(ctx, event.CordX, event.CordY)
	if err != nil {
		return err
	}

	status := attendance.StatusOutOfPlace
	if len(matches) > 0 {
		status = attendance.StatusInPlace
	}

	updated, err := attendanceService.ApplyGeofenceStatus(ctx, event.AttendanceID, status)
	if err != nil {
		return err
	}

	log.Info("attendance classified",
		zap.Uint("attendance_id", event.AttendanceID),
		zap.String("status", status),
		zap.Int("matched_places", len(matches)),
		zap.Bool("updated", updated),
	)
	return nil
}

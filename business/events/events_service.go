package events

import (
	"context"
	"fmt"
	"math"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"
	"fleetDispatch/pkg/logger"

	"github.com/google/uuid"
)

// EventRepository contract interface
type EventRepository interface {
	Save(ctx context.Context, event *domain.FeedbackEvent) error
	FindRecent(ctx context.Context, driverID string, limit int) ([]domain.FeedbackEvent, error)
}

type eventsService struct {
	eventRepo EventRepository
	now       func() time.Time
}

func NewEventsService(eventRepo EventRepository) *eventsService {
	return &eventsService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// Record validates and durably appends one feedback event, returning its id.
// The id is only returned once the insert has succeeded; on a StorageError the
// caller must assume nothing was recorded.
func (s *eventsService) Record(ctx context.Context, event domain.FeedbackEvent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	if err := validateEvent(event); err != nil {
		return "", err
	}

	event.ID = uuid.NewString()
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}

	if err := s.eventRepo.Save(ctx, &event); err != nil {
		return "", err
	}

	EventsRecordedTotal.WithLabelValues(event.EventType).Inc()

	return event.ID, nil
}

// RecordBestEffort is the instrumentation variant: losing a sample is
// acceptable, crashing the caller is not. Every failure becomes a logged no-op.
func (s *eventsService) RecordBestEffort(ctx context.Context, event domain.FeedbackEvent) {
	id, err := s.Record(ctx, event)
	if err != nil {
		logger.Warn("dropped best-effort feedback event",
			"event_type", event.EventType,
			"driver_id", event.DriverID,
			"error", err,
		)
		return
	}

	logger.Debug("recorded best-effort feedback event", "event_id", id)
}

func (s *eventsService) ListRecent(ctx context.Context, driverID string, limit int) ([]domain.FeedbackEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	return s.eventRepo.FindRecent(ctx, driverID, limit)
}

func validateEvent(event domain.FeedbackEvent) error {
	if event.EventType == "" {
		return apperror.NewValidation("event_type", "is required")
	}
	if !domain.ValidEventTypes[event.EventType] {
		return apperror.NewValidation("event_type", fmt.Sprintf("unknown value %q", event.EventType))
	}
	if event.DriverID == "" {
		return apperror.NewValidation("driver_id", "is required")
	}

	for field, v := range map[string]*float64{
		"miles":         event.Miles,
		"pay_total_usd": event.PayTotalUSD,
		"max_distance":  event.MaxDistance,
	} {
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return apperror.NewValidation(field, "must be finite")
		}
		if *v < 0 {
			return apperror.NewValidation(field, "must be non-negative")
		}
	}

	return nil
}

package postgres

import (
	"context"
	"fmt"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"

	"gorm.io/gorm"
)

// EventRepository is append-only by construction: it exposes no update or
// delete path for feedback events.
type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Save(ctx context.Context, event *domain.FeedbackEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return apperror.NewStorage("insert feedback event", err)
	}

	return nil
}

// FindAll returns the full event history ordered by occurrence. The learner
// recomputes from scratch each run, so there is no offset bookkeeping here.
func (r *EventRepository) FindAll(ctx context.Context) ([]domain.FeedbackEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.FeedbackEvent
	if err := r.DB.WithContext(ctx).
		Order("occurred_at asc, id asc").
		Find(&events).Error; err != nil {
		return nil, apperror.NewStorage("select feedback events", err)
	}

	return events, nil
}

func (r *EventRepository) FindRecent(ctx context.Context, driverID string, limit int) ([]domain.FeedbackEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).Order("occurred_at desc").Limit(limit)
	if driverID != "" {
		q = q.Where("driver_id = ?", driverID)
	}

	var events []domain.FeedbackEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, apperror.NewStorage("select recent feedback events", err)
	}

	return events, nil
}

//go:build !integration

package events

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"
)

type fakeEventRepo struct {
	saved   []domain.FeedbackEvent
	saveErr error
}

func (f *fakeEventRepo) Save(ctx context.Context, event *domain.FeedbackEvent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *event)
	return nil
}

func (f *fakeEventRepo) FindRecent(ctx context.Context, driverID string, limit int) ([]domain.FeedbackEvent, error) {
	return f.saved, nil
}

func TestRecord_MissingEventType(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventsService(repo)

	_, err := svc.Record(context.Background(), domain.FeedbackEvent{DriverID: "d-1"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apperror.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("no write should happen on validation failure, got %d", len(repo.saved))
	}
}

func TestRecord_UnknownEventType(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventsService(repo)

	_, err := svc.Record(context.Background(), domain.FeedbackEvent{
		EventType: "teleported",
		DriverID:  "d-1",
	})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRecord_MissingDriverID(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventsService(repo)

	_, err := svc.Record(context.Background(), domain.FeedbackEvent{EventType: domain.EventDelivered})
	if !apperror.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRecord_RejectsBadNumbers(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventsService(repo)

	for name, v := range map[string]float64{
		"negative": -1,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	} {
		miles := v
		_, err := svc.Record(context.Background(), domain.FeedbackEvent{
			EventType: domain.EventOfferShown,
			DriverID:  "d-1",
			Miles:     &miles,
		})
		if !apperror.IsValidation(err) {
			t.Errorf("%s miles: expected ValidationError, got %v", name, err)
		}
	}

	if len(repo.saved) != 0 {
		t.Fatalf("no write should happen for invalid numerics, got %d", len(repo.saved))
	}
}

func TestRecord_AssignsIDAndOccurredAt(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventsService(repo)

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	id, err := svc.Record(context.Background(), domain.FeedbackEvent{
		EventType: domain.EventThumbUp,
		DriverID:  "d-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty event id")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one saved event, got %d", len(repo.saved))
	}
	if repo.saved[0].ID != id {
		t.Fatalf("returned id %q does not match persisted %q", id, repo.saved[0].ID)
	}
	if !repo.saved[0].OccurredAt.Equal(fixed) {
		t.Fatalf("occurred_at should default to ingestion time, got %v", repo.saved[0].OccurredAt)
	}
}

func TestRecord_KeepsExplicitOccurredAt(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventsService(repo)

	explicit := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	_, err := svc.Record(context.Background(), domain.FeedbackEvent{
		EventType:  domain.EventDelivered,
		DriverID:   "d-1",
		OccurredAt: explicit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.saved[0].OccurredAt.Equal(explicit) {
		t.Fatalf("explicit occurred_at should be kept, got %v", repo.saved[0].OccurredAt)
	}
}

func TestRecord_StorageErrorPropagates(t *testing.T) {
	repo := &fakeEventRepo{saveErr: apperror.NewStorage("insert feedback event", errors.New("connection refused"))}
	svc := NewEventsService(repo)

	id, err := svc.Record(context.Background(), domain.FeedbackEvent{
		EventType: domain.EventDelivered,
		DriverID:  "d-1",
	})
	if !apperror.IsStorage(err) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if id != "" {
		t.Fatalf("no id may be returned when persistence failed, got %q", id)
	}
}

func TestRecordBestEffort_SwallowsFailures(t *testing.T) {
	repo := &fakeEventRepo{saveErr: apperror.NewStorage("insert feedback event", errors.New("down"))}
	svc := NewEventsService(repo)

	// must not panic or propagate
	svc.RecordBestEffort(context.Background(), domain.FeedbackEvent{
		EventType: domain.EventOfferShown,
		DriverID:  "d-1",
	})

	svc.RecordBestEffort(context.Background(), domain.FeedbackEvent{})
}

//go:build !integration

package learner

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"
)

type blockingEventSource struct {
	events  []domain.FeedbackEvent
	err     error
	started chan struct{} // closed once FindAll is entered, if set
	release chan struct{} // FindAll blocks until closed, if set
}

func (f *blockingEventSource) FindAll(ctx context.Context) ([]domain.FeedbackEvent, error) {
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeWeightStore struct {
	mu       sync.Mutex
	weights  []domain.Weight
	replaced int
	err      error
}

func (f *fakeWeightStore) ReplaceAll(ctx context.Context, weights []domain.Weight) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weights = weights
	f.replaced++
	return nil
}

type fakeStatSink struct {
	mu    sync.Mutex
	stats map[string]domain.DriverStat
}

func (f *fakeStatSink) SaveStats(ctx context.Context, stat domain.DriverStat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stats == nil {
		f.stats = make(map[string]domain.DriverStat)
	}
	f.stats[stat.DriverID] = stat
	return nil
}

func TestRun_CommitsFullVector(t *testing.T) {
	source := &blockingEventSource{events: []domain.FeedbackEvent{
		{EventType: domain.EventOfferShown, DriverID: "d1", LoadID: "l1"},
		{EventType: domain.EventOfferAccepted, DriverID: "d1", LoadID: "l1"},
		{EventType: domain.EventDelivered, DriverID: "d1", LoadID: "l1"},
	}}
	store := &fakeWeightStore{}
	sink := &fakeStatSink{}

	svc := NewLearnerService(source, store, sink, DefaultConfig())

	weights, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weights) != 7 {
		t.Fatalf("expected full vector of 7 weights, got %d", len(weights))
	}
	if store.replaced != 1 {
		t.Fatalf("expected exactly one ReplaceAll, got %d", store.replaced)
	}
	if _, ok := sink.stats["d1"]; !ok {
		t.Fatal("expected driver stats to be published after commit")
	}
}

func TestRun_RejectsConcurrentRun(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	source := &blockingEventSource{started: started, release: release}
	store := &fakeWeightStore{weights: []domain.Weight{{Name: "acceptance", Value: 1}}}

	svc := NewLearnerService(source, store, nil, DefaultConfig())

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background())
		done <- err
	}()

	<-started

	_, err := svc.Run(context.Background())
	if !apperror.IsAlreadyRunning(err) {
		t.Fatalf("expected AlreadyRunningError, got %v", err)
	}

	// rejection must not have touched the store
	store.mu.Lock()
	if store.replaced != 0 {
		t.Fatal("rejected run must leave the weight vector unchanged")
	}
	store.mu.Unlock()

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first run should finish cleanly: %v", err)
	}

	// guard released: a new run is accepted again
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run after release failed: %v", err)
	}
}

func TestRun_EventReadFailureLeavesVector(t *testing.T) {
	source := &blockingEventSource{err: apperror.NewStorage("select feedback events", errors.New("timeout"))}
	store := &fakeWeightStore{}

	svc := NewLearnerService(source, store, nil, DefaultConfig())

	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if store.replaced != 0 {
		t.Fatal("failed run must not replace weights")
	}
}

func TestRun_CommitFailureReported(t *testing.T) {
	source := &blockingEventSource{}
	store := &fakeWeightStore{err: apperror.NewStorage("replace scoring weights", errors.New("deadlock"))}

	svc := NewLearnerService(source, store, nil, DefaultConfig())

	if _, err := svc.Run(context.Background()); !apperror.IsStorage(err) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestRun_CancellationSkipsCommit(t *testing.T) {
	source := &blockingEventSource{}
	store := &fakeWeightStore{}

	svc := NewLearnerService(source, store, nil, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Run(ctx); err == nil {
		t.Fatal("expected cancellation error")
	}
	if store.replaced != 0 {
		t.Fatal("canceled run must not replace weights")
	}
}

package learner

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"
	"fleetDispatch/pkg/logger"
)

// ---- Repository interfaces ----

type EventSource interface {
	FindAll(ctx context.Context) ([]domain.FeedbackEvent, error)
}

type WeightStore interface {
	ReplaceAll(ctx context.Context, weights []domain.Weight) error
}

// StatSink receives the per-driver aggregates after a successful commit.
// Failures here are logged, never fatal: the cache is for inspection and
// feature lookups, not correctness.
type StatSink interface {
	SaveStats(ctx context.Context, stat domain.DriverStat) error
}

// ---- Usecase / Service ----

type learnerService struct {
	eventSource EventSource
	weightStore WeightStore
	statSink    StatSink
	cfg         Config

	running atomic.Bool
}

func NewLearnerService(
	eventSource EventSource,
	weightStore WeightStore,
	statSink StatSink,
	cfg Config,
) *learnerService {
	return &learnerService{
		eventSource: eventSource,
		weightStore: weightStore,
		statSink:    statSink,
		cfg:         cfg,
	}
}

// Run recomputes the weight vector from the full event history and commits it
// atomically. At most one run is in flight; an overlapping request fails with
// AlreadyRunningError instead of queueing, so callers can tell "already
// running" apart from "succeeded". Any failure or cancellation before the
// commit leaves the previous vector authoritative.
func (s *learnerService) Run(ctx context.Context) ([]domain.Weight, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, &apperror.AlreadyRunningError{}
	}
	defer s.running.Store(false)

	started := time.Now()

	events, err := s.eventSource.FindAll(ctx)
	if err != nil {
		RunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load event history: %w", err)
	}

	stats := AggregateDriverStats(events)
	rates := AggregateFleet(events, stats)
	weights := DeriveWeights(rates, s.cfg)

	// cancellation leaves the previous vector untouched
	if err := ctx.Err(); err != nil {
		RunsTotal.WithLabelValues("canceled").Inc()
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := s.weightStore.ReplaceAll(ctx, weights); err != nil {
		RunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("commit weight vector: %w", err)
	}

	s.publishStats(ctx, stats)

	RunsTotal.WithLabelValues("ok").Inc()
	RunDuration.Observe(time.Since(started).Seconds())

	logger.Info("learner run committed",
		"events", len(events),
		"drivers", len(stats),
		"weights", len(weights),
		"took", time.Since(started).String(),
	)

	return weights, nil
}

func (s *learnerService) publishStats(ctx context.Context, stats map[string]domain.DriverStat) {
	if s.statSink == nil {
		return
	}

	for _, stat := range stats {
		if err := s.statSink.SaveStats(ctx, stat); err != nil {
			logger.Warn("failed to cache driver stats",
				"driver_id", stat.DriverID,
				"error", err,
			)
		}
	}
}

package memory

import (
	"context"
	"sync"

	"fleetDispatch/domain"
)

// WeightStore is an in-memory weight vector with the same snapshot contract as
// the postgres repository: FindAll returns a copy taken under the lock, and
// ReplaceAll swaps the whole slice at once. Used by tests and local runs
// without a database.
type WeightStore struct {
	mu      sync.RWMutex
	weights []domain.Weight
}

func NewWeightStore() *WeightStore {
	return &WeightStore{}
}

func (s *WeightStore) FindAll(ctx context.Context) ([]domain.Weight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Weight, len(s.weights))
	copy(out, s.weights)

	return out, nil
}

func (s *WeightStore) ReplaceAll(ctx context.Context, weights []domain.Weight) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next := make([]domain.Weight, len(weights))
	copy(next, weights)

	s.mu.Lock()
	s.weights = next
	s.mu.Unlock()

	return nil
}

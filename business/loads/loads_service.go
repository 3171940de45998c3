package loads

import (
	"context"
	"errors"

	"fleetDispatch/domain"

	"github.com/google/uuid"
)

// LoadRepository contract interface
type LoadRepository interface {
	Create(ctx context.Context, load *domain.Load) error
	FindByID(ctx context.Context, id string) (domain.Load, error)
	FindAll(ctx context.Context) ([]domain.Load, error)
	Update(ctx context.Context, load *domain.Load) error
	Delete(ctx context.Context, id string) error
}

type loadsService struct {
	loadRepo LoadRepository
}

func NewLoadsService(loadRepo LoadRepository) *loadsService {
	return &loadsService{loadRepo: loadRepo}
}

func (s *loadsService) CreateLoad(ctx context.Context, load *domain.Load) (*domain.Load, error) {
	if load.LaneOrigin == "" || load.LaneDest == "" {
		return nil, errors.New("lane_origin and lane_dest are required")
	}
	if load.Miles < 0 || load.PayTotalUSD < 0 {
		return nil, errors.New("miles and pay_total_usd must be non-negative")
	}

	if load.ID == "" {
		load.ID = uuid.NewString()
	}
	if load.Status == "" {
		load.Status = "open"
	}

	if err := s.loadRepo.Create(ctx, load); err != nil {
		return nil, err
	}

	return load, nil
}

func (s *loadsService) GetLoadByID(ctx context.Context, id string) (domain.Load, error) {
	return s.loadRepo.FindByID(ctx, id)
}

func (s *loadsService) GetAllLoads(ctx context.Context) ([]domain.Load, error) {
	return s.loadRepo.FindAll(ctx)
}

func (s *loadsService) UpdateLoad(ctx context.Context, load *domain.Load) (*domain.Load, error) {
	if load.ID == "" {
		return nil, errors.New("load id is required")
	}

	if err := s.loadRepo.Update(ctx, load); err != nil {
		return nil, err
	}

	updated, err := s.loadRepo.FindByID(ctx, load.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *loadsService) DeleteLoad(ctx context.Context, id string) error {
	return s.loadRepo.Delete(ctx, id)
}

package drivers

import (
	"context"
	"errors"

	"fleetDispatch/domain"

	"github.com/google/uuid"
)

// DriverRepository contract interface
type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	FindByID(ctx context.Context, id string) (domain.Driver, error)
	FindAll(ctx context.Context) ([]domain.Driver, error)
	Update(ctx context.Context, driver *domain.Driver) error
	Delete(ctx context.Context, id string) error
}

type driversService struct {
	driverRepo DriverRepository
}

func NewDriversService(driverRepo DriverRepository) *driversService {
	return &driversService{driverRepo: driverRepo}
}

func (s *driversService) CreateDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	if driver.FullName == "" {
		return nil, errors.New("full_name is required")
	}

	if driver.ID == "" {
		driver.ID = uuid.NewString()
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	return driver, nil
}

func (s *driversService) GetDriverByID(ctx context.Context, id string) (domain.Driver, error) {
	return s.driverRepo.FindByID(ctx, id)
}

func (s *driversService) GetAllDrivers(ctx context.Context) ([]domain.Driver, error) {
	return s.driverRepo.FindAll(ctx)
}

func (s *driversService) UpdateDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	if driver.ID == "" {
		return nil, errors.New("driver id is required")
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	updated, err := s.driverRepo.FindByID(ctx, driver.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *driversService) DeleteDriver(ctx context.Context, id string) error {
	return s.driverRepo.Delete(ctx, id)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"

	"gorm.io/gorm"
)

type DriverRepository struct {
	DB *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{DB: db}
}

func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	if err := r.DB.WithContext(ctx).Create(driver).Error; err != nil {
		return apperror.NewStorage("insert driver", err)
	}

	return nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id string) (domain.Driver, error) {
	var driver domain.Driver

	err := r.DB.WithContext(ctx).First(&driver, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Driver{}, errors.New("driver not found")
		}
		return domain.Driver{}, apperror.NewStorage("select driver", err)
	}

	return driver, nil
}

func (r *DriverRepository) FindAll(ctx context.Context) ([]domain.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var drivers []domain.Driver
	if err := r.DB.WithContext(ctx).Order("full_name asc").Find(&drivers).Error; err != nil {
		return nil, apperror.NewStorage("select drivers", err)
	}

	return drivers, nil
}

func (r *DriverRepository) Update(ctx context.Context, driver *domain.Driver) error {
	var existing domain.Driver
	if err := r.DB.WithContext(ctx).First(&existing, "id = ?", driver.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("driver not found")
		}
		return apperror.NewStorage("select driver", err)
	}

	driver.UpdatedAt = time.Now()

	if err := r.DB.WithContext(ctx).Model(&domain.Driver{}).Where("id = ?", driver.ID).
		Select("full_name", "phone", "equipment", "home_region", "max_distance", "active", "status", "updated_at").
		Updates(driver).Error; err != nil {
		return apperror.NewStorage("update driver", err)
	}

	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Delete(&domain.Driver{}, "id = ?", id)
	if result.Error != nil {
		return apperror.NewStorage("delete driver", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("driver not found or already deleted")
	}

	return nil
}

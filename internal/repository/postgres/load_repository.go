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

type LoadRepository struct {
	DB *gorm.DB
}

func NewLoadRepository(db *gorm.DB) *LoadRepository {
	return &LoadRepository{DB: db}
}

func (r *LoadRepository) Create(ctx context.Context, load *domain.Load) error {
	if err := r.DB.WithContext(ctx).Create(load).Error; err != nil {
		return apperror.NewStorage("insert load", err)
	}

	return nil
}

func (r *LoadRepository) FindByID(ctx context.Context, id string) (domain.Load, error) {
	var load domain.Load

	err := r.DB.WithContext(ctx).First(&load, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Load{}, errors.New("load not found")
		}
		return domain.Load{}, apperror.NewStorage("select load", err)
	}

	return load, nil
}

func (r *LoadRepository) FindAll(ctx context.Context) ([]domain.Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var loads []domain.Load
	if err := r.DB.WithContext(ctx).Order("created_at desc").Find(&loads).Error; err != nil {
		return nil, apperror.NewStorage("select loads", err)
	}

	return loads, nil
}

func (r *LoadRepository) Update(ctx context.Context, load *domain.Load) error {
	var existing domain.Load
	if err := r.DB.WithContext(ctx).First(&existing, "id = ?", load.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("load not found")
		}
		return apperror.NewStorage("select load", err)
	}

	load.UpdatedAt = time.Now()

	if err := r.DB.WithContext(ctx).Model(&domain.Load{}).Where("id = ?", load.ID).
		Select("lane_origin", "lane_dest", "region", "equipment", "miles", "pay_total_usd", "status", "updated_at").
		Updates(load).Error; err != nil {
		return apperror.NewStorage("update load", err)
	}

	return nil
}

func (r *LoadRepository) Delete(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).Delete(&domain.Load{}, "id = ?", id)
	if result.Error != nil {
		return apperror.NewStorage("delete load", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.New("load not found or already deleted")
	}

	return nil
}

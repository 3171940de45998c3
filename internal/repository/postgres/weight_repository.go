package postgres

import (
	"context"
	"fmt"

	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"

	"gorm.io/gorm"
)

type WeightRepository struct {
	DB *gorm.DB
}

func NewWeightRepository(db *gorm.DB) *WeightRepository {
	return &WeightRepository{DB: db}
}

// FindAll reads the whole vector in a single statement, so the snapshot is
// consistent at one point in time. An empty table is an empty vector, not an
// error.
func (r *WeightRepository) FindAll(ctx context.Context) ([]domain.Weight, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var weights []domain.Weight
	if err := r.DB.WithContext(ctx).Order("name asc").Find(&weights).Error; err != nil {
		return nil, apperror.NewStorage("select scoring weights", err)
	}

	return weights, nil
}

// ReplaceAll swaps the full vector in one transaction: readers observe either
// the entirely-old or entirely-new set. This is the only mutation path;
// per-weight updates are deliberately not exposed.
func (r *WeightRepository) ReplaceAll(ctx context.Context, weights []domain.Weight) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Weight{}).Error; err != nil {
			return err
		}
		if len(weights) == 0 {
			return nil
		}
		return tx.Create(&weights).Error
	})
	if err != nil {
		return apperror.NewStorage("replace scoring weights", err)
	}

	return nil
}

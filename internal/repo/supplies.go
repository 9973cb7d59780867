package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gashorafarm/farmconnect/internal/models"
)

func (r *GormRepo) ListSupplies(ctx context.Context, category string) ([]models.Supply, error) {
	var items []models.Supply
	if err := withCategory(r.DB.WithContext(ctx), category).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetSupply(ctx context.Context, id uuid.UUID) (*models.Supply, error) {
	var s models.Supply
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormRepo) CreateSupply(ctx context.Context, s *models.Supply) (*models.Supply, error) {
	if err := r.DB.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormRepo) UpdateSupplyStock(ctx context.Context, id uuid.UUID, stock int) (*models.Supply, error) {
	res := r.DB.WithContext(ctx).Model(&models.Supply{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetSupply(ctx, id)
}

func (r *GormRepo) DeleteSupply(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Supply{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

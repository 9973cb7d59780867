package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gashorafarm/farmconnect/internal/models"
)

func (r *GormRepo) ListFarmers(ctx context.Context, verifiedOnly bool) ([]models.Farmer, error) {
	q := r.DB.WithContext(ctx).Model(&models.Farmer{})
	if verifiedOnly {
		q = q.Where("verified = ?", true)
	}

	farmers := make([]models.Farmer, 0)
	if err := q.Order("rating DESC, name ASC").Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}

func (r *GormRepo) PendingFarmers(ctx context.Context) ([]models.Farmer, error) {
	farmers := make([]models.Farmer, 0)
	if err := r.DB.WithContext(ctx).
		Where("verified = ?", false).
		Order("joined_date ASC, name ASC").
		Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}

func (r *GormRepo) GetFarmer(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	var f models.Farmer
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *GormRepo) CreateFarmer(ctx context.Context, f *models.Farmer) (*models.Farmer, error) {
	if err := r.DB.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// VerifyFarmer is idempotent; verifying an already verified farmer succeeds.
func (r *GormRepo) VerifyFarmer(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	res := r.DB.WithContext(ctx).Model(&models.Farmer{}).Where("id = ?", id).Update("verified", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetFarmer(ctx, id)
}

package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gashorafarm/farmconnect/internal/models"
)

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Farmer").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Farmer").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAccount inserts the user, and the farmer profile when given, in one transaction.
func (r *GormRepo) CreateAccount(ctx context.Context, u *models.User, farmer *models.Farmer) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Where("email = ?", u.Email).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateEmail
		}

		if farmer != nil {
			if err := tx.Create(farmer).Error; err != nil {
				return err
			}
			u.FarmerID = &farmer.ID
			u.Farmer = farmer
		}

		if err := tx.Omit("Farmer").Create(u).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}
		return nil
	})
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole sets the account's role. Moving to farmer needs an already linked
// farmer profile; any other role drops the link.
func (r *GormRepo) UpdateUserRole(ctx context.Context, id uuid.UUID, role string, farmer bool) (*models.User, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Where("id = ?", id).First(&u).Error; err != nil {
			return err
		}

		updates := map[string]any{"role": role}
		if farmer {
			if u.FarmerID == nil {
				return ErrNoFarmerProfile
			}
		} else if u.FarmerID != nil {
			updates["farmer_id"] = nil
		}
		return tx.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetUserByID(ctx, id)
}

func (r *GormRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

// DeleteUser removes the account together with its farmer profile and that farmer's
// products. Orders keep their own item snapshots and are not touched.
func (r *GormRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Where("id = ?", id).First(&u).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, "id = ?", id).Error; err != nil {
			return err
		}
		if u.FarmerID == nil {
			return nil
		}
		if err := tx.Where("farmer_id = ?", *u.FarmerID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Farmer{}, "id = ?", *u.FarmerID).Error
	})
}

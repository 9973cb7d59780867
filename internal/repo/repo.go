package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gashorafarm/farmconnect/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrStaleVersion   = errors.New("stale order version")

	ErrNoFarmerProfile = errors.New("account has no farmer profile")
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(models.All()...)
}

func (r *GormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func withCategory(q *gorm.DB, category string) *gorm.DB {
	if category == "" || category == "All" {
		return q
	}
	return q.Where("category = ?", category)
}

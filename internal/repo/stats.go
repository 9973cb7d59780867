package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gashorafarm/farmconnect/internal/models"
)

const recentLimit = 5

type DashboardStats struct {
	TotalUsers      int64           `json:"total_users"`
	RegularUsers    int64           `json:"regular_users"`
	TotalFarmers    int64           `json:"total_farmers"`
	VerifiedFarmers int64           `json:"verified_farmers"`
	TotalProducts   int64           `json:"total_products"`
	TotalSupplies   int64           `json:"total_supplies"`
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	Revenue         decimal.Decimal `json:"revenue"`
	RecentFarmers   []models.Farmer `json:"recent_farmers"`
	RecentOrders    []models.Order  `json:"recent_orders"`
}

// DashboardStats sums Total over orders whose status is in revenueStatuses.
func (r *GormRepo) DashboardStats(ctx context.Context, pendingStatus string, revenueStatuses []string) (*DashboardStats, error) {
	db := r.DB.WithContext(ctx)
	var s DashboardStats

	counts := []struct {
		dest  *int64
		model any
		where string
		args  []any
	}{
		{&s.TotalUsers, &models.User{}, "", nil},
		{&s.RegularUsers, &models.User{}, "role = ?", []any{"user"}},
		{&s.TotalFarmers, &models.Farmer{}, "", nil},
		{&s.VerifiedFarmers, &models.Farmer{}, "verified = ?", []any{true}},
		{&s.TotalProducts, &models.Product{}, "", nil},
		{&s.TotalSupplies, &models.Supply{}, "", nil},
		{&s.TotalOrders, &models.Order{}, "", nil},
		{&s.PendingOrders, &models.Order{}, "status = ?", []any{pendingStatus}},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var delivered []models.Order
	if err := db.Select("total").Where("status IN ?", revenueStatuses).Find(&delivered).Error; err != nil {
		return nil, err
	}
	s.Revenue = decimal.Zero
	for _, o := range delivered {
		s.Revenue = s.Revenue.Add(o.Total)
	}

	if err := db.Order("joined_date DESC, created_at DESC").Limit(recentLimit).Find(&s.RecentFarmers).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("Items", itemsInOrder).Order("date DESC").Limit(recentLimit).Find(&s.RecentOrders).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

package service

import (
	"context"

	"github.com/gashorafarm/farmconnect/internal/lifecycle"
	"github.com/gashorafarm/farmconnect/internal/repo"
)

type AdminService struct {
	Repo *repo.GormRepo
}

// DashboardStats counts revenue over orders that reached a revenue-eligible status.
func (s *AdminService) DashboardStats(ctx context.Context) (*repo.DashboardStats, error) {
	var revenue []string
	for _, st := range lifecycle.All {
		if lifecycle.RevenueEligible(st) {
			revenue = append(revenue, string(st))
		}
	}
	stats, err := s.Repo.DashboardStats(ctx, string(lifecycle.Pending), revenue)
	if err != nil {
		return nil, storeErr("dashboard stats", err)
	}
	return stats, nil
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/pkg/events"
)

type FarmerService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *FarmerService) ListFarmers(ctx context.Context, verifiedOnly bool) ([]models.Farmer, error) {
	farmers, err := s.Repo.ListFarmers(ctx, verifiedOnly)
	if err != nil {
		return nil, storeErr("list farmers", err)
	}
	return farmers, nil
}

func (s *FarmerService) GetFarmer(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	f, err := s.Repo.GetFarmer(ctx, id)
	if err != nil {
		return nil, storeErr("get farmer", err)
	}
	return f, nil
}

func (s *FarmerService) PendingFarmers(ctx context.Context) ([]models.Farmer, error) {
	farmers, err := s.Repo.PendingFarmers(ctx)
	if err != nil {
		return nil, storeErr("pending farmers", err)
	}
	return farmers, nil
}

// VerifyFarmer is reachable only through admin routes; farmers never verify themselves.
func (s *FarmerService) VerifyFarmer(ctx context.Context, actor Actor, id uuid.UUID) (*models.Farmer, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	f, err := s.Repo.VerifyFarmer(ctx, id)
	if err != nil {
		return nil, storeErr("verify farmer", err)
	}
	publish(ctx, s.Events, events.TopicFarmers, f.ID.String(), "farmer_verified", map[string]any{
		"farmer_id": f.ID,
		"name":      f.Name,
	})
	return f, nil
}

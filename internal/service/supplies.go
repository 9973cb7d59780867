package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/pkg/events"
)

func (s *CatalogService) ListSupplies(ctx context.Context, category string) ([]models.Supply, error) {
	if err := checkCategory(category, models.SupplyCategories); err != nil {
		return nil, err
	}
	items, err := s.Repo.ListSupplies(ctx, category)
	if err != nil {
		return nil, storeErr("list supplies", err)
	}
	return items, nil
}

func (s *CatalogService) GetSupply(ctx context.Context, id uuid.UUID) (*models.Supply, error) {
	item, err := s.Repo.GetSupply(ctx, id)
	if err != nil {
		return nil, storeErr("get supply", err)
	}
	return item, nil
}

func (s *CatalogService) AddSupply(ctx context.Context, req transport.CreateSupplyRequest) (*models.Supply, error) {
	if err := checkItemFields(req.Name, req.Description, req.Unit, req.Price, req.Stock); err != nil {
		return nil, err
	}
	if req.Category == "" || req.Category == "All" {
		return nil, invalid("category is required")
	}
	if err := checkCategory(req.Category, models.SupplyCategories); err != nil {
		return nil, err
	}

	item, err := s.Repo.CreateSupply(ctx, &models.Supply{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Price:       req.Price.Round(2),
		Unit:        strings.TrimSpace(req.Unit),
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, storeErr("create supply", err)
	}

	publish(ctx, s.Events, events.TopicCatalog, item.ID.String(), "supply_created", map[string]any{
		"supply_id": item.ID,
		"name":      item.Name,
	})
	return item, nil
}

func (s *CatalogService) UpdateSupplyStock(ctx context.Context, id uuid.UUID, stock int) (*models.Supply, error) {
	if stock < 0 {
		return nil, invalid("stock must not be negative")
	}
	item, err := s.Repo.UpdateSupplyStock(ctx, id, stock)
	if err != nil {
		return nil, storeErr("update supply stock", err)
	}
	return item, nil
}

func (s *CatalogService) DeleteSupply(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteSupply(ctx, id); err != nil {
		return storeErr("delete supply", err)
	}
	publish(ctx, s.Events, events.TopicCatalog, id.String(), "supply_deleted", map[string]any{
		"supply_id": id,
	})
	return nil
}

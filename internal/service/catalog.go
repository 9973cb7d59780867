package service

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/pkg/events"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

type Searcher interface {
	IndexProduct(ctx context.Context, p models.Product) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type CatalogService struct {
	Repo   *repo.GormRepo
	Search Searcher
	Events events.Publisher
}

func checkCategory(category string, allowed []string) error {
	if category == "" || category == "All" || slices.Contains(allowed, category) {
		return nil
	}
	return invalid("unknown category %q", category)
}

func checkItemFields(name, description, unit string, price decimal.Decimal, stock int) error {
	switch {
	case strings.TrimSpace(name) == "":
		return invalid("name is required")
	case strings.TrimSpace(description) == "":
		return invalid("description is required")
	case strings.TrimSpace(unit) == "":
		return invalid("unit is required")
	case !price.IsPositive():
		return invalid("price must be greater than zero")
	case stock < 0:
		return invalid("stock must not be negative")
	}
	return nil
}

func (s *CatalogService) ListProducts(ctx context.Context, category string, offset, limit int) (int64, []models.Product, error) {
	if err := checkCategory(category, models.ProduceCategories); err != nil {
		return 0, nil, err
	}
	total, items, err := s.Repo.ListProducts(ctx, category, offset, limit)
	if err != nil {
		return 0, nil, storeErr("list products", err)
	}
	return total, items, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, storeErr("get product", err)
	}
	return p, nil
}

func (s *CatalogService) ProductsByFarmer(ctx context.Context, farmerID uuid.UUID) ([]models.Product, error) {
	items, err := s.Repo.ProductsByFarmer(ctx, farmerID)
	if err != nil {
		return nil, storeErr("products by farmer", err)
	}
	return items, nil
}

// AddProduct lists produce under the actor's own farm, or under req.FarmerID for admins.
func (s *CatalogService) AddProduct(ctx context.Context, actor Actor, req transport.CreateProductRequest) (*models.Product, error) {
	var farmerID uuid.UUID
	switch actor.Role {
	case access.RoleFarmer:
		if actor.FarmerID == nil {
			return nil, invalid("account has no farmer profile")
		}
		farmerID = *actor.FarmerID
	case access.RoleAdmin:
		if req.FarmerID == nil {
			return nil, invalid("farmer_id is required")
		}
		farmerID = *req.FarmerID
	default:
		return nil, ErrForbidden
	}

	if err := checkItemFields(req.Name, req.Description, req.Unit, req.Price, req.Stock); err != nil {
		return nil, err
	}
	if req.Category == "" || req.Category == "All" {
		return nil, invalid("category is required")
	}
	if err := checkCategory(req.Category, models.ProduceCategories); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetFarmer(ctx, farmerID); err != nil {
		return nil, storeErr("get farmer", err)
	}

	prod, err := s.Repo.CreateProduct(ctx, &models.Product{
		FarmerID:    farmerID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Price:       req.Price.Round(2),
		Unit:        strings.TrimSpace(req.Unit),
		Stock:       req.Stock,
		Organic:     req.Organic,
		HarvestDate: req.HarvestDate,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, storeErr("create product", err)
	}

	s.index(ctx, *prod)
	publish(ctx, s.Events, events.TopicCatalog, prod.ID.String(), "product_created", map[string]any{
		"product_id": prod.ID,
		"farmer_id":  prod.FarmerID,
		"name":       prod.Name,
	})
	return prod, nil
}

func (s *CatalogService) UpdateStock(ctx context.Context, actor Actor, id uuid.UUID, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, invalid("stock must not be negative")
	}
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, storeErr("get product", err)
	}
	if !actor.IsAdmin() && !actor.ownsFarm(prod.FarmerID) {
		return nil, ErrForbidden
	}

	prod, err = s.Repo.UpdateProductStock(ctx, id, stock)
	if err != nil {
		return nil, storeErr("update stock", err)
	}

	s.index(ctx, *prod)
	publish(ctx, s.Events, events.TopicCatalog, prod.ID.String(), "product_stock_updated", map[string]any{
		"product_id": prod.ID,
		"stock":      prod.Stock,
	})
	return prod, nil
}

// SearchProducts prefers the search index and falls back to the database.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, invalid("query is required")
	}

	if s.Search != nil {
		total, items, err := s.Search.Search(ctx, q, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("search_index_failed", "reason", "falling back to database", "error", err)
	}

	total, items, err := s.Repo.SearchProducts(ctx, q, offset, limit)
	if err != nil {
		return 0, nil, storeErr("search products", err)
	}
	return total, items, nil
}

func (s *CatalogService) index(ctx context.Context, p models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_failed", "product_id", p.ID, "error", err)
	}
}

// Package seed loads the default admin account and the demo catalog.
package seed

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/service"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

const (
	DefaultAdminEmail    = "admin@farmconnect.com"
	DefaultAdminPassword = "admin123"
)

type Seeder struct {
	Repo   *repo.GormRepo
	Auth   *service.AuthService
	Search service.Searcher
}

type Result struct {
	AdminCreated bool `json:"admin_created"`
	Farmers      int  `json:"farmers"`
	Products     int  `json:"products"`
	Supplies     int  `json:"supplies"`
}

// Run is idempotent: each group is only inserted when its table is empty.
func (s *Seeder) Run(ctx context.Context, adminEmail, adminPassword string) (*Result, error) {
	l := logging.FromContext(ctx).With("svc", "seed")
	res := &Result{}

	created, err := s.Auth.EnsureAdmin(ctx, adminEmail, adminPassword, "Administrator")
	if err != nil {
		return nil, fmt.Errorf("ensure admin: %w", err)
	}
	res.AdminCreated = created

	existing, err := s.Repo.ListFarmers(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list farmers: %w", err)
	}
	if len(existing) == 0 {
		if err := s.catalog(ctx, res); err != nil {
			return nil, err
		}
	} else {
		l.Info("seed_skipped", "group", "catalog", "reason", "farmers already present")
	}

	have, err := s.Repo.ListSupplies(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	if len(have) == 0 {
		for _, sp := range supplies {
			if _, err := s.Repo.CreateSupply(ctx, &models.Supply{
				Name:         sp.Name,
				Description:  sp.Description,
				Category:     sp.Category,
				Price:        decimal.RequireFromString(sp.Price),
				Unit:         sp.Unit,
				Stock:        sp.Stock,
				Rating:       sp.Rating,
				ReviewsCount: sp.Reviews,
			}); err != nil {
				return nil, fmt.Errorf("create supply %q: %w", sp.Name, err)
			}
			res.Supplies++
		}
	}

	l.Info("seed_done", "admin_created", res.AdminCreated, "farmers", res.Farmers, "products", res.Products, "supplies", res.Supplies)
	return res, nil
}

func (s *Seeder) catalog(ctx context.Context, res *Result) error {
	l := logging.FromContext(ctx)

	ids := make([]models.Farmer, 0, len(farmers))
	for _, f := range farmers {
		created, err := s.Repo.CreateFarmer(ctx, &models.Farmer{
			Name:       f.Name,
			Location:   f.Location,
			Rating:     f.Rating,
			Verified:   f.Verified,
			ImageURL:   f.ImageURL,
			JoinedDate: f.JoinedDate,
		})
		if err != nil {
			return fmt.Errorf("create farmer %q: %w", f.Name, err)
		}
		ids = append(ids, *created)
		res.Farmers++
	}

	for _, p := range products {
		prod, err := s.Repo.CreateProduct(ctx, &models.Product{
			FarmerID:     ids[p.Farmer].ID,
			Name:         p.Name,
			Description:  p.Description,
			Category:     p.Category,
			Price:        decimal.RequireFromString(p.Price),
			Unit:         p.Unit,
			Stock:        p.Stock,
			Organic:      p.Organic,
			HarvestDate:  p.HarvestDate,
			ImageURL:     "https://picsum.photos/seed/" + url.PathEscape(p.Name) + "/400/400",
			Rating:       p.Rating,
			ReviewsCount: p.Reviews,
		})
		if err != nil {
			return fmt.Errorf("create product %q: %w", p.Name, err)
		}
		res.Products++

		if s.Search != nil {
			if err := s.Search.IndexProduct(ctx, *prod); err != nil {
				l.Warn("search_index_failed", "product_id", prod.ID, "error", err)
			}
		}
	}
	return nil
}

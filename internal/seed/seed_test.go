package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/service"
	pkgdb "github.com/gashorafarm/farmconnect/pkg/db"
)

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := pkgdb.Open(ctx, pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { pkgdb.Close(db) })

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.Migrate(ctx))
	s := &Seeder{
		Repo: r,
		Auth: &service.AuthService{Repo: r, Sessions: cart.NewMemoryStorage(), Secret: []byte("x")},
	}

	res, err := s.Run(ctx, DefaultAdminEmail, DefaultAdminPassword)
	require.NoError(t, err)
	assert.True(t, res.AdminCreated)
	assert.Equal(t, len(farmers), res.Farmers)
	assert.Equal(t, len(products), res.Products)
	assert.Equal(t, len(supplies), res.Supplies)

	res, err = s.Run(ctx, DefaultAdminEmail, DefaultAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, Result{}, *res)

	verified, err := r.ListFarmers(ctx, true)
	require.NoError(t, err)
	assert.Len(t, verified, 8)

	p, err := s.Auth.Authenticate(ctx, DefaultAdminEmail, DefaultAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, "admin", string(p.Role))
}

func TestSeedDataIsValid(t *testing.T) {
	for _, p := range products {
		assert.Less(t, p.Farmer, len(farmers), p.Name)
		assert.Contains(t, models.ProduceCategories, p.Category, p.Name)
	}
	for _, s := range supplies {
		assert.Contains(t, models.SupplyCategories, s.Category, s.Name)
	}
}

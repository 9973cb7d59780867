package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/repo"
	pkgdb "github.com/gashorafarm/farmconnect/pkg/db"
)

type recordedEvent struct {
	Topic, Key string
	Event      map[string]any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, recordedEvent{Topic: topic, Key: key, Event: event.(map[string]any)})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Event["type"].(string))
	}
	return out
}

// failingStorage fails every call, standing in for an unreachable snapshot store.
type failingStorage struct{}

func (failingStorage) Load(context.Context, string) ([]byte, error) { return nil, errors.New("connection refused") }
func (failingStorage) Save(context.Context, string, []byte) error  { return errors.New("connection refused") }
func (failingStorage) Delete(context.Context, string) error        { return errors.New("connection refused") }

type testEnv struct {
	Repo    *repo.GormRepo
	Events  *recordingPublisher
	Store   *cart.MemoryStorage
	Catalog *CatalogService
	Farmers *FarmerService
	Auth    *AuthService
	Users   *UserService
	Carts   *CartService
	Orders  *OrderService
	Admin   *AdminService
}

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { pkgdb.Close(db) })

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.Migrate(context.Background()))

	pub := &recordingPublisher{}
	store := cart.NewMemoryStorage()
	mgr := cart.NewManager(store)
	now := func() time.Time { return fixedNow }

	return &testEnv{
		Repo:    r,
		Events:  pub,
		Store:   store,
		Catalog: &CatalogService{Repo: r, Events: pub},
		Farmers: &FarmerService{Repo: r, Events: pub},
		Auth:    &AuthService{Repo: r, Sessions: store, Secret: []byte("test-secret"), Now: now},
		Users:   &UserService{Repo: r},
		Carts:   &CartService{Manager: mgr, Repo: r},
		Orders:  &OrderService{Repo: r, Carts: mgr, Events: pub, Now: now},
		Admin:   &AdminService{Repo: r},
	}
}

func (e *testEnv) farmer(t *testing.T, name string) (*models.Farmer, Actor) {
	t.Helper()
	f, err := e.Repo.CreateFarmer(context.Background(), &models.Farmer{
		Name:       name,
		Location:   "Gashora",
		Verified:   true,
		JoinedDate: "2024-02-01",
	})
	require.NoError(t, err)
	id := f.ID
	return f, Actor{UserID: uuid.New(), Role: access.RoleFarmer, FarmerID: &id}
}

func (e *testEnv) product(t *testing.T, farmerID uuid.UUID, name, price string) *models.Product {
	t.Helper()
	p, err := e.Repo.CreateProduct(context.Background(), &models.Product{
		FarmerID:    farmerID,
		Name:        name,
		Description: name,
		Category:    "Vegetables",
		Price:       decimal.RequireFromString(price),
		Unit:        "kg",
		Stock:       20,
	})
	require.NoError(t, err)
	return p
}

func adminActor() Actor {
	return Actor{UserID: uuid.New(), Role: access.RoleAdmin}
}

func quantity(n int) *int { return &n }

package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	appcfg "github.com/gashorafarm/farmconnect/internal/config"
	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/search"
	"github.com/gashorafarm/farmconnect/internal/seed"
	"github.com/gashorafarm/farmconnect/internal/service"
	pkgdb "github.com/gashorafarm/farmconnect/pkg/db"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

func main() {
	adminEmail := flag.String("admin-email", seed.DefaultAdminEmail, "email of the default admin account")
	adminPassword := flag.String("admin-password", seed.DefaultAdminPassword, "password of the default admin account")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}
	cfg := appcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName+"-seed")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logging.IntoContext(ctx, logger)

	db, err := pkgdb.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer pkgdb.Close(db)

	r := &repo.GormRepo{DB: db}
	if err := r.Migrate(ctx); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	s := &seed.Seeder{
		Repo: r,
		Auth: &service.AuthService{Repo: r, Sessions: cart.NewMemoryStorage(), Secret: cfg.SessionSecret},
	}
	if cfg.Search.URL != "" {
		es, err := search.NewClient(ctx, cfg.Search)
		if err != nil {
			logger.Warn("search_disabled", "error", err)
		} else {
			s.Search = search.NewIndex(es, cfg.Search.Index)
		}
	}

	if _, err := s.Run(ctx, *adminEmail, *adminPassword); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

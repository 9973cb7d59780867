package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	appcfg "github.com/gashorafarm/farmconnect/internal/config"
	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/httpserver"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/search"
	"github.com/gashorafarm/farmconnect/internal/service"
	pkgdb "github.com/gashorafarm/farmconnect/pkg/db"
	"github.com/gashorafarm/farmconnect/pkg/events"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
	"github.com/gashorafarm/farmconnect/pkg/middleware/csrf"
	loggingmw "github.com/gashorafarm/farmconnect/pkg/middleware/logging"
	"github.com/gashorafarm/farmconnect/pkg/middleware/ratelimit"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := appcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}
	r := &repo.GormRepo{DB: db}
	if err := r.Migrate(ctx); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("cart store: %v", err)
	}

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewProducer(cfg.KafkaBrokers)
	} else {
		logger.Info("events_disabled", "reason", "KAFKA_BROKERS is empty")
	}

	catalog := &service.CatalogService{Repo: r, Events: publisher}
	if cfg.Search.URL != "" {
		es, err := search.NewClient(ctx, cfg.Search)
		if err != nil {
			logger.Warn("search_disabled", "reason", "elasticsearch unreachable", "error", err)
		} else {
			catalog.Search = search.NewIndex(es, cfg.Search.Index)
		}
	}
	cancel()

	carts := cart.NewManager(st.Carts)
	authSvc := &service.AuthService{Repo: r, Sessions: st.Sessions, Secret: cfg.SessionSecret}

	ready := []httpserver.Pinger{r}
	for _, p := range st.pingers {
		ready = append(ready, p)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.Secure())
	e.Use(echomw.BodyLimit("1M"))
	e.Use(echomw.CORS())
	e.Use(csrf.Middleware(csrf.Config{
		Secure:    cfg.CookieSecure,
		SkipPaths: []string{"/health/live", "/health/ready"},
	}))

	httpserver.Register(e, &httpserver.Deps{
		Catalog:      &httpserver.CatalogHTTP{Svc: catalog},
		Farmers:      &httpserver.FarmerHTTP{Svc: &service.FarmerService{Repo: r, Events: publisher}, Catalog: catalog},
		Cart:         &httpserver.CartHTTP{Svc: &service.CartService{Manager: carts, Repo: r}, CookieSecure: cfg.CookieSecure},
		Orders:       &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Carts: carts, Events: publisher}, CookieSecure: cfg.CookieSecure},
		Auth:         &httpserver.AuthHTTP{Svc: authSvc, CookieSecure: cfg.CookieSecure},
		Admin:        &httpserver.AdminHTTP{Admin: &service.AdminService{Repo: r}, Users: &service.UserService{Repo: r}},
		Sessions:     middleware.NewSessionMiddleware(authSvc, cfg.CookieSecure),
		LoginLimiter: ratelimit.NewPerMinute(cfg.LoginRatePerMin, cfg.LoginRatePerMin).Middleware(),
		Ready:        ready,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = publisher.Close()
	st.Close()
	pkgdb.Close(db)

	logger.Info("stopped")
}

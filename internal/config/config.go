package config

import (
	"os"
	"strconv"

	"github.com/gashorafarm/farmconnect/internal/search"
	"github.com/gashorafarm/farmconnect/pkg/config"
)

const (
	CartStoreMemory = "memory"
	CartStoreFile   = "file"
	CartStoreRedis  = "redis"
)

type ServiceConfig struct {
	config.Config

	CartStore string
	CartDir   string
	RedisAddr string

	Search search.Config

	LoginRatePerMin int
	CookieSecure    bool
}

func parse() ServiceConfig {
	secure, err := strconv.ParseBool(os.Getenv("COOKIE_SECURE"))
	if err != nil {
		secure = false
	}

	return ServiceConfig{
		Config: config.Load(),

		CartStore: config.EnvDefault("CART_STORE", CartStoreMemory),
		CartDir:   config.EnvDefault("CART_DIR", "data/carts"),
		RedisAddr: os.Getenv("REDIS_ADDR"),

		Search: search.Config{
			URL:      os.Getenv("ES_URL"),
			Username: os.Getenv("ES_USER"),
			Password: os.Getenv("ES_PASSWORD"),
			Index:    config.EnvDefault("ES_INDEX", search.DefaultIndex),
		},

		LoginRatePerMin: config.EnvIntDefault("LOGIN_RATE_PER_MIN", 10),
		CookieSecure:    secure,
	}
}

// Load reads the environment and exits when a required value is missing.
func Load() ServiceConfig {
	cfg := parse()

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustOneOf(cfg.DatabaseDriver, "DATABASE_DRIVER", "postgres", "sqlite")
	config.MustNonEmptyBytes(cfg.SessionSecret, "SESSION_SECRET")
	config.MustOneOf(cfg.CartStore, "CART_STORE", CartStoreMemory, CartStoreFile, CartStoreRedis)
	if cfg.CartStore == CartStoreRedis {
		config.MustNonEmpty(cfg.RedisAddr, "REDIS_ADDR")
	}

	return cfg
}

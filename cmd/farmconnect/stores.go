package main

import (
	"context"
	"fmt"

	appcfg "github.com/gashorafarm/farmconnect/internal/config"
	"github.com/gashorafarm/farmconnect/internal/cart"
)

type stores struct {
	Carts    cart.Storage
	Sessions cart.Storage
	closers  []func() error
	pingers  []interface{ Ping(context.Context) error }
}

func (s *stores) Close() {
	for _, c := range s.closers {
		_ = c()
	}
}

// openStores builds the cart and session snapshot stores named by CART_STORE.
func openStores(ctx context.Context, cfg appcfg.ServiceConfig) (*stores, error) {
	switch cfg.CartStore {
	case appcfg.CartStoreRedis:
		carts := cart.NewRedisStorage(cfg.RedisAddr, "farmconnect:cart:")
		sessions := cart.NewRedisStorage(cfg.RedisAddr, "farmconnect:")
		if err := carts.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return &stores{
			Carts:    carts,
			Sessions: sessions,
			closers:  []func() error{carts.Close, sessions.Close},
			pingers:  []interface{ Ping(context.Context) error }{carts},
		}, nil
	case appcfg.CartStoreFile:
		fs, err := cart.NewFileStorage(cfg.CartDir)
		if err != nil {
			return nil, err
		}
		return &stores{Carts: fs, Sessions: fs}, nil
	default:
		mem := cart.NewMemoryStorage()
		return &stores{Carts: mem, Sessions: mem}, nil
	}
}

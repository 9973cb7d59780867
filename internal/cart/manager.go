package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gashorafarm/farmconnect/internal/pricing"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

type Manager struct {
	Store Storage
}

func NewManager(store Storage) *Manager {
	return &Manager{Store: store}
}

// Open rehydrates the cart stored under key. A missing or unreadable snapshot
// yields an empty cart; only a failing store is reported.
func (m *Manager) Open(ctx context.Context, key string) (*Session, error) {
	data, err := m.Store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrUnavailable, key, err)
	}

	c := &Cart{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, c); err != nil {
			logging.FromContext(ctx).Warn("cart_snapshot_discarded", "key", key, "error", err)
			c = &Cart{}
		}
	}

	return &Session{key: key, cart: c, store: m.Store}, nil
}

// Session is an opened cart whose mutations are written through to storage.
// A mutation that fails to persist leaves the in-memory cart untouched.
type Session struct {
	key   string
	cart  *Cart
	store Storage
}

func (s *Session) Key() string { return s.key }

func (s *Session) Lines() []Line { return s.cart.Lines() }

func (s *Session) IsEmpty() bool { return s.cart.IsEmpty() }

func (s *Session) TotalQuantity() int { return s.cart.TotalQuantity() }

func (s *Session) Quote(method pricing.DeliveryMethod) (pricing.Breakdown, error) {
	return s.cart.Quote(method)
}

func (s *Session) Add(ctx context.Context, ln Line) error {
	return s.mutate(ctx, func(c *Cart) error { return c.Add(ln) })
}

func (s *Session) Remove(ctx context.Context, itemID string) error {
	return s.mutate(ctx, func(c *Cart) error {
		c.Remove(itemID)
		return nil
	})
}

func (s *Session) SetQuantity(ctx context.Context, itemID string, qty int) error {
	return s.mutate(ctx, func(c *Cart) error {
		c.SetQuantity(itemID, qty)
		return nil
	})
}

func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("%w: clear %s: %v", ErrUnavailable, s.key, err)
	}
	s.cart.Clear()
	return nil
}

func (s *Session) mutate(ctx context.Context, fn func(*Cart) error) error {
	next := s.cart.clone()
	if err := fn(next); err != nil {
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Save(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrUnavailable, s.key, err)
	}

	s.cart = next
	return nil
}

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/lifecycle"
	"github.com/gashorafarm/farmconnect/internal/models"
	"github.com/gashorafarm/farmconnect/internal/pricing"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/pkg/events"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

var PaymentMethods = []string{"mobile-money", "cash-on-delivery"}

type OrderService struct {
	Repo   *repo.GormRepo
	Carts  *cart.Manager
	Events events.Publisher
	Now    func() time.Time
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func parseStatus(s string) (lifecycle.Status, error) {
	st, err := lifecycle.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return st, nil
}

// Quote prices lines without touching any cart.
func (s *OrderService) Quote(lines []pricing.Line, method string) (pricing.Breakdown, error) {
	m, err := pricing.ParseDeliveryMethod(method)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.Quote(lines, m)
}

// Checkout turns the cart under cartKey into a Pending order and empties the cart.
// An empty cart is rejected before anything is written.
func (s *OrderService) Checkout(ctx context.Context, cartKey string, actor Actor, in transport.CheckoutRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout")

	sess, err := s.Carts.Open(ctx, cartKey)
	if err != nil {
		return nil, storeErr("open cart", err)
	}
	if sess.IsEmpty() {
		return nil, ErrEmptyCart
	}

	method, err := pricing.ParseDeliveryMethod(in.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, invalid("delivery address is required")
	}
	if !slices.Contains(PaymentMethods, in.PaymentMethod) {
		return nil, invalid("unknown payment method %q", in.PaymentMethod)
	}

	quote, err := sess.Quote(method)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		Date:            s.now().UTC(),
		Subtotal:        quote.Subtotal,
		Tax:             quote.Tax,
		DeliveryFee:     quote.DeliveryFee,
		Total:           quote.Total,
		Currency:        quote.Currency,
		BaseSubtotal:    quote.BaseSubtotal,
		BaseTax:         quote.BaseTax,
		Status:          string(lifecycle.Pending),
		DeliveryMethod:  string(method),
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		PaymentMethod:   in.PaymentMethod,
	}
	if actor.role().Authenticated() && actor.UserID != uuid.Nil {
		id := actor.UserID
		order.CustomerID = &id
	}
	for _, ln := range sess.Lines() {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:   ln.ItemID,
			Kind:     string(ln.Kind),
			Name:     ln.Name,
			Price:    ln.UnitPrice,
			Quantity: ln.Quantity,
			Unit:     ln.Unit,
			ImageURL: ln.ImageURL,
		})
	}

	created, err := s.Repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, storeErr("create order", err)
	}

	if err := sess.Clear(ctx); err != nil {
		l.Warn("cart_clear_failed", "order_id", created.ID, "error", err)
	}

	publish(ctx, s.Events, events.TopicOrders, created.ID.String(), "order_created", map[string]any{
		"order_id": created.ID,
		"total":    created.Total.String(),
		"currency": created.Currency,
		"items":    len(created.Items),
	})
	l.Info("checkout_success", "order_id", created.ID, "total", created.Total.String())
	return created, nil
}

func (s *OrderService) ListOrders(ctx context.Context, actor Actor, status string, offset, limit int) (int64, []models.Order, error) {
	if status != "" && status != "All" {
		st, err := parseStatus(status)
		if err != nil {
			return 0, nil, err
		}
		status = string(st)
	} else {
		status = ""
	}

	var customer *uuid.UUID
	if actor.role() == access.RoleUser {
		id := actor.UserID
		customer = &id
	}

	total, orders, err := s.Repo.ListOrders(ctx, status, customer, offset, limit)
	if err != nil {
		return 0, nil, storeErr("list orders", err)
	}
	return total, orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*models.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, storeErr("get order", err)
	}
	if actor.role() == access.RoleUser && (o.CustomerID == nil || *o.CustomerID != actor.UserID) {
		return nil, ErrNotFound
	}
	return o, nil
}

// UpdateStatus moves an order along the lifecycle. When expectedVersion is nil the
// currently stored version is used; a concurrent change still loses the race.
func (s *OrderService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, to string, expectedVersion *int) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.update_status", "order_id", id)

	target, err := parseStatus(to)
	if err != nil {
		return nil, err
	}
	current, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, storeErr("get order", err)
	}
	from, err := lifecycle.Parse(current.Status)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Transition(from, target, actor.role()); err != nil {
		return nil, err
	}

	version := current.Version
	if expectedVersion != nil {
		version = *expectedVersion
	}
	updated, err := s.Repo.UpdateOrderStatus(ctx, id, version, string(target))
	if err != nil {
		return nil, storeErr("update order status", err)
	}

	publish(ctx, s.Events, events.TopicOrders, id.String(), "order_status_changed", map[string]any{
		"order_id": id,
		"from":     string(from),
		"to":       string(target),
		"version":  updated.Version,
	})
	l.Info("status_changed", "from", from, "to", target, "role", actor.role())
	return updated, nil
}

// DeleteOrder removes an order and its line snapshots. Only admins may delete.
func (s *OrderService) DeleteOrder(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		return storeErr("delete order", err)
	}

	publish(ctx, s.Events, events.TopicOrders, id.String(), "order_deleted", map[string]any{
		"order_id": id,
	})
	logging.FromContext(ctx).Info("order_deleted", "svc", "order.delete", "order_id", id)
	return nil
}

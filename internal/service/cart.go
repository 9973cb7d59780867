package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/pricing"
	"github.com/gashorafarm/farmconnect/internal/repo"
	"github.com/gashorafarm/farmconnect/internal/transport"
)

type CartService struct {
	Manager *cart.Manager
	Repo    *repo.GormRepo
}

// CartView is a cart together with its price for the chosen delivery method.
type CartView struct {
	Key           string            `json:"-"`
	Items         []cart.Line       `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	Quote         pricing.Breakdown `json:"quote"`
}

func (s *CartService) open(ctx context.Context, key string) (*cart.Session, error) {
	sess, err := s.Manager.Open(ctx, key)
	if err != nil {
		return nil, storeErr("open cart", err)
	}
	return sess, nil
}

func view(sess *cart.Session, method pricing.DeliveryMethod) (*CartView, error) {
	q, err := sess.Quote(method)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Key:           sess.Key(),
		Items:         sess.Lines(),
		TotalQuantity: sess.TotalQuantity(),
		Quote:         q,
	}, nil
}

func deliveryMethodOrDefault(s string) (pricing.DeliveryMethod, error) {
	if s == "" {
		return pricing.PickupFromStock, nil
	}
	return pricing.ParseDeliveryMethod(s)
}

func (s *CartService) View(ctx context.Context, key, method string) (*CartView, error) {
	m, err := deliveryMethodOrDefault(method)
	if err != nil {
		return nil, err
	}
	sess, err := s.open(ctx, key)
	if err != nil {
		return nil, err
	}
	return view(sess, m)
}

// Add snapshots the catalog item's current name, price and image into the cart.
// An omitted quantity means one unit.
func (s *CartService) Add(ctx context.Context, key string, req transport.AddToCartRequest) (*CartView, error) {
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	id, err := uuid.Parse(strings.TrimSpace(req.ItemID))
	if err != nil {
		return nil, invalid("item_id must be a uuid")
	}

	var ln cart.Line
	switch cart.Kind(req.Kind) {
	case cart.KindProduct, "":
		p, err := s.Repo.GetProduct(ctx, id)
		if err != nil {
			return nil, storeErr("get product", err)
		}
		ln = cart.Line{ItemID: p.ID.String(), Kind: cart.KindProduct, Name: p.Name, UnitPrice: p.Price, Unit: p.Unit, ImageURL: p.ImageURL}
	case cart.KindSupply:
		sp, err := s.Repo.GetSupply(ctx, id)
		if err != nil {
			return nil, storeErr("get supply", err)
		}
		ln = cart.Line{ItemID: sp.ID.String(), Kind: cart.KindSupply, Name: sp.Name, UnitPrice: sp.Price, Unit: sp.Unit, ImageURL: sp.ImageURL}
	default:
		return nil, invalid("unknown item kind %q", req.Kind)
	}
	ln.Quantity = qty

	sess, err := s.open(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := sess.Add(ctx, ln); err != nil {
		return nil, storeErr("add to cart", err)
	}
	return view(sess, pricing.PickupFromStock)
}

func (s *CartService) Remove(ctx context.Context, key, itemID string) (*CartView, error) {
	sess, err := s.open(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := sess.Remove(ctx, itemID); err != nil {
		return nil, storeErr("remove from cart", err)
	}
	return view(sess, pricing.PickupFromStock)
}

func (s *CartService) SetQuantity(ctx context.Context, key, itemID string, qty int) (*CartView, error) {
	sess, err := s.open(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := sess.SetQuantity(ctx, itemID, qty); err != nil {
		return nil, storeErr("update cart", err)
	}
	return view(sess, pricing.PickupFromStock)
}

func (s *CartService) Clear(ctx context.Context, key string) error {
	sess, err := s.open(ctx, key)
	if err != nil {
		return err
	}
	if err := sess.Clear(ctx); err != nil {
		return storeErr("clear cart", err)
	}
	return nil
}

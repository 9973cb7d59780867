package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/transport"
)

func TestCartService_AddSnapshotsCatalogItem(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	f, _ := env.farmer(t, "Seller")
	p := env.product(t, f.ID, "Carrots", "3.50")

	v, err := env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: p.ID.String(), Quantity: quantity(2)})
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, cart.KindProduct, v.Items[0].Kind)
	assert.Equal(t, "Carrots", v.Items[0].Name)

	_, err = env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: p.ID.String(), Quantity: quantity(3)})
	require.NoError(t, err)
	v, err = env.Carts.View(ctx, key, "farmer-pickup")
	require.NoError(t, err)
	assert.Equal(t, 5, v.TotalQuantity)
	assert.True(t, dec("3000").Equal(v.Quote.DeliveryFee))
}

func TestCartService_AddQuantityDefaults(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	f, _ := env.farmer(t, "Seller")
	p := env.product(t, f.ID, "Carrots", "3.50")

	v, err := env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: p.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, 1, v.TotalQuantity)

	_, err = env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: p.ID.String(), Quantity: quantity(-2)})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	v, err = env.Carts.View(ctx, key, "")
	require.NoError(t, err)
	assert.Equal(t, 1, v.TotalQuantity)
}

func TestCartService_Errors(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()

	_, err := env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: uuid.NewString(), Quantity: quantity(0)})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: "not-a-uuid", Quantity: quantity(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: uuid.NewString(), Quantity: quantity(1)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: uuid.NewString(), Kind: "gift", Quantity: quantity(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.Carts.View(ctx, key, "drone")
	assert.ErrorIs(t, err, ErrInvalidInput)

	env.Carts.Manager = cart.NewManager(failingStorage{})
	_, err = env.Carts.View(ctx, key, "")
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestCartService_QuantityRemoveClear(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	f, _ := env.farmer(t, "Seller")
	a := env.product(t, f.ID, "Carrots", "3.50")
	b := env.product(t, f.ID, "Kale", "2.00")

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		_, err := env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: id.String(), Quantity: quantity(1)})
		require.NoError(t, err)
	}

	v, err := env.Carts.SetQuantity(ctx, key, a.ID.String(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Items[0].Quantity)

	v, err = env.Carts.Remove(ctx, key, b.ID.String())
	require.NoError(t, err)
	assert.Len(t, v.Items, 1)

	require.NoError(t, env.Carts.Clear(ctx, key))
	data, err := env.Store.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, data)
}

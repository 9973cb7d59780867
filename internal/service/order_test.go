package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/lifecycle"
	"github.com/gashorafarm/farmconnect/internal/transport"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func checkoutInput() transport.CheckoutRequest {
	return transport.CheckoutRequest{
		DeliveryMethod:  "stock-pickup",
		DeliveryAddress: "KG 11 Ave, Kigali",
		PaymentMethod:   "mobile-money",
	}
}

func fillCart(t *testing.T, env *testEnv, key string) {
	t.Helper()
	ctx := context.Background()
	f, _ := env.farmer(t, "Seller")
	a := env.product(t, f.ID, "Carrots", "3.50")
	b := env.product(t, f.ID, "Honey", "5.00")

	_, err := env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: a.ID.String(), Quantity: quantity(2)})
	require.NoError(t, err)
	_, err = env.Carts.Add(ctx, key, transport.AddToCartRequest{ItemID: b.ID.String(), Kind: "product", Quantity: quantity(1)})
	require.NoError(t, err)
}

func TestCheckout_PricesAndClearsCart(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	fillCart(t, env, key)
	customer := Actor{UserID: uuid.New(), Role: access.RoleUser}

	order, err := env.Orders.Checkout(ctx, key, customer, checkoutInput())
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.Pending), order.Status)
	assert.True(t, dec("15600").Equal(order.Subtotal))
	assert.True(t, dec("2808").Equal(order.Tax))
	assert.True(t, dec("1000").Equal(order.DeliveryFee))
	assert.True(t, dec("19408").Equal(order.Total))
	assert.Equal(t, "RWF", order.Currency)
	assert.True(t, dec("12.00").Equal(order.BaseSubtotal))
	assert.True(t, dec("2.16").Equal(order.BaseTax))
	assert.Equal(t, 1, order.Version)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, customer.UserID, *order.CustomerID)

	stored, err := env.Orders.GetOrder(ctx, customer, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Carrots", stored.Items[0].Name)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.True(t, dec("3.50").Equal(stored.Items[0].Price))
	assert.True(t, dec("12.00").Equal(stored.BaseSubtotal))

	v, err := env.Carts.View(ctx, key, "")
	require.NoError(t, err)
	assert.Empty(t, v.Items)
	assert.Equal(t, []string{"order_created"}, env.Events.types())
}

func TestCheckout_EmptyCartWritesNothing(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	_, err := env.Orders.Checkout(ctx, uuid.NewString(), Actor{}, checkoutInput())
	assert.ErrorIs(t, err, ErrEmptyCart)

	total, _, err := env.Repo.ListOrders(ctx, "", nil, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, env.Events.types())
}

func TestCheckout_Validation(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	fillCart(t, env, key)

	cases := map[string]func(*transport.CheckoutRequest){
		"no address":      func(r *transport.CheckoutRequest) { r.DeliveryAddress = "  " },
		"unknown payment": func(r *transport.CheckoutRequest) { r.PaymentMethod = "barter" },
		"unknown method":  func(r *transport.CheckoutRequest) { r.DeliveryMethod = "drone" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := checkoutInput()
			mutate(&in)
			_, err := env.Orders.Checkout(ctx, key, Actor{}, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	v, err := env.Carts.View(ctx, key, "")
	require.NoError(t, err)
	assert.Len(t, v.Items, 2)
}

func TestCheckout_StorageUnavailable(t *testing.T) {
	env := newEnv(t)
	env.Orders.Carts = cart.NewManager(failingStorage{})

	_, err := env.Orders.Checkout(context.Background(), "k", Actor{}, checkoutInput())
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	fillCart(t, env, key)
	order, err := env.Orders.Checkout(ctx, key, Actor{}, checkoutInput())
	require.NoError(t, err)

	farmer := Actor{UserID: uuid.New(), Role: access.RoleFarmer}
	admin := adminActor()

	_, err = env.Orders.UpdateStatus(ctx, farmer, order.ID, "Confirmed", nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = env.Orders.UpdateStatus(ctx, admin, order.ID, "Delivered", nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	steps := []struct {
		actor Actor
		to    string
	}{
		{admin, "Confirmed"},
		{farmer, "Packed"},
		{farmer, "On the way"},
		{admin, "Delivered"},
	}
	for i, step := range steps {
		o, err := env.Orders.UpdateStatus(ctx, step.actor, order.ID, step.to, nil)
		require.NoError(t, err, step.to)
		assert.Equal(t, step.to, o.Status)
		assert.Equal(t, i+2, o.Version)
	}

	_, err = env.Orders.UpdateStatus(ctx, admin, order.ID, "Declined", nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = env.Orders.UpdateStatus(ctx, admin, order.ID, "Lost", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_StaleVersionConflicts(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	fillCart(t, env, key)
	order, err := env.Orders.Checkout(ctx, key, Actor{}, checkoutInput())
	require.NoError(t, err)
	admin := adminActor()

	v := order.Version
	_, err = env.Orders.UpdateStatus(ctx, admin, order.ID, "Confirmed", &v)
	require.NoError(t, err)

	_, err = env.Orders.UpdateStatus(ctx, admin, order.ID, "Declined", &v)
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := env.Orders.GetOrder(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", stored.Status)
	assert.Equal(t, 2, stored.Version)
}

func TestDeleteOrder_AdminOnly(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	key := uuid.NewString()
	fillCart(t, env, key)
	order, err := env.Orders.Checkout(ctx, key, Actor{}, checkoutInput())
	require.NoError(t, err)
	_, farmer := env.farmer(t, "Other Seller")

	assert.ErrorIs(t, env.Orders.DeleteOrder(ctx, farmer, order.ID), ErrForbidden)

	admin := adminActor()
	require.NoError(t, env.Orders.DeleteOrder(ctx, admin, order.ID))
	_, err = env.Orders.GetOrder(ctx, admin, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, env.Orders.DeleteOrder(ctx, admin, order.ID), ErrNotFound)
	assert.Equal(t, []string{"order_created", "order_deleted"}, env.Events.types())
}

func TestListOrders_UsersSeeOnlyTheirOwn(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	alice := Actor{UserID: uuid.New(), Role: access.RoleUser}
	bob := Actor{UserID: uuid.New(), Role: access.RoleUser}

	for _, who := range []Actor{alice, bob, bob} {
		key := uuid.NewString()
		fillCart(t, env, key)
		_, err := env.Orders.Checkout(ctx, key, who, checkoutInput())
		require.NoError(t, err)
	}

	total, _, err := env.Orders.ListOrders(ctx, alice, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	total, _, err = env.Orders.ListOrders(ctx, adminActor(), "Pending", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	total, _, err = env.Orders.ListOrders(ctx, adminActor(), "Delivered", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, orders, err := env.Orders.ListOrders(ctx, bob, "All", 0, 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	_, err = env.Orders.GetOrder(ctx, alice, orders[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardStats_RevenueFromDeliveredOnly(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	admin := adminActor()

	var ids []uuid.UUID
	for range 2 {
		key := uuid.NewString()
		fillCart(t, env, key)
		o, err := env.Orders.Checkout(ctx, key, Actor{}, checkoutInput())
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	for _, to := range []string{"Confirmed", "Packed", "On the way", "Delivered"} {
		_, err := env.Orders.UpdateStatus(ctx, admin, ids[0], to, nil)
		require.NoError(t, err)
	}

	stats, err := env.Admin.DashboardStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.EqualValues(t, 1, stats.PendingOrders)
	assert.True(t, dec("19408").Equal(stats.Revenue), stats.Revenue.String())
	assert.EqualValues(t, 4, stats.TotalProducts)
}

func TestQuote(t *testing.T) {
	env := newEnv(t)
	_, err := env.Orders.Quote(nil, "teleport")
	assert.ErrorIs(t, err, ErrInvalidInput)

	b, err := env.Orders.Quote(nil, "farmer-pickup")
	require.NoError(t, err)
	assert.True(t, dec("3000").Equal(b.Total))
}



package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestQuote_ScenarioA(t *testing.T) {
	lines := []Line{
		{UnitPrice: d("3.50"), Quantity: 2},
		{UnitPrice: d("5.00"), Quantity: 1},
	}

	b, err := Quote(lines, PickupFromStock)
	require.NoError(t, err)

	assert.Equal(t, "12.00", b.BaseSubtotal.StringFixed(2))
	assert.Equal(t, "2.16", b.BaseTax.StringFixed(2))
	assert.Equal(t, "15600", b.Subtotal.String())
	assert.Equal(t, "2808", b.Tax.String())
	assert.Equal(t, "1000", b.DeliveryFee.String())
	assert.Equal(t, "19408", b.Total.String())
	assert.Equal(t, DisplayCurrency, b.Currency)

	again, err := Quote(lines, PickupFromStock)
	require.NoError(t, err)
	first, _ := json.Marshal(b)
	second, _ := json.Marshal(again)
	assert.Equal(t, first, second)
}

func TestQuote_TaxFollowsSubtotal(t *testing.T) {
	for _, price := range []string{"0.01", "0.33", "1.99", "7.25", "12.49", "99.99"} {
		for qty := 1; qty <= 7; qty++ {
			b, err := Quote([]Line{{UnitPrice: d(price), Quantity: qty}}, PickupFromFarmer)
			require.NoError(t, err)

			want := b.Subtotal.Mul(TaxRate).Round(0)
			assert.True(t, want.Equal(b.Tax), "price=%s qty=%d", price, qty)
			assert.True(t, b.Subtotal.Add(b.Tax).Add(b.DeliveryFee).Equal(b.Total))
		}
	}
}

func TestDeliveryFee_StockCheaperThanFarmer(t *testing.T) {
	stock, err := DeliveryFee(PickupFromStock)
	require.NoError(t, err)
	farmer, err := DeliveryFee(PickupFromFarmer)
	require.NoError(t, err)

	assert.True(t, stock.LessThan(farmer))
	assert.Equal(t, "1000", stock.String())
	assert.Equal(t, "3000", farmer.String())
}

func TestQuote_EmptyCartIsFeeOnly(t *testing.T) {
	b, err := Quote(nil, PickupFromFarmer)
	require.NoError(t, err)

	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Tax.IsZero())
	assert.Equal(t, "3000", b.Total.String())
}

func TestQuote_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		lines  []Line
		method DeliveryMethod
	}{
		{name: "negative price", lines: []Line{{UnitPrice: d("-1"), Quantity: 1}}, method: PickupFromStock},
		{name: "zero quantity", lines: []Line{{UnitPrice: d("1"), Quantity: 0}}, method: PickupFromStock},
		{name: "negative quantity", lines: []Line{{UnitPrice: d("1"), Quantity: -2}}, method: PickupFromStock},
		{name: "unknown method", lines: nil, method: "drone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Quote(tt.lines, tt.method)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestQuote_FreeItemsAllowed(t *testing.T) {
	b, err := Quote([]Line{{UnitPrice: decimal.Zero, Quantity: 3}}, PickupFromStock)
	require.NoError(t, err)
	assert.Equal(t, "1000", b.Total.String())
}

func TestToDisplay(t *testing.T) {
	assert.Equal(t, "4550", ToDisplay(d("3.50")).String())
	assert.Equal(t, "13", ToDisplay(d("0.0099")).String())
}

func TestParseDeliveryMethod(t *testing.T) {
	m, err := ParseDeliveryMethod("farmer-pickup")
	require.NoError(t, err)
	assert.Equal(t, PickupFromFarmer, m)

	_, err = ParseDeliveryMethod("courier")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

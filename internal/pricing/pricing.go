// Package pricing turns cart lines and a delivery choice into a price breakdown.
//
// Unit prices are kept in the base currency (USD). The breakdown reports the
// base subtotal and tax at two decimal places and every displayed amount in
// whole Rwandan francs, converted at ExchangeRate. Rounding is half away from
// zero throughout.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	BaseCurrency    = "USD"
	DisplayCurrency = "RWF"
)

var (
	ExchangeRate = decimal.NewFromInt(1300)
	TaxRate      = decimal.RequireFromString("0.18")
)

var ErrInvalidInput = errors.New("invalid input")

type DeliveryMethod string

const (
	PickupFromStock  DeliveryMethod = "stock-pickup"
	PickupFromFarmer DeliveryMethod = "farmer-pickup"
)

var deliveryFees = map[DeliveryMethod]decimal.Decimal{
	PickupFromStock:  decimal.NewFromInt(1000),
	PickupFromFarmer: decimal.NewFromInt(3000),
}

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	m := DeliveryMethod(s)
	if _, ok := deliveryFees[m]; !ok {
		return "", fmt.Errorf("%w: unknown delivery method %q", ErrInvalidInput, s)
	}
	return m, nil
}

// DeliveryFee returns the flat fee in display currency.
func DeliveryFee(m DeliveryMethod) (decimal.Decimal, error) {
	fee, ok := deliveryFees[m]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown delivery method %q", ErrInvalidInput, m)
	}
	return fee, nil
}

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Breakdown struct {
	Method   DeliveryMethod `json:"delivery_method"`
	Currency string         `json:"currency"`

	BaseSubtotal decimal.Decimal `json:"base_subtotal"`
	BaseTax      decimal.Decimal `json:"base_tax"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

func ToDisplay(base decimal.Decimal) decimal.Decimal {
	return base.Mul(ExchangeRate).Round(0)
}

func Quote(lines []Line, method DeliveryMethod) (Breakdown, error) {
	fee, err := DeliveryFee(method)
	if err != nil {
		return Breakdown{}, err
	}

	base := decimal.Zero
	for i, ln := range lines {
		if ln.UnitPrice.IsNegative() {
			return Breakdown{}, fmt.Errorf("%w: line %d has negative price", ErrInvalidInput, i)
		}
		if ln.Quantity <= 0 {
			return Breakdown{}, fmt.Errorf("%w: line %d has quantity %d", ErrInvalidInput, i, ln.Quantity)
		}
		base = base.Add(ln.UnitPrice.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	base = base.Round(2)

	subtotal := ToDisplay(base)
	tax := subtotal.Mul(TaxRate).Round(0)

	return Breakdown{
		Method:       method,
		Currency:     DisplayCurrency,
		BaseSubtotal: base,
		BaseTax:      base.Mul(TaxRate).Round(2),
		Subtotal:     subtotal,
		Tax:          tax,
		DeliveryFee:  fee,
		Total:        subtotal.Add(tax).Add(fee),
	}, nil
}

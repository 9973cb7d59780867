// Package cart keeps a shopper's cart lines and persists the whole cart as one
// JSON snapshot through a pluggable Storage.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/gashorafarm/farmconnect/internal/pricing"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidItem     = errors.New("invalid cart item")
	ErrUnavailable     = errors.New("cart storage unavailable")
	errCorrupt         = errors.New("corrupt cart snapshot")
)

type Kind string

const (
	KindProduct Kind = "product"
	KindSupply  Kind = "supply"
)

// Line is a cart entry with the catalog fields captured when it was first added.
type Line struct {
	ItemID    string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
	ImageURL  string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

type Cart struct {
	lines []Line
}

func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) TotalQuantity() int {
	n := 0
	for _, ln := range c.lines {
		n += ln.Quantity
	}
	return n
}

func (c *Cart) index(itemID string) int {
	return slices.IndexFunc(c.lines, func(ln Line) bool { return ln.ItemID == itemID })
}

func (c *Cart) Find(itemID string) (Line, bool) {
	if i := c.index(itemID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Add merges into an existing line for the same item, keeping its original snapshot.
func (c *Cart) Add(ln Line) error {
	if ln.Quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, ln.Quantity)
	}
	if ln.ItemID == "" {
		return fmt.Errorf("%w: missing item id", ErrInvalidItem)
	}
	if i := c.index(ln.ItemID); i >= 0 {
		c.lines[i].Quantity += ln.Quantity
		return nil
	}
	c.lines = append(c.lines, ln)
	return nil
}

func (c *Cart) Remove(itemID string) {
	if i := c.index(itemID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// SetQuantity never drops a line; quantities below one become one.
func (c *Cart) SetQuantity(itemID string, qty int) {
	i := c.index(itemID)
	if i < 0 {
		return
	}
	c.lines[i].Quantity = max(qty, 1)
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) PricingLines() []pricing.Line {
	out := make([]pricing.Line, 0, len(c.lines))
	for _, ln := range c.lines {
		out = append(out, pricing.Line{UnitPrice: ln.UnitPrice, Quantity: ln.Quantity})
	}
	return out
}

func (c *Cart) Quote(method pricing.DeliveryMethod) (pricing.Breakdown, error) {
	return pricing.Quote(c.PricingLines(), method)
}

func (c *Cart) clone() *Cart {
	return &Cart{lines: slices.Clone(c.lines)}
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	if c.lines == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.lines)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("%w: %v", errCorrupt, err)
	}
	next := &Cart{}
	for _, ln := range lines {
		if ln.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: negative price for %q", errCorrupt, ln.ItemID)
		}
		if err := next.Add(ln); err != nil {
			return fmt.Errorf("%w: %v", errCorrupt, err)
		}
	}
	c.lines = next.lines
	return nil
}

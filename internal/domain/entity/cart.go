package entity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// CustomItemIcon is the glyph assigned to ad-hoc items entered at the register.
const CustomItemIcon = "📦"

// LineItem is one row in the cart. Catalog-derived items reuse the product ID;
// ad-hoc items get a freshly generated one. Quantity is always >= 1 while the
// item is in the cart.
type LineItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"-"` // Stored in cents, excluded from JSON
	Quantity   int    `json:"quantity"`
	Icon       string `json:"icon,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (li LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(li),
		Price: float64(li.PriceCents) / 100,
		Total: float64(li.TotalCents()) / 100,
	})
}

// TotalCents returns the extended price (unit price x quantity) in cents.
func (li *LineItem) TotalCents() int64 {
	return li.PriceCents * int64(li.Quantity)
}

// Cart is the ordered collection of line items for the sale in progress.
// Insertion order is preserved and IDs are unique within the cart.
// Cart is not safe for concurrent use; the register controller serializes
// access to it.
type Cart struct {
	items []*LineItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Find returns the line item with the given ID, or nil.
func (c *Cart) Find(id string) *LineItem {
	for _, item := range c.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// AddProduct adds one unit of a catalog product. If the product is already in
// the cart its quantity is incremented, otherwise a new line item is appended.
func (c *Cart) AddProduct(p *Product) *LineItem {
	if item := c.Find(p.ID); item != nil {
		item.Quantity++
		return item
	}
	item := &LineItem{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Quantity:   1,
		Icon:       p.Icon,
	}
	c.items = append(c.items, item)
	return item
}

// AddCustomItem appends an ad-hoc line item with a generated unique ID.
// Returns nil when the name is blank or the price is not positive; the cart
// is left untouched in that case.
func (c *Cart) AddCustomItem(name string, priceCents int64) *LineItem {
	name = strings.TrimSpace(name)
	if name == "" || priceCents <= 0 {
		return nil
	}
	item := &LineItem{
		ID:         "custom-" + uuid.New().String()[:8],
		Name:       name,
		PriceCents: priceCents,
		Quantity:   1,
		Icon:       CustomItemIcon,
	}
	c.items = append(c.items, item)
	return item
}

// UpdateQuantity adjusts a line item's quantity by delta, clamping at zero.
// An item driven to zero is removed from the cart. Unknown IDs are a no-op.
// Returns true if the cart changed.
func (c *Cart) UpdateQuantity(id string, delta int) bool {
	item := c.Find(id)
	if item == nil {
		return false
	}
	q := item.Quantity + delta
	if q <= 0 {
		return c.Remove(id)
	}
	item.Quantity = q
	return true
}

// Remove deletes the line item with the given ID. Unknown IDs are a no-op.
func (c *Cart) Remove(id string) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// SubtotalCents is the sum of extended prices over all line items.
func (c *Cart) SubtotalCents() int64 {
	var sum int64
	for _, item := range c.items {
		sum += item.TotalCents()
	}
	return sum
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, item := range c.items {
		out[i] = *item
	}
	return out
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

package entity

import "encoding/json"

// Product is a catalog entry. The catalog is read-only reference data;
// products are never mutated after load.
type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"-"` // Stored in cents, excluded from JSON
	Category   string `json:"category"`
	Icon       string `json:"icon"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.PriceCents) / 100,
	})
}

// GetPriceDecimal returns the unit price as a decimal
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.PriceCents) / 100
}

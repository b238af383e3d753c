package entity

import (
	"encoding/json"
	"time"

	"github.com/Amankewlld/swift-register/internal/domain/enum"
)

// Totals holds the derived money values for a sale in progress. All amounts
// are cents; they are pure functions of the cart subtotal, the discount
// percent and the amount tendered, recomputed on demand and never stored.
type Totals struct {
	SubTotal        int64 `json:"-"`
	DiscountPercent int   `json:"discount_percent"`
	DiscountAmount  int64 `json:"-"`
	Total           int64 `json:"-"`
	AmountTendered  int64 `json:"-"`
	Change          int64 `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (t Totals) MarshalJSON() ([]byte, error) {
	type Alias Totals
	return json.Marshal(&struct {
		Alias
		SubTotal       float64 `json:"sub_total"`
		DiscountAmount float64 `json:"discount_amount"`
		Total          float64 `json:"total"`
		AmountTendered float64 `json:"amount_tendered"`
		Change         float64 `json:"change"`
	}{
		Alias:          Alias(t),
		SubTotal:       float64(t.SubTotal) / 100,
		DiscountAmount: float64(t.DiscountAmount) / 100,
		Total:          float64(t.Total) / 100,
		AmountTendered: float64(t.AmountTendered) / 100,
		Change:         float64(t.Change) / 100,
	})
}

// ComputeTotals derives discount, total and change from the subtotal, the
// discount percent and the amount tendered. discountPercent must already be
// clamped to [0,100] at the edit site. The discount is rounded half-up to a
// whole cent so that discount + total == subtotal holds exactly.
func ComputeTotals(subtotalCents int64, discountPercent int, tenderedCents int64) Totals {
	discount := (subtotalCents*int64(discountPercent) + 50) / 100
	total := subtotalCents - discount
	return Totals{
		SubTotal:        subtotalCents,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		Total:           total,
		AmountTendered:  tenderedCents,
		// Change may be negative: the amount still due.
		Change: tenderedCents - total,
	}
}

// CanComplete reports whether the sale is eligible for completion. Cash sales
// require the tender to cover a positive total; card and mobile sales only
// require a non-empty cart.
func (t Totals) CanComplete(method enum.PaymentMethod, itemCount int) bool {
	if method == enum.PaymentCash {
		return t.AmountTendered >= t.Total && t.Total > 0
	}
	return itemCount > 0
}

// SaleSnapshot is a point-in-time copy of the sale taken at completion or
// print time. It feeds the receipt and is never retained by the register.
type SaleSnapshot struct {
	ReceiptNo       string             `json:"receipt_no"`
	Cashier         string             `json:"cashier"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	Items           []LineItem         `json:"items"`
	SubTotal        int64              `json:"-"`
	DiscountPercent int                `json:"discount_percent"`
	DiscountAmount  int64              `json:"-"`
	Total           int64              `json:"-"`
	AmountPaid      int64              `json:"-"`
	Change          int64              `json:"-"`
	TakenAt         time.Time          `json:"taken_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s SaleSnapshot) MarshalJSON() ([]byte, error) {
	type Alias SaleSnapshot
	return json.Marshal(&struct {
		Alias
		SubTotal       float64 `json:"sub_total"`
		DiscountAmount float64 `json:"discount_amount"`
		Total          float64 `json:"total"`
		AmountPaid     float64 `json:"amount_paid"`
		Change         float64 `json:"change"`
	}{
		Alias:          Alias(s),
		SubTotal:       float64(s.SubTotal) / 100,
		DiscountAmount: float64(s.DiscountAmount) / 100,
		Total:          float64(s.Total) / 100,
		AmountPaid:     float64(s.AmountPaid) / 100,
		Change:         float64(s.Change) / 100,
	})
}

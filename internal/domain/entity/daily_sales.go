package entity

import (
	"encoding/json"

	"github.com/Amankewlld/swift-register/internal/domain/enum"
)

// DailySales is the running aggregate of completed sales since the last
// reset. Amounts are cents. It lives for the lifetime of the process and is
// only mutated by Record and Reset; the register controller serializes access.
type DailySales struct {
	CashTotal              int64 `json:"-"`
	CardTotal              int64 `json:"-"`
	MobileTotal            int64 `json:"-"`
	TotalDiscounts         int64 `json:"-"`
	TransactionCount       int   `json:"transaction_count"`
	DiscountedTransactions int   `json:"discounted_transactions"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses.
// The grand total is derived here rather than stored, so it can never drift.
func (d DailySales) MarshalJSON() ([]byte, error) {
	type Alias DailySales
	return json.Marshal(&struct {
		Alias
		CashTotal      float64 `json:"cash_total"`
		CardTotal      float64 `json:"card_total"`
		MobileTotal    float64 `json:"mobile_total"`
		TotalDiscounts float64 `json:"total_discounts"`
		GrandTotal     float64 `json:"grand_total"`
	}{
		Alias:          Alias(d),
		CashTotal:      float64(d.CashTotal) / 100,
		CardTotal:      float64(d.CardTotal) / 100,
		MobileTotal:    float64(d.MobileTotal) / 100,
		TotalDiscounts: float64(d.TotalDiscounts) / 100,
		GrandTotal:     float64(d.GrandTotalCents()) / 100,
	})
}

// Record folds one completed sale into the aggregates. The update is a single
// in-memory mutation; callers hold the register lock so no partial update is
// ever observable.
func (d *DailySales) Record(method enum.PaymentMethod, totalCents, discountCents int64) {
	switch method {
	case enum.PaymentCash:
		d.CashTotal += totalCents
	case enum.PaymentCard:
		d.CardTotal += totalCents
	case enum.PaymentMobile:
		d.MobileTotal += totalCents
	}
	d.TotalDiscounts += discountCents
	d.TransactionCount++
	if discountCents > 0 {
		d.DiscountedTransactions++
	}
}

// Reset zeroes all aggregates. Operator confirmation is the caller's job.
func (d *DailySales) Reset() {
	*d = DailySales{}
}

// GrandTotalCents is the sum of the three payment buckets, always recomputed.
func (d *DailySales) GrandTotalCents() int64 {
	return d.CashTotal + d.CardTotal + d.MobileTotal
}

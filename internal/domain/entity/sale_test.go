package entity

import (
	"testing"

	"github.com/Amankewlld/swift-register/internal/domain/enum"
)

func TestComputeTotalsNoDiscount(t *testing.T) {
	totals := ComputeTotals(1599, 0, 0)
	if totals.DiscountAmount != 0 {
		t.Errorf("expected no discount, got %d", totals.DiscountAmount)
	}
	if totals.Total != 1599 {
		t.Errorf("expected total 1599, got %d", totals.Total)
	}
}

func TestComputeTotalsRoundsDiscountHalfUp(t *testing.T) {
	// 10% of 15.99 is 1.599, which rounds to 1.60
	totals := ComputeTotals(1599, 10, 2000)

	if totals.DiscountAmount != 160 {
		t.Errorf("expected discount 160, got %d", totals.DiscountAmount)
	}
	if totals.Total != 1439 {
		t.Errorf("expected total 1439, got %d", totals.Total)
	}
	if totals.Change != 561 {
		t.Errorf("expected change 561, got %d", totals.Change)
	}
}

func TestComputeTotalsDiscountPlusTotalEqualsSubtotal(t *testing.T) {
	for _, subtotal := range []int64{1, 99, 100, 1599, 12345, 999999} {
		for percent := 0; percent <= 100; percent++ {
			totals := ComputeTotals(subtotal, percent, 0)
			if totals.DiscountAmount+totals.Total != subtotal {
				t.Fatalf("discount %d + total %d != subtotal %d at %d%%",
					totals.DiscountAmount, totals.Total, subtotal, percent)
			}
			if totals.DiscountAmount < 0 || totals.Total < 0 {
				t.Fatalf("negative money at subtotal %d percent %d", subtotal, percent)
			}
		}
	}
}

func TestComputeTotalsFullDiscount(t *testing.T) {
	totals := ComputeTotals(1599, 100, 0)
	if totals.DiscountAmount != 1599 || totals.Total != 0 {
		t.Errorf("100%% discount should zero the total, got discount %d total %d",
			totals.DiscountAmount, totals.Total)
	}
}

func TestComputeTotalsChangeMayBeNegative(t *testing.T) {
	totals := ComputeTotals(1000, 0, 500)
	if totals.Change != -500 {
		t.Errorf("expected change -500 (amount still due), got %d", totals.Change)
	}
}

func TestCanCompleteCash(t *testing.T) {
	tests := []struct {
		name     string
		totals   Totals
		expected bool
	}{
		{"tender covers total", ComputeTotals(1000, 0, 1000), true},
		{"tender exceeds total", ComputeTotals(1000, 0, 2000), true},
		{"tender short", ComputeTotals(1000, 0, 999), false},
		{"no tender", ComputeTotals(1000, 0, 0), false},
		{"zero total", ComputeTotals(0, 0, 500), false},
		{"fully discounted", ComputeTotals(1000, 100, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.totals.CanComplete(enum.PaymentCash, 1); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCanCompleteNonCash(t *testing.T) {
	totals := ComputeTotals(1000, 0, 0)

	if !totals.CanComplete(enum.PaymentCard, 1) {
		t.Error("card sale with items must be completable without tender")
	}
	if !totals.CanComplete(enum.PaymentMobile, 2) {
		t.Error("mobile sale with items must be completable without tender")
	}
	if totals.CanComplete(enum.PaymentCard, 0) {
		t.Error("empty cart must never be completable")
	}
}

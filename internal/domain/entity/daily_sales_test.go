package entity

import (
	"encoding/json"
	"testing"

	"github.com/Amankewlld/swift-register/internal/domain/enum"
)

func TestRecordBucketsByPaymentMethod(t *testing.T) {
	var day DailySales

	day.Record(enum.PaymentCash, 1000, 0)
	day.Record(enum.PaymentCard, 2000, 100)
	day.Record(enum.PaymentMobile, 3000, 0)
	day.Record(enum.PaymentCash, 500, 50)

	if day.CashTotal != 1500 {
		t.Errorf("expected cash total 1500, got %d", day.CashTotal)
	}
	if day.CardTotal != 2000 {
		t.Errorf("expected card total 2000, got %d", day.CardTotal)
	}
	if day.MobileTotal != 3000 {
		t.Errorf("expected mobile total 3000, got %d", day.MobileTotal)
	}
	if day.GrandTotalCents() != 6500 {
		t.Errorf("expected grand total 6500, got %d", day.GrandTotalCents())
	}
	if day.TransactionCount != 4 {
		t.Errorf("expected 4 transactions, got %d", day.TransactionCount)
	}
	if day.TotalDiscounts != 150 {
		t.Errorf("expected discounts 150, got %d", day.TotalDiscounts)
	}
	if day.DiscountedTransactions != 2 {
		t.Errorf("expected 2 discounted transactions, got %d", day.DiscountedTransactions)
	}
}

func TestRecordZeroDiscountNotCountedAsDiscounted(t *testing.T) {
	var day DailySales
	day.Record(enum.PaymentCash, 1000, 0)

	if day.DiscountedTransactions != 0 {
		t.Errorf("zero-discount sale must not count as discounted, got %d", day.DiscountedTransactions)
	}
}

func TestResetZeroesEverything(t *testing.T) {
	var day DailySales
	day.Record(enum.PaymentCash, 1000, 100)
	day.Record(enum.PaymentCard, 2000, 0)

	day.Reset()

	if day != (DailySales{}) {
		t.Errorf("expected zeroed aggregates after reset, got %+v", day)
	}
}

func TestDailySalesJSONIncludesDerivedGrandTotal(t *testing.T) {
	var day DailySales
	day.Record(enum.PaymentCash, 1439, 160)

	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out["grand_total"] != 14.39 {
		t.Errorf("expected grand_total 14.39, got %v", out["grand_total"])
	}
	if out["cash_total"] != 14.39 {
		t.Errorf("expected cash_total 14.39, got %v", out["cash_total"])
	}
	if out["total_discounts"] != 1.6 {
		t.Errorf("expected total_discounts 1.6, got %v", out["total_discounts"])
	}
}

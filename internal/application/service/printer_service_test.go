package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Amankewlld/swift-register/internal/domain/entity"
	"github.com/Amankewlld/swift-register/internal/domain/enum"
	"github.com/Amankewlld/swift-register/pkg/printer"
)

func testHeader() entity.ReceiptHeader {
	return entity.ReceiptHeader{
		StoreName: "QUICK SHOP POS",
		Address:   "123 Main Street",
		Phone:     "Tel: (555) 123-4567",
	}
}

func testSnapshot() entity.SaleSnapshot {
	return entity.SaleSnapshot{
		ReceiptNo:     "RCP-ABCD1234",
		Cashier:       "Alice",
		PaymentMethod: enum.PaymentCash,
		Items: []entity.LineItem{
			{ID: "1", Name: "Coffee", PriceCents: 350, Quantity: 2},
			{ID: "x", Name: "Lunch Special", PriceCents: 899, Quantity: 1},
		},
		SubTotal:        1599,
		DiscountPercent: 10,
		DiscountAmount:  160,
		Total:           1439,
		AmountPaid:      2000,
		Change:          561,
		TakenAt:         time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
	}
}

func TestBuildReceiptConvertsCentsToDecimals(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", testHeader())

	receipt := svc.BuildReceipt(testSnapshot())

	if receipt.SubTotal != 15.99 || receipt.Total != 14.39 {
		t.Errorf("unexpected money values: subtotal %v total %v", receipt.SubTotal, receipt.Total)
	}
	if receipt.Paid != 20.00 || receipt.Change != 5.61 {
		t.Errorf("unexpected paid %v change %v", receipt.Paid, receipt.Change)
	}
	if receipt.Date != "2024-03-15 14:30:00" {
		t.Errorf("unexpected date %q", receipt.Date)
	}
	if receipt.PaymentType != "cash" {
		t.Errorf("unexpected payment type %q", receipt.PaymentType)
	}
	if len(receipt.Items) != 2 {
		t.Fatalf("expected 2 receipt items, got %d", len(receipt.Items))
	}
	if receipt.Items[0].Total != 7.00 {
		t.Errorf("expected extended price 7.00, got %v", receipt.Items[0].Total)
	}
}

func TestFormatReceiptText(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", testHeader())
	text := FormatReceiptText(svc.BuildReceipt(testSnapshot()))

	for _, want := range []string{
		"QUICK SHOP POS",
		"123 Main Street",
		"Receipt:",
		"RCP-ABCD1234",
		"Cashier:",
		"Alice",
		"Coffee x2",
		"Lunch Special",
		"Subtotal",
		"15.99",
		"Discount (10%)",
		"-1.60",
		"TOTAL",
		"14.39",
		"Cash",
		"20.00",
		"Change",
		"5.61",
		"Thank you for shopping!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt text missing %q:\n%s", want, text)
		}
	}

	// Single-quantity lines carry no multiplier
	if strings.Contains(text, "Lunch Special x1") {
		t.Error("quantity 1 must not print a multiplier")
	}
}

func TestFormatReceiptTextOmitsConditionalBlocks(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", testHeader())

	snap := testSnapshot()
	snap.PaymentMethod = enum.PaymentCard
	snap.DiscountPercent = 0
	snap.DiscountAmount = 0
	snap.Total = snap.SubTotal
	snap.AmountPaid = 0
	snap.Change = 0

	text := FormatReceiptText(svc.BuildReceipt(snap))

	if strings.Contains(text, "Discount") {
		t.Error("zero-discount receipt must not show a discount line")
	}
	if strings.Contains(text, "Cash") || strings.Contains(text, "Change") {
		t.Error("non-cash receipt with no payment must not show the cash block")
	}
	if !strings.Contains(text, "card") {
		t.Error("expected the payment type on the receipt")
	}
}

func TestPrintReceiptReturnsTextOnPrinterFailure(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", testHeader())

	receipt, text, err := svc.PrintReceipt(testSnapshot())
	if receipt == nil {
		t.Fatal("receipt must be returned even when printing is disabled")
	}
	if text == "" {
		t.Error("text rendering must be returned even when printing is disabled")
	}
	// The null printer silently succeeds
	if err != nil {
		t.Errorf("null printer must not fail: %v", err)
	}
}

func TestGetStatus(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), "none", testHeader())
	status := svc.GetStatus()
	if status.Configured {
		t.Error("type none must report unconfigured")
	}
	if status.Type != "none" {
		t.Errorf("unexpected type %q", status.Type)
	}
}

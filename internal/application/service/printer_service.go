package service

import (
	"fmt"
	"log"

	"github.com/Amankewlld/swift-register/internal/domain/entity"
	"github.com/Amankewlld/swift-register/pkg/printer"
)

// receiptWidth is the character width of a 58mm thermal receipt.
const receiptWidth = 32

// PrinterService handles receipt composition, formatting and thermal
// printing. Formatting is pure; only Print touches hardware.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	header      entity.ReceiptHeader
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string, header entity.ReceiptHeader) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		header:      header,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// BuildReceipt composes the printable receipt from a sale snapshot. Cents
// become display decimals here, at the presentation boundary.
func (s *PrinterService) BuildReceipt(snap entity.SaleSnapshot) *entity.Receipt {
	receipt := &entity.Receipt{
		Header:          s.header,
		ReceiptNo:       snap.ReceiptNo,
		Date:            snap.TakenAt.Format("2006-01-02 15:04:05"),
		Cashier:         snap.Cashier,
		PaymentType:     snap.PaymentMethod.String(),
		SubTotal:        float64(snap.SubTotal) / 100,
		DiscountPercent: snap.DiscountPercent,
		DiscountAmount:  float64(snap.DiscountAmount) / 100,
		Total:           float64(snap.Total) / 100,
		Paid:            float64(snap.AmountPaid) / 100,
		Change:          float64(snap.Change) / 100,
	}
	for _, item := range snap.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.PriceCents) / 100,
			Total:     float64(item.TotalCents()) / 100,
		})
	}
	return receipt
}

// PrintReceipt formats a receipt and sends it to the configured printer.
// The plain-text rendering is always returned so the caller can show a
// preview even when no hardware is attached.
func (s *PrinterService) PrintReceipt(snap entity.SaleSnapshot) (*entity.Receipt, string, error) {
	receipt := s.BuildReceipt(snap)
	text := FormatReceiptText(receipt)

	if err := s.printer.Print(FormatReceipt(receipt)); err != nil {
		log.Printf("Printer error (receipt %s): %v", receipt.ReceiptNo, err)
		return receipt, text, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, text, nil
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when the
// printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:    s.header,
		ReceiptNo: "TEST-001",
		Date:      "Test Date",
		Cashier:   "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
		Paid:     20.00,
	}

	if err := s.printer.Print(FormatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(receiptWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Sale info
	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.PaymentType != "" {
		doc.KeyValue("Payment:", r.PaymentType)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.DiscountPercent > 0 {
		doc.KeyValue(fmt.Sprintf("Discount (%d%%):", r.DiscountPercent), fmt.Sprintf("-%.2f", r.DiscountAmount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	if r.Paid > 0 {
		doc.KeyValue("Cash:", fmt.Sprintf("%.2f", r.Paid)).
			KeyValue("Change:", fmt.Sprintf("%.2f", r.Change))
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for shopping!").
		Text("Please come again").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatReceiptText renders a Receipt as plain text with the same layout as
// the thermal output. Deterministic for a given receipt; an empty item list
// still produces a complete receipt with zero totals.
func FormatReceiptText(r *entity.Receipt) string {
	doc := printer.NewTextDocument(receiptWidth)

	doc.Center(r.Header.StoreName)
	if r.Header.Address != "" {
		doc.Center(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Center(r.Header.Phone)
	}

	doc.Separator('-').
		KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)
	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.PaymentType != "" {
		doc.KeyValue("Payment:", r.PaymentType)
	}

	doc.Separator('-')
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
	}
	doc.Separator('-')

	doc.KeyValue("Subtotal", fmt.Sprintf("%.2f", r.SubTotal))
	if r.DiscountPercent > 0 {
		doc.KeyValue(fmt.Sprintf("Discount (%d%%)", r.DiscountPercent), fmt.Sprintf("-%.2f", r.DiscountAmount))
	}
	doc.KeyValue("TOTAL", fmt.Sprintf("%.2f", r.Total))

	if r.Paid > 0 {
		doc.KeyValue("Cash", fmt.Sprintf("%.2f", r.Paid)).
			KeyValue("Change", fmt.Sprintf("%.2f", r.Change))
	}

	doc.Separator('-').
		Center("Thank you for shopping!").
		Center("Please come again")

	return doc.String()
}

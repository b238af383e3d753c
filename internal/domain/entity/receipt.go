package entity

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is composed
// from a sale snapshot at print time and carries display-ready decimal
// amounts; it is not register state.
type Receipt struct {
	Header          ReceiptHeader `json:"header"`
	ReceiptNo       string        `json:"receipt_no"`
	Date            string        `json:"date"`
	Cashier         string        `json:"cashier,omitempty"`
	PaymentType     string        `json:"payment_type,omitempty"`
	Items           []ReceiptItem `json:"items"`
	SubTotal        float64       `json:"sub_total"`
	DiscountPercent int           `json:"discount_percent"`
	DiscountAmount  float64       `json:"discount_amount"`
	Total           float64       `json:"total"`
	Paid            float64       `json:"paid"`
	Change          float64       `json:"change"`
}

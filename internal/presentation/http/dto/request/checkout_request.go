package request

// DiscountRequest sets the sale-level discount percentage
type DiscountRequest struct {
	Percent int `json:"percent"`
}

// PaymentMethodRequest selects how the sale will be settled
type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// TenderRequest records the cash offered by the customer. Either an
// explicit amount or the "exact" preset must be given.
type TenderRequest struct {
	Amount *float64 `json:"amount"`
	Preset string   `json:"preset"`
}

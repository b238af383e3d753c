package request

// ResetDayRequest confirms zeroing the daily sales aggregates
type ResetDayRequest struct {
	Confirm bool `json:"confirm"`
}

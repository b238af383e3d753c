package enum

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a sale is settled
type PaymentMethod int

const (
	PaymentCash   PaymentMethod = 0
	PaymentCard   PaymentMethod = 1
	PaymentMobile PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	return [...]string{"cash", "card", "mobile"}[m]
}

// Valid reports whether m is one of the known payment methods
func (m PaymentMethod) Valid() bool {
	return m >= PaymentCash && m <= PaymentMobile
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParsePaymentMethod converts a string into a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return PaymentCash, nil
	case "card":
		return PaymentCard, nil
	case "mobile":
		return PaymentMobile, nil
	}
	return PaymentCash, fmt.Errorf("unknown payment method %q", s)
}

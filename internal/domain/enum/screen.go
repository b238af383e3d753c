package enum

import "encoding/json"

// Screen identifies one of the three register screens
type Screen int

const (
	ScreenSignIn   Screen = 0
	ScreenProducts Screen = 1
	ScreenCheckout Screen = 2
)

func (s Screen) String() string {
	return [...]string{"sign-in", "products", "checkout"}[s]
}

func (s Screen) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Screen) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = Screen(i)
		return nil
	}
	switch str {
	case "sign-in":
		*s = ScreenSignIn
	case "products":
		*s = ScreenProducts
	case "checkout":
		*s = ScreenCheckout
	}
	return nil
}

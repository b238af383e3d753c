package request

// SignInRequest represents a cashier sign-in request
type SignInRequest struct {
	Username string `json:"username" binding:"required"`
}

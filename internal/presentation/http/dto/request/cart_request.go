package request

// AddItemRequest adds a catalog product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddCustomItemRequest adds an ad-hoc priced item to the cart
type AddCustomItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

// UpdateQuantityRequest adjusts a line item's quantity by a signed delta
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

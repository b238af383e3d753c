package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/application/service"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/request"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/response"
)

// CartHandler handles cart mutations for the sale in progress
type CartHandler struct {
	registerService *service.RegisterService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(registerService *service.RegisterService) *CartHandler {
	return &CartHandler{registerService: registerService}
}

// Get returns the cart's line items and the derived totals.
func (h *CartHandler) Get(c *gin.Context) {
	items, totals := h.registerService.CartView()
	response.OK(c, "Cart retrieved", gin.H{
		"items":  items,
		"totals": totals,
	})
}

// AddItem adds one unit of a catalog product to the cart.
// @Summary Add catalog item
// @Tags cart
// @Accept json
// @Produce json
// @Param request body request.AddItemRequest true "Product ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.registerService.AddCatalogItem(req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, item.Name+" added to cart", gin.H{"item": item})
}

// AddCustomItem adds an ad-hoc named and priced item to the cart.
func (h *CartHandler) AddCustomItem(c *gin.Context) {
	var req request.AddCustomItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.registerService.AddCustomItem(req.Name, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, item.Name+" added to cart", gin.H{"item": item})
}

// UpdateQuantity adjusts a line item's quantity by a signed delta.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.registerService.UpdateQuantity(c.Param("id"), req.Delta)
	items, totals := h.registerService.CartView()
	response.OK(c, "Quantity updated", gin.H{
		"items":  items,
		"totals": totals,
	})
}

// RemoveItem removes a line item from the cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.registerService.RemoveItem(c.Param("id"))
	items, totals := h.registerService.CartView()
	response.OK(c, "Item removed", gin.H{
		"items":  items,
		"totals": totals,
	})
}

// Clear abandons the sale in progress.
func (h *CartHandler) Clear(c *gin.Context) {
	h.registerService.ClearCart()
	response.OK(c, "Cart cleared", nil)
}

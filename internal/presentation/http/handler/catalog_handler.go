package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/application/service"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/response"
)

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns the catalog, optionally filtered by category.
// @Summary List products
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	category := c.Query("category")
	products := h.catalogService.ListProducts(category)
	response.OK(c, "Products retrieved", gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Categories returns the catalog categories in first-seen order.
func (h *CatalogHandler) Categories(c *gin.Context) {
	response.OK(c, "Categories retrieved", gin.H{
		"categories": h.catalogService.Categories(),
	})
}

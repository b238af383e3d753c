package repository

import "github.com/Amankewlld/swift-register/internal/domain/entity"

// CatalogRepository is the read-only port over the product catalog. The
// catalog is fixed at process start; implementations never mutate it.
type CatalogRepository interface {
	// List returns all products in catalog order.
	List() []entity.Product
	// ListByCategory returns the products in one category, catalog order.
	ListByCategory(category string) []entity.Product
	// GetByID returns the product with the given ID, or nil.
	GetByID(id string) *entity.Product
	// Categories returns the distinct categories in first-seen order.
	Categories() []string
}

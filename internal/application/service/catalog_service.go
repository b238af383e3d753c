package service

import (
	"github.com/Amankewlld/swift-register/internal/domain/entity"
	"github.com/Amankewlld/swift-register/internal/domain/repository"
)

// CatalogService serves the read-only product catalog.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListProducts returns products, optionally filtered to one category.
func (s *CatalogService) ListProducts(category string) []entity.Product {
	if category == "" {
		return s.catalogRepo.List()
	}
	return s.catalogRepo.ListByCategory(category)
}

// Categories returns the distinct categories in first-seen order.
func (s *CatalogService) Categories() []string {
	return s.catalogRepo.Categories()
}

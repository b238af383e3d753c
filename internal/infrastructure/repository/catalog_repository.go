package repository

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Amankewlld/swift-register/internal/domain/entity"
)

// InMemoryCatalogRepository serves a static product list loaded at startup.
type InMemoryCatalogRepository struct {
	products   []entity.Product
	byID       map[string]*entity.Product
	categories []string
}

// NewCatalogRepository builds the catalog from a product list, validating it
// and deriving the category set in first-seen order.
func NewCatalogRepository(products []entity.Product) (*InMemoryCatalogRepository, error) {
	repo := &InMemoryCatalogRepository{
		products: products,
		byID:     make(map[string]*entity.Product, len(products)),
	}
	seen := make(map[string]bool)
	for i := range products {
		p := &repo.products[i]
		if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog: product %d is missing an id or name", i)
		}
		if p.PriceCents < 0 {
			return nil, fmt.Errorf("catalog: product %q has a negative price", p.ID)
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		repo.byID[p.ID] = p
		if !seen[p.Category] {
			seen[p.Category] = true
			repo.categories = append(repo.categories, p.Category)
		}
	}
	return repo, nil
}

func (r *InMemoryCatalogRepository) List() []entity.Product {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryCatalogRepository) ListByCategory(category string) []entity.Product {
	var out []entity.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryCatalogRepository) GetByID(id string) *entity.Product {
	p, ok := r.byID[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (r *InMemoryCatalogRepository) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// catalogFileEntry is the on-disk product shape, with a decimal price.
type catalogFileEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
}

// LoadCatalogFile reads a JSON product list from path. Prices are decimals in
// the file and converted to cents here, at the boundary.
func LoadCatalogFile(path string) ([]entity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}
	var entries []catalogFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse %s: %w", path, err)
	}
	products := make([]entity.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, entity.Product{
			ID:         e.ID,
			Name:       e.Name,
			PriceCents: int64(math.Round(e.Price * 100)),
			Category:   e.Category,
			Icon:       e.Icon,
		})
	}
	return products, nil
}

// DefaultProducts is the built-in catalog used when no catalog file is
// configured.
func DefaultProducts() []entity.Product {
	return []entity.Product{
		// Beverages
		{ID: "1", Name: "Water Bottle", PriceCents: 150, Category: "Beverages", Icon: "💧"},
		{ID: "2", Name: "Soda", PriceCents: 200, Category: "Beverages", Icon: "🥤"},
		{ID: "3", Name: "Coffee", PriceCents: 350, Category: "Beverages", Icon: "☕"},
		{ID: "4", Name: "Orange Juice", PriceCents: 400, Category: "Beverages", Icon: "🍊"},
		{ID: "5", Name: "Iced Tea", PriceCents: 250, Category: "Beverages", Icon: "🧊"},

		// Food
		{ID: "6", Name: "Sandwich", PriceCents: 650, Category: "Food", Icon: "🥪"},
		{ID: "7", Name: "Burger", PriceCents: 899, Category: "Food", Icon: "🍔"},
		{ID: "8", Name: "Pizza Slice", PriceCents: 450, Category: "Food", Icon: "🍕"},
		{ID: "9", Name: "Salad", PriceCents: 700, Category: "Food", Icon: "🥗"},
		{ID: "10", Name: "Hot Dog", PriceCents: 500, Category: "Food", Icon: "🌭"},

		// Snacks
		{ID: "11", Name: "Chips", PriceCents: 250, Category: "Snacks", Icon: "🍟"},
		{ID: "12", Name: "Cookie", PriceCents: 150, Category: "Snacks", Icon: "🍪"},
		{ID: "13", Name: "Candy Bar", PriceCents: 175, Category: "Snacks", Icon: "🍫"},
		{ID: "14", Name: "Popcorn", PriceCents: 300, Category: "Snacks", Icon: "🍿"},
		{ID: "15", Name: "Ice Cream", PriceCents: 450, Category: "Snacks", Icon: "🍦"},
	}
}

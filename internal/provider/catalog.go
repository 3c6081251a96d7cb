package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"adminsearch/internal/domain"
)

// Catalog is the data behind the local provider
type Catalog interface {
	// SearchProducts returns every product whose name contains query,
	// case-insensitively, in insertion order
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	SearchCategories(ctx context.Context, query string) ([]domain.Category, error)
	DetailSource
}

// CatalogWriter stores catalog entries. Seed writes through it.
type CatalogWriter interface {
	PutProduct(ctx context.Context, p domain.Product) error
	PutCategory(ctx context.Context, c domain.Category) error
	Assign(ctx context.Context, categoryID string, productIDs ...string) error
}

// MemoryCatalog is an in-memory Catalog
type MemoryCatalog struct {
	mu         sync.RWMutex
	products   map[string]domain.Product
	productIDs []string // insertion order
	categories map[string]domain.Category
	categoryID []string
	members    map[string][]string
}

// NewMemoryCatalog creates an empty in-memory catalog
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products:   make(map[string]domain.Product),
		categories: make(map[string]domain.Category),
		members:    make(map[string][]string),
	}
}

// NewSeededMemoryCatalog creates an in-memory catalog holding the demo data
func NewSeededMemoryCatalog() *MemoryCatalog {
	c := NewMemoryCatalog()
	// Memory writes cannot fail
	_ = Seed(context.Background(), c)
	return c
}

func (s *MemoryCatalog) PutProduct(_ context.Context, p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.products[p.ID]; !exists {
		s.productIDs = append(s.productIDs, p.ID)
	}
	s.products[p.ID] = p
	return nil
}

func (s *MemoryCatalog) PutCategory(_ context.Context, c domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.categories[c.ID]; !exists {
		s.categoryID = append(s.categoryID, c.ID)
	}
	s.categories[c.ID] = c
	return nil
}

func (s *MemoryCatalog) Assign(_ context.Context, categoryID string, productIDs ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[categoryID]; !ok {
		return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}
	for _, id := range productIDs {
		if _, ok := s.products[id]; !ok {
			return fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
	}
	s.members[categoryID] = append(s.members[categoryID], productIDs...)
	return nil
}

func (s *MemoryCatalog) SearchProducts(_ context.Context, query string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Product
	for _, id := range s.productIDs {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryCatalog) SearchCategories(_ context.Context, query string) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Category
	for _, id := range s.categoryID {
		c := s.categories[id]
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryCatalog) Product(_ context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (s *MemoryCatalog) Category(_ context.Context, id string) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return c, nil
}

func (s *MemoryCatalog) CategoryProducts(_ context.Context, categoryID string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.categories[categoryID]; !ok {
		return nil, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}
	ids := s.members[categoryID]
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.products[id])
	}
	return out, nil
}

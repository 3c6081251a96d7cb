// Package provider implements the search backends: the remote catalog API
// and a local catalog with simulated latency.
package provider

import (
	"context"
	"errors"

	"adminsearch/internal/domain"
)

// DefaultPageSize is the number of items kept per group
const DefaultPageSize = 5

// ErrNotFound is returned by detail lookups for unknown ids
var ErrNotFound = errors.New("not found")

// Provider answers autocomplete queries
type Provider interface {
	Search(ctx context.Context, query string) (domain.SearchResponse, error)
	IsAvailable(ctx context.Context) bool
	Name() string
}

// DetailSource serves the detail pages
type DetailSource interface {
	Product(ctx context.Context, id string) (domain.Product, error)
	Category(ctx context.Context, id string) (domain.Category, error)
	CategoryProducts(ctx context.Context, categoryID string) ([]domain.Product, error)
}

// Backend is a provider that can also serve detail pages
type Backend interface {
	Provider
	DetailSource
}

func capItems(items []domain.Item, pageSize int) []domain.Item {
	if pageSize > 0 && len(items) > pageSize {
		return items[:pageSize]
	}
	return items
}

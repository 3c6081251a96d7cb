package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"adminsearch/internal/domain"
	"adminsearch/internal/logging"
)

// DefaultLatency is the simulated round trip of the local provider
const DefaultLatency = 300 * time.Millisecond

// LocalOptions configures the local provider
type LocalOptions struct {
	Latency  time.Duration // negative disables the delay
	PageSize int
}

// Local serves searches from a Catalog, behaving like the remote API
type Local struct {
	catalog  Catalog
	latency  time.Duration
	pageSize int
	log      *logrus.Entry
}

// NewLocal creates a local provider over catalog
func NewLocal(catalog Catalog, opts LocalOptions) *Local {
	if opts.Latency == 0 {
		opts.Latency = DefaultLatency
	}
	if opts.Latency < 0 {
		opts.Latency = 0
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Local{
		catalog:  catalog,
		latency:  opts.Latency,
		pageSize: opts.PageSize,
		log:      logging.NewLogger("local"),
	}
}

// Name identifies the provider
func (l *Local) Name() string { return "local" }

// IsAvailable is always true for the local catalog
func (l *Local) IsAvailable(context.Context) bool { return true }

// Search waits for the simulated latency, then filters the catalog. Totals
// count every match; item lists are capped to the page size.
func (l *Local) Search(ctx context.Context, query string) (domain.SearchResponse, error) {
	if err := l.wait(ctx); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.EmptyResponse(), nil
	}

	products, err := l.catalog.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	categories, err := l.catalog.SearchCategories(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}

	productItems := make([]domain.Item, 0, len(products))
	for _, p := range products {
		productItems = append(productItems, p.Item())
	}
	categoryItems := make([]domain.Item, 0, len(categories))
	for _, c := range categories {
		categoryItems = append(categoryItems, c.Item())
	}

	l.log.WithFields(logrus.Fields{
		"query":      query,
		"products":   len(products),
		"categories": len(categories),
	}).Debug("Local search")

	return domain.SearchResponse{
		domain.SectionProducts: {
			Items: capItems(productItems, l.pageSize),
			Total: len(productItems),
		},
		domain.SectionCategories: {
			Items: capItems(categoryItems, l.pageSize),
			Total: len(categoryItems),
		},
	}, nil
}

// Product looks up one product in the catalog
func (l *Local) Product(ctx context.Context, id string) (domain.Product, error) {
	return l.catalog.Product(ctx, id)
}

// Category looks up one category in the catalog
func (l *Local) Category(ctx context.Context, id string) (domain.Category, error) {
	return l.catalog.Category(ctx, id)
}

// CategoryProducts lists the products that belong to a category
func (l *Local) CategoryProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return l.catalog.CategoryProducts(ctx, categoryID)
}

func (l *Local) wait(ctx context.Context) error {
	if l.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(l.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"adminsearch/internal/domain"
	"adminsearch/internal/logging"
	"adminsearch/internal/provider"
)

// MaxCategoryProducts is the number of products listed on a category page
const MaxCategoryProducts = 10

// Pages renders detail pages from a detail source
type Pages struct {
	source provider.DetailSource
	log    *logrus.Entry
}

// NewPages creates a page renderer
func NewPages(source provider.DetailSource) *Pages {
	return &Pages{
		source: source,
		log:    logging.NewLogger("pages"),
	}
}

// Render returns the page for path. Lookup failures render as a page too.
func (p *Pages) Render(ctx context.Context, path string) string {
	itemType, id, ok := ParsePath(path)
	if !ok {
		return notFound("Page", path)
	}

	switch itemType {
	case domain.TypeProduct:
		return p.product(ctx, id)
	case domain.TypeCategory:
		return p.category(ctx, id)
	default:
		return notFound("Page", path)
	}
}

func (p *Pages) product(ctx context.Context, id string) string {
	product, err := p.source.Product(ctx, id)
	if err != nil {
		return p.failure("Product", id, err)
	}

	var b strings.Builder
	b.WriteString(product.Name + "\n")
	b.WriteString(strings.Repeat("=", len(product.Name)) + "\n\n")
	fmt.Fprintf(&b, "[%s]\n\n", product.Status.DisplayText())
	b.WriteString("Product information\n")
	fmt.Fprintf(&b, "  Product ID: %s\n", product.ID)
	fmt.Fprintf(&b, "  Name:       %s\n", product.Name)
	fmt.Fprintf(&b, "  Status:     %s\n", product.Status.DisplayText())
	return b.String()
}

func (p *Pages) category(ctx context.Context, id string) string {
	category, err := p.source.Category(ctx, id)
	if err != nil {
		return p.failure("Category", id, err)
	}

	products, err := p.source.CategoryProducts(ctx, id)
	if err != nil {
		p.log.WithError(err).WithField("category", id).Warn("Failed to load category products")
		products = nil
	}
	if len(products) > MaxCategoryProducts {
		products = products[:MaxCategoryProducts]
	}

	var b strings.Builder
	b.WriteString(category.Name + "\n")
	b.WriteString(strings.Repeat("=", len(category.Name)) + "\n\n")
	fmt.Fprintf(&b, "[%s] [%d products]\n\n", category.Status.DisplayText(), category.ProductCount)
	b.WriteString("Category information\n")
	fmt.Fprintf(&b, "  Category ID: %s\n", category.ID)
	fmt.Fprintf(&b, "  Name:        %s\n", category.Name)
	fmt.Fprintf(&b, "  Status:      %s\n", category.Status.DisplayText())
	fmt.Fprintf(&b, "  Products:    %d\n\n", category.ProductCount)

	b.WriteString("Products in this category\n")
	if len(products) == 0 {
		b.WriteString("  No products are registered in this category.\n")
		return b.String()
	}
	for _, product := range products {
		fmt.Fprintf(&b, "  - %s [%s]  %s\n", product.Name, product.Status.DisplayText(), Path(domain.TypeProduct, product.ID))
	}
	return b.String()
}

func (p *Pages) failure(kind, id string, err error) string {
	if errors.Is(err, provider.ErrNotFound) {
		return notFound(kind, id)
	}
	p.log.WithError(err).WithField("id", id).Warnf("Failed to load %s", strings.ToLower(kind))
	return fmt.Sprintf("%s could not be loaded\n\n%s %s is unavailable right now. Try again later.\n", kind, kind, id)
}

func notFound(kind, id string) string {
	return fmt.Sprintf("%s not found\n\nThe requested %s %q does not exist or was deleted.\n",
		kind, strings.ToLower(kind), id)
}

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"adminsearch/internal/domain"
	"adminsearch/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:8080/api/v1"
	DefaultTimeout = 5 * time.Second
)

// RemoteOptions configures the HTTP adapter
type RemoteOptions struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
	Client   *http.Client // optional, mostly for tests
}

// Remote talks to the catalog HTTP API
type Remote struct {
	baseURL  string
	pageSize int
	client   *http.Client
	log      *logrus.Entry
}

// NewRemote creates the HTTP adapter, filling defaults for zero options
func NewRemote(opts RemoteOptions) *Remote {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Remote{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		pageSize: opts.PageSize,
		client:   client,
		log:      logging.NewLogger("remote"),
	}
}

// Wire format of the catalog API
type apiProduct struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type apiCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	ProductCount int    `json:"productCount"`
}

type apiSearchResponse struct {
	ProductInfo struct {
		Products []apiProduct `json:"products"`
		Total    int          `json:"total"`
	} `json:"productInfo"`
	CategoryInfo struct {
		Categories []apiCategory `json:"categories"`
		Total      int           `json:"total"`
	} `json:"categoryInfo"`
}

func (p apiProduct) product() domain.Product {
	return domain.Product{ID: p.ID, Name: p.Name, Status: domain.ParseStatus(p.Status)}
}

func (c apiCategory) category() domain.Category {
	return domain.Category{
		ID:           c.ID,
		Name:         c.Name,
		Status:       domain.ParseStatus(c.Status),
		ProductCount: c.ProductCount,
	}
}

// Name identifies the provider
func (r *Remote) Name() string { return "remote" }

// Search queries the autocomplete endpoint. Failures are logged and turned
// into the empty response so the search bar never sees an error.
func (r *Remote) Search(ctx context.Context, query string) (domain.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.EmptyResponse(), nil
	}

	var body apiSearchResponse
	path := "/products/autocomplete?query=" + url.QueryEscape(query)
	if err := r.get(ctx, path, &body); err != nil {
		if ctx.Err() != nil {
			return domain.EmptyResponse(), nil
		}
		r.log.WithError(err).WithField("query", query).Warn("Autocomplete request failed")
		return domain.EmptyResponse(), nil
	}

	products := make([]domain.Item, 0, len(body.ProductInfo.Products))
	for _, p := range body.ProductInfo.Products {
		products = append(products, p.product().Item())
	}
	categories := make([]domain.Item, 0, len(body.CategoryInfo.Categories))
	for _, c := range body.CategoryInfo.Categories {
		categories = append(categories, c.category().Item())
	}

	return domain.SearchResponse{
		domain.SectionProducts: {
			Items: capItems(products, r.pageSize),
			Total: body.ProductInfo.Total,
		},
		domain.SectionCategories: {
			Items: capItems(categories, r.pageSize),
			Total: body.CategoryInfo.Total,
		},
	}, nil
}

// IsAvailable runs the health check
func (r *Remote) IsAvailable(ctx context.Context) bool {
	if err := r.get(ctx, "/health", nil); err != nil {
		r.log.WithError(err).Info("Catalog API unavailable")
		return false
	}
	return true
}

// Product fetches one product
func (r *Remote) Product(ctx context.Context, id string) (domain.Product, error) {
	var p apiProduct
	if err := r.get(ctx, "/products/"+url.PathEscape(id), &p); err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, err)
	}
	return p.product(), nil
}

// Category fetches one category
func (r *Remote) Category(ctx context.Context, id string) (domain.Category, error) {
	var c apiCategory
	if err := r.get(ctx, "/categories/"+url.PathEscape(id), &c); err != nil {
		return domain.Category{}, fmt.Errorf("category %s: %w", id, err)
	}
	return c.category(), nil
}

// CategoryProducts lists the products of a category
func (r *Remote) CategoryProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var list []apiProduct
	if err := r.get(ctx, "/categories/"+url.PathEscape(categoryID)+"/products", &list); err != nil {
		return nil, fmt.Errorf("category %s products: %w", categoryID, err)
	}
	products := make([]domain.Product, 0, len(list))
	for _, p := range list {
		products = append(products, p.product())
	}
	return products, nil
}

// get issues a GET and decodes the JSON body into out when out is non-nil.
// A 404 maps to ErrNotFound.
func (r *Remote) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	r.log.WithFields(logrus.Fields{
		"path":       path,
		"status":     resp.StatusCode,
		"request_id": requestID,
		"took":       time.Since(start),
	}).Debug("Catalog API request")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

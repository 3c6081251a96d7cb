package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminsearch/internal/domain"
)

func catalogAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/products/autocomplete", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"), "every request carries a request id")

		var body apiSearchResponse
		for i := 1; i <= 7; i++ {
			body.ProductInfo.Products = append(body.ProductInfo.Products, apiProduct{
				ID: fmt.Sprint(i), Name: r.URL.Query().Get("query") + fmt.Sprint(i), Status: "active",
			})
		}
		body.ProductInfo.Total = 42
		body.CategoryInfo.Categories = []apiCategory{{ID: "cat1", Name: "Electronics", Status: "ACTIVE", ProductCount: 25}}
		body.CategoryInfo.Total = 1
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("/api/v1/products/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(apiProduct{ID: "1", Name: "iPhone 15 Pro", Status: "active"})
	})
	mux.HandleFunc("/api/v1/categories/cat1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(apiCategory{ID: "cat1", Name: "Electronics", Status: "active", ProductCount: 25})
	})
	mux.HandleFunc("/api/v1/categories/cat1/products", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]apiProduct{{ID: "1", Name: "iPhone 15 Pro", Status: "active"}})
	})
	mux.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteSearchCapsItemsAndKeepsTotals(t *testing.T) {
	srv := catalogAPI(t)
	r := NewRemote(RemoteOptions{BaseURL: srv.URL + "/api/v1/"})

	resp, err := r.Search(context.Background(), "  phone ")
	require.NoError(t, err)

	products := resp[domain.SectionProducts]
	require.Len(t, products.Items, DefaultPageSize)
	require.Equal(t, 42, products.Total, "total is the server-reported count")
	require.Equal(t, "phone1", products.Items[0].Name, "query is trimmed before sending")
	require.Equal(t, domain.TypeProduct, products.Items[0].Type)

	categories := resp[domain.SectionCategories]
	require.Len(t, categories.Items, 1)
	require.Equal(t, domain.StatusActive, categories.Items[0].Status)
	n, ok := categories.Items[0].MetaInt("productCount")
	require.True(t, ok)
	require.Equal(t, 25, n)
}

func TestRemoteSearchBlankQuerySkipsRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	resp, err := NewRemote(RemoteOptions{BaseURL: srv.URL}).Search(context.Background(), "   ")
	require.NoError(t, err)
	require.Equal(t, domain.EmptyResponse(), resp)
	require.Zero(t, hits.Load())
}

func TestRemoteSearchFailuresBecomeEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}},
		{"timeout", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			r := NewRemote(RemoteOptions{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
			resp, err := r.Search(context.Background(), "phone")
			require.NoError(t, err)
			require.Equal(t, domain.EmptyResponse(), resp)
		})
	}
}

func TestRemoteSearchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	r := NewRemote(RemoteOptions{BaseURL: url})
	resp, err := r.Search(context.Background(), "phone")
	require.NoError(t, err)
	require.Zero(t, resp.Count())
	require.False(t, r.IsAvailable(context.Background()))
}

func TestRemoteDetails(t *testing.T) {
	srv := catalogAPI(t)
	r := NewRemote(RemoteOptions{BaseURL: srv.URL + "/api/v1"})
	ctx := context.Background()

	require.True(t, r.IsAvailable(ctx))

	p, err := r.Product(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "iPhone 15 Pro", p.Name)

	c, err := r.Category(ctx, "cat1")
	require.NoError(t, err)
	require.Equal(t, 25, c.ProductCount)

	products, err := r.CategoryProducts(ctx, "cat1")
	require.NoError(t, err)
	require.Len(t, products, 1)

	_, err = r.Product(ctx, "missing")
	require.True(t, errors.Is(err, ErrNotFound))
}

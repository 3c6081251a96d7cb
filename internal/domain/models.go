package domain

import (
	"fmt"
	"strconv"
)

// Well-known section keys returned by the catalog search
const (
	SectionProducts   = "products"
	SectionCategories = "categories"
)

// Well-known item types
const (
	TypeProduct  = "product"
	TypeCategory = "category"
)

// Item is one matchable entity surfaced by a section
type Item struct {
	ID       string
	Name     string
	Type     string         // open-ended: "product", "category", "event", "user", ...
	Status   Status         // empty for types without a status concept
	Metadata map[string]any // auxiliary display fields, no required keys
}

// MetaString returns a metadata value formatted as a string, or "" if absent
func (i Item) MetaString(key string) string {
	v, ok := i.Metadata[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// MetaInt returns a metadata value as an int. ok is false when the key is
// missing or holds something that is not a number.
func (i Item) MetaInt(key string) (int, bool) {
	switch v := i.Metadata[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

// Product is a catalog product
type Product struct {
	ID     string
	Name   string
	Status Status
}

// Item converts the product into a generic search item
func (p Product) Item() Item {
	return Item{
		ID:       p.ID,
		Name:     p.Name,
		Type:     TypeProduct,
		Status:   p.Status,
		Metadata: map[string]any{},
	}
}

// Category is a catalog category
type Category struct {
	ID           string
	Name         string
	Status       Status
	ProductCount int
}

// Item converts the category into a generic search item
func (c Category) Item() Item {
	return Item{
		ID:       c.ID,
		Name:     c.Name,
		Type:     TypeCategory,
		Status:   c.Status,
		Metadata: map[string]any{"productCount": c.ProductCount},
	}
}

// Group is one section's worth of provider output
type Group struct {
	Items []Item
	Total int // server-reported total, may exceed len(Items)
}

// SearchResponse is a provider result keyed by section key
type SearchResponse map[string]Group

// EmptyResponse returns the all-empty response used whenever a provider fails
func EmptyResponse() SearchResponse {
	return SearchResponse{
		SectionProducts:   {Items: []Item{}, Total: 0},
		SectionCategories: {Items: []Item{}, Total: 0},
	}
}

// Count returns the number of items across all groups
func (r SearchResponse) Count() int {
	n := 0
	for _, g := range r {
		n += len(g.Items)
	}
	return n
}

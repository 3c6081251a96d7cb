package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminsearch/internal/domain"
	"adminsearch/internal/search"
)

func options() []search.Option {
	return []search.Option{
		{Value: search.HeaderValue("products"), Label: "Products"},
		{Value: search.ItemValue("product", "1"), Label: "iPhone 15 Pro"},
		{Value: search.ItemValue("product", "4"), Label: "iPad Air"},
	}
}

func TestRenderResults(t *testing.T) {
	r := NewRenderer(nil)
	out := r.Render(ViewState{
		Width:    100,
		Height:   30,
		Provider: "local",
		Input:    "> iph",
		Query:    "iph",
		HasInput: true,
		Options:  options(),
		Cursor:   2,
	})

	assert.Contains(t, out, "adminsearch")
	assert.Contains(t, out, "[local]")
	assert.Contains(t, out, "Products")
	assert.Contains(t, out, "> iPad Air")
	assert.Contains(t, out, "  iPhone 15 Pro")
}

func TestRenderNotices(t *testing.T) {
	r := NewRenderer(nil)

	out := r.Render(ViewState{Misconfigured: true})
	assert.Contains(t, out, MisconfiguredText)

	out = r.Render(ViewState{HasInput: true, Loading: true, Spinner: "*"})
	assert.Contains(t, out, "Searching...")

	out = r.Render(ViewState{HasInput: true, Query: "zzz"})
	assert.Contains(t, out, `No results for "zzz"`)

	out = r.Render(ViewState{HasInput: false, Query: "zzz", Options: options()})
	assert.NotContains(t, out, "iPhone", "dropdown hidden without input")
}

func TestRenderStatusLine(t *testing.T) {
	r := NewRenderer(nil)
	out := r.Render(ViewState{StatusMessage: "Failed to open /products/9", StatusIsError: true})
	assert.Contains(t, out, "Failed to open /products/9")
}

func TestVisibleWindowFollowsCursor(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = string(rune('a' + i))
	}

	assert.Equal(t, lines, visibleWindow(lines, 0, 30))

	win := visibleWindow(lines, 0, 5)
	require.Len(t, win, 5)
	assert.Equal(t, "a", win[0])

	win = visibleWindow(lines, 19, 5)
	assert.Equal(t, "t", win[len(win)-1])

	win = visibleWindow(lines, 10, 5)
	assert.Contains(t, win, "k")
}

func TestRenderItem(t *testing.T) {
	s := NewStyles()

	product := RenderItem(s, domain.Product{Name: "iPad Air", Status: domain.StatusInactive}.Item())
	assert.Contains(t, product, "iPad Air")
	assert.Contains(t, product, "[Inactive]")

	category := RenderItem(s, domain.Category{Name: "Audio", Status: domain.StatusActive, ProductCount: 6}.Item())
	assert.Contains(t, category, "(6 products)")
}

func TestSearchRenderersHeaders(t *testing.T) {
	r := SearchRenderers(NewStyles())
	section := search.Section{Key: "products", Title: "Products", Color: "33"}

	first := r.Header(section, true)
	later := r.Header(section, false)
	assert.Contains(t, first, "Products")
	assert.False(t, strings.HasPrefix(first, "\n"))
	assert.True(t, strings.HasPrefix(later, "\n"))

	assert.Contains(t, r.Header(search.Section{Key: "events"}, true), "events")
}

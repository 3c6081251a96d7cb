package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type call struct {
	origin, id, typ string
}

func recordingSections(calls *[]call) []Section {
	rec := func(origin string) SelectFunc {
		return func(id, typ string) { *calls = append(*calls, call{origin, id, typ}) }
	}
	return []Section{
		{Key: "products", ItemType: "product", OnSelect: rec("products")},
		{Key: "categories", ItemType: "category", OnSelect: rec("categories")},
		{Key: "featured", ItemType: "product", OnSelect: rec("featured")},
	}
}

func TestSelectInvokesGlobalThenFirstSection(t *testing.T) {
	var calls []call
	d := NewDispatcher(recordingSections(&calls), func(id, typ string) {
		calls = append(calls, call{"global", id, typ})
	})

	n := d.SelectString("product-42")
	require.Equal(t, 2, n)
	require.Equal(t, []call{
		{"global", "42", "product"},
		{"products", "42", "product"},
	}, calls, "only the first section sharing the type is notified")
}

func TestSelectHeaderIsInert(t *testing.T) {
	var calls []call
	d := NewDispatcher(recordingSections(&calls), func(id, typ string) {
		calls = append(calls, call{"global", id, typ})
	})

	require.Zero(t, d.SelectString("products-header"))
	require.Zero(t, d.Select(HeaderValue("categories")))
	require.Empty(t, calls)
}

func TestSelectMalformedIsNoop(t *testing.T) {
	var calls []call
	d := NewDispatcher(recordingSections(&calls), func(id, typ string) {
		calls = append(calls, call{"global", id, typ})
	})

	require.Zero(t, d.SelectString("garbage"))
	require.Zero(t, d.SelectString(""))
	require.Empty(t, calls)
}

func TestSelectUnknownTypeOnlyGlobal(t *testing.T) {
	var calls []call
	d := NewDispatcher(recordingSections(&calls), func(id, typ string) {
		calls = append(calls, call{"global", id, typ})
	})

	require.Equal(t, 1, d.SelectString("user-7"))
	require.Equal(t, []call{{"global", "7", "user"}}, calls)
}

func TestSelectIdContainingSeparator(t *testing.T) {
	var calls []call
	d := NewDispatcher(recordingSections(&calls), nil)

	d.Select(ItemValue("category", "cat-1"))
	require.Equal(t, []call{{"categories", "cat-1", "category"}}, calls)
}

func TestSelectIdEndingInHeader(t *testing.T) {
	var calls []call
	d := NewDispatcher(recordingSections(&calls), nil)

	require.Equal(t, 1, d.SelectString(ItemValue("product", "x-header").String()))
	require.Equal(t, 1, d.SelectString(ItemValue("product", "header").String()))
	require.Equal(t, []call{
		{"products", "x-header", "product"},
		{"products", "header", "product"},
	}, calls)
}

func TestSelectRecoversPanics(t *testing.T) {
	var calls []call
	sections := []Section{{
		Key:      "products",
		ItemType: "product",
		OnSelect: func(id, typ string) { calls = append(calls, call{"products", id, typ}) },
	}}
	d := NewDispatcher(sections, func(string, string) { panic("boom") })

	require.NotPanics(t, func() {
		require.Equal(t, 2, d.SelectString("product-1"))
	})
	require.Equal(t, []call{{"products", "1", "product"}}, calls, "section callback still runs")
}

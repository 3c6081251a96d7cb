package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionValueWireForm(t *testing.T) {
	require.Equal(t, "product-42", ItemValue("product", "42").String())
	require.Equal(t, "products-header", HeaderValue("products").String())

	// Separators inside the type are escaped, ids are left alone
	v := ItemValue("gift-card", "a-b")
	require.Equal(t, `gift\-card-a-b`, v.String())

	parsed, ok := ParseOptionValue(v.String())
	require.True(t, ok)
	require.Equal(t, v, parsed, "escaped type should survive a round trip")
}

func TestItemIDsNeverDecodeAsHeaders(t *testing.T) {
	values := []OptionValue{
		ItemValue("product", "header"),
		ItemValue("product", "x-header"),
		ItemValue("product", "subheader"),
		ItemValue("product", `a\header`),
		ItemValue("product", `trailing\`),
		ItemValue("gift-card", "cat-1"),
	}

	for _, v := range values {
		t.Run(v.ItemID, func(t *testing.T) {
			encoded := v.String()
			require.False(t, strings.HasSuffix(encoded, headerSuffix))

			parsed, ok := ParseOptionValue(encoded)
			require.True(t, ok)
			require.Equal(t, v, parsed)
		})
	}

	require.Equal(t, `product-x-\header`, ItemValue("product", "x-header").String())
	require.Equal(t, "product-x-headers", ItemValue("product", "x-headers").String())
}

func TestParseOptionValue(t *testing.T) {
	tests := []struct {
		in   string
		want OptionValue
		ok   bool
	}{
		{"product-42", ItemValue("product", "42"), true},
		{"category-cat1", ItemValue("category", "cat1"), true},
		{"products-header", HeaderValue("products"), true},
		{"user-id-with-dashes", ItemValue("user", "id-with-dashes"), true},
		{`back\\slash-7`, ItemValue(`back\slash`, "7"), true},
		{`product-\header`, ItemValue("product", "header"), true},
		{`product-x-\header`, ItemValue("product", "x-header"), true},
		{"gift-cards-header", HeaderValue("gift-cards"), true},
		{"-header", OptionValue{}, false},
		{"noseparator", OptionValue{}, false},
		{"-42", OptionValue{}, false},
		{"product-", OptionValue{}, false},
		{"", OptionValue{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOptionValue(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOptionSelectable(t *testing.T) {
	require.False(t, Option{Value: HeaderValue("products")}.Selectable())
	require.True(t, Option{Value: ItemValue("product", "1")}.Selectable())
}

package search

import (
	"fmt"
	"sort"
	"strings"

	"adminsearch/internal/domain"
)

// HeaderRenderer renders a section header. first is true for the first
// section that produced output, which is drawn without top spacing.
type HeaderRenderer func(section Section, first bool) string

// Renderers holds the default rendering strategies used by the composer
type Renderers struct {
	Header HeaderRenderer
	Item   ItemRenderer
}

// PlainRenderers renders without styling, for headless output and tests
func PlainRenderers() Renderers {
	return Renderers{
		Header: func(s Section, first bool) string {
			title := s.Title
			if title == "" {
				title = s.Key
			}
			if first {
				return title
			}
			return "\n" + title
		},
		Item: PlainItem,
	}
}

// PlainItem renders "name [Status]", or "name (N products)" when the item
// carries a product count
func PlainItem(item Item) string {
	if n, ok := item.MetaInt("productCount"); ok {
		return fmt.Sprintf("%s (%d products)", item.Name, n)
	}
	return fmt.Sprintf("%s [%s]", item.Name, item.Status.DisplayText())
}

// Composer turns provider output and section configuration into the flat
// option list
type Composer struct {
	renderers Renderers
}

// NewComposer creates a composer. Missing renderers fall back to the plain ones.
func NewComposer(r Renderers) *Composer {
	plain := PlainRenderers()
	if r.Header == nil {
		r.Header = plain.Header
	}
	if r.Item == nil {
		r.Item = plain.Item
	}
	return &Composer{renderers: r}
}

// Compose builds the option list. Sections are visited in configuration
// order; a section with no candidates contributes nothing. Candidate order
// is preserved as given by the provider or filter.
func (c *Composer) Compose(sections []Section, query string, resp domain.SearchResponse) []Option {
	options := []Option{}
	first := true

	for _, section := range sections {
		items := c.candidates(section, query, resp)
		if len(items) == 0 {
			continue
		}

		options = append(options, Option{
			Value: HeaderValue(section.Key),
			Label: c.renderers.Header(section, first),
		})
		first = false

		render := section.Render
		if render == nil {
			render = c.renderers.Item
		}
		for i := range items {
			item := items[i]
			itemType := item.Type
			if itemType == "" {
				itemType = section.ItemType
				item.Type = itemType
			}
			options = append(options, Option{
				Value: ItemValue(itemType, item.ID),
				Label: render(item),
				Item:  &item,
			})
		}
	}

	return options
}

// candidates returns the section's items for this query
func (c *Composer) candidates(section Section, query string, resp domain.SearchResponse) []Item {
	if section.Static() {
		return FilterItems(section.Items, query)
	}
	if group, ok := resp[section.Key]; ok {
		return group.Items
	}
	if section.ItemType == "" {
		return nil
	}

	// Provider used different group keys; attribute by item type instead.
	// Map iteration is unordered, so walk the well-known keys first.
	var items []Item
	for _, key := range orderedKeys(resp) {
		for _, item := range resp[key].Items {
			if item.Type == section.ItemType {
				items = append(items, item)
			}
		}
	}
	return items
}

// FilterItems is the local filter: case-insensitive substring match on the
// item name, keeping input order
func FilterItems(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
		}
	}
	return out
}

func orderedKeys(resp domain.SearchResponse) []string {
	keys := make([]string, 0, len(resp))
	for _, k := range []string{domain.SectionProducts, domain.SectionCategories} {
		if _, ok := resp[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range resp {
		if k != domain.SectionProducts && k != domain.SectionCategories {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

package search

import (
	"errors"
	"fmt"

	"adminsearch/internal/domain"
)

// Item is re-exported so integrators only need this package
type Item = domain.Item

// ErrNoSections is reported when the surface is configured without sections
var ErrNoSections = errors.New("no sections provided")

// ItemRenderer renders one item row of a section
type ItemRenderer func(item Item) string

// SelectFunc is invoked with the id and type of an activated item
type SelectFunc func(itemID, itemType string)

// Section declares one searchable category. Sections are immutable once
// handed to a Controller; reconfigure by replacing the whole set.
type Section struct {
	Key      string // unique, correlates provider output with the section
	Title    string
	Color    string
	ItemType string // Item.Type owned by this section

	// Items, when non-nil, makes the section self-contained: it is filtered
	// locally and never needs a provider.
	Items []Item

	Render   ItemRenderer // nil uses the default name + status rendering
	OnSelect SelectFunc   // optional section-scoped callback
}

// Static reports whether the section filters its own item list
func (s Section) Static() bool {
	return s.Items != nil
}

// ValidateSections checks a configuration set. Duplicate or empty keys are
// errors. Shared item types are returned as warnings since selection
// resolves to the first matching section.
func ValidateSections(sections []Section) (warnings []string, err error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	keys := make(map[string]bool, len(sections))
	types := make(map[string]string, len(sections))
	for i, s := range sections {
		if s.Key == "" {
			return warnings, fmt.Errorf("section %d: empty key", i)
		}
		if keys[s.Key] {
			return warnings, fmt.Errorf("section %q: duplicate key", s.Key)
		}
		keys[s.Key] = true

		if s.ItemType == "" {
			continue
		}
		if first, ok := types[s.ItemType]; ok {
			warnings = append(warnings, fmt.Sprintf(
				"sections %q and %q share item type %q; selection goes to %q",
				first, s.Key, s.ItemType, first))
			continue
		}
		types[s.ItemType] = s.Key
	}
	return warnings, nil
}

// needsProvider reports whether any section depends on provider output
func needsProvider(sections []Section) bool {
	for _, s := range sections {
		if !s.Static() {
			return true
		}
	}
	return false
}

package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSections(t *testing.T) {
	_, err := ValidateSections(nil)
	require.True(t, errors.Is(err, ErrNoSections))

	warnings, err := ValidateSections(catalogSections())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	_, err = ValidateSections([]Section{{Key: "a"}, {Key: "a"}})
	require.Error(t, err)

	_, err = ValidateSections([]Section{{Key: ""}})
	require.Error(t, err)
}

func TestValidateSectionsWarnsOnSharedItemType(t *testing.T) {
	warnings, err := ValidateSections([]Section{
		{Key: "products", ItemType: "product"},
		{Key: "featured", ItemType: "product"},
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `selection goes to "products"`)
}

func TestStaticSections(t *testing.T) {
	assert.False(t, Section{Key: "p"}.Static())
	assert.True(t, Section{Key: "s", Items: []Item{}}.Static())

	assert.False(t, needsProvider([]Section{{Key: "s", Items: []Item{}}}))
	assert.True(t, needsProvider([]Section{{Key: "s", Items: []Item{}}, {Key: "p"}}))
}

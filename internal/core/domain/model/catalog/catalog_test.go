package catalog_test

import (
	"testing"

	"verdant/internal/core/domain/model/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Integrity(t *testing.T) {
	c := catalog.Seed()

	require.NotEmpty(t, c.Products)
	require.NotEmpty(t, c.Categories)
	require.NotEmpty(t, c.Dispensaries)

	seenIDs := make(map[int]bool)
	for _, p := range c.Products {
		assert.False(t, seenIDs[p.ID], "duplicate product id %d", p.ID)
		seenIDs[p.ID] = true

		assert.Positive(t, p.Price.Cents(), "product %d has no price", p.ID)

		_, ok := c.CategoryByID(p.CategoryID)
		assert.True(t, ok, "product %d references unknown category %q", p.ID, p.CategoryID)

		_, ok = c.DispensaryByID(p.DispensaryID)
		assert.True(t, ok, "product %d references unknown dispensary %q", p.ID, p.DispensaryID)
	}
}

func TestCatalog_ProductByID(t *testing.T) {
	c := catalog.Seed()

	p, ok := c.ProductByID(5)
	require.True(t, ok)
	assert.Equal(t, "Midnight Berry Gummies 100mg", p.Name)

	_, ok = c.ProductByID(999)
	assert.False(t, ok)
}

func TestCatalog_DispensaryByID(t *testing.T) {
	c := catalog.Seed()

	d, ok := c.DispensaryByID("disp-emerald")
	require.True(t, ok)
	assert.Equal(t, "Emerald Coast Collective", d.Name)

	_, ok = c.DispensaryByID("disp-missing")
	assert.False(t, ok)
}

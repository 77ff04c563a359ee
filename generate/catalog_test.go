// ABOUTME: Tests for product catalog generation
// ABOUTME: Verifies taxonomy membership, unique ids, and the start date window
package generate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/salesgen/models"
)

func testTaxonomy() models.Taxonomy {
	return models.Taxonomy{
		"apparel": {"footwear", "outerwear"},
		"grocery": {"beverages", "snacks", "produce"},
	}
}

func TestGenerateCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	taxonomy := testTaxonomy()
	today := models.NewDate(2026, time.August, 31)

	catalog, err := GenerateCatalog(rng, CatalogConfig{
		NumProducts: 50,
		Years:       4,
		Taxonomy:    taxonomy,
		Today:       today,
	})
	require.NoError(t, err)
	require.Len(t, catalog, 50)

	earliest := today.AddDays(-4 * 365)
	latest := today.AddDays(-(4 * 365) / 2)

	seen := make(map[uuid.UUID]bool)
	for _, p := range catalog {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true

		subs, ok := taxonomy[p.Category]
		require.True(t, ok, "category %q not in taxonomy", p.Category)
		assert.Contains(t, subs, p.Subcategory)

		assert.False(t, p.StartDate.Before(earliest.Time),
			"start date %s before window start %s", p.StartDate, earliest)
		assert.False(t, p.StartDate.After(latest.Time),
			"start date %s after window end %s", p.StartDate, latest)
	}
}

func TestGenerateCatalogRejectsBadConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	today := models.Today()

	_, err := GenerateCatalog(rng, CatalogConfig{NumProducts: 0, Years: 3, Taxonomy: testTaxonomy(), Today: today})
	assert.Error(t, err)

	_, err = GenerateCatalog(rng, CatalogConfig{NumProducts: -5, Years: 3, Taxonomy: testTaxonomy(), Today: today})
	assert.Error(t, err)

	_, err = GenerateCatalog(rng, CatalogConfig{NumProducts: 5, Years: 0, Taxonomy: testTaxonomy(), Today: today})
	assert.Error(t, err)

	_, err = GenerateCatalog(rng, CatalogConfig{NumProducts: 5, Years: 3, Taxonomy: models.Taxonomy{}, Today: today})
	assert.Error(t, err)

	_, err = GenerateCatalog(rng, CatalogConfig{NumProducts: 5, Years: 3, Taxonomy: testTaxonomy()})
	assert.Error(t, err)
}

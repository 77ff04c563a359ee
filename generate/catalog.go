// ABOUTME: Synthetic product catalog generation
// ABOUTME: Assigns each product a uuid, a taxonomy pair, and a random launch date
package generate

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/harperreed/salesgen/models"
)

// CatalogConfig controls product catalog synthesis.
type CatalogConfig struct {
	NumProducts int
	Years       int
	Taxonomy    models.Taxonomy
	Today       models.Date
}

func (c CatalogConfig) validate() error {
	if c.NumProducts <= 0 {
		return fmt.Errorf("num products must be positive, got %d", c.NumProducts)
	}
	if c.Years <= 0 {
		return fmt.Errorf("years must be positive, got %d", c.Years)
	}
	if err := c.Taxonomy.Validate(); err != nil {
		return fmt.Errorf("invalid taxonomy: %w", err)
	}
	if c.Today.IsZero() {
		return fmt.Errorf("today is unset")
	}
	return nil
}

// GenerateCatalog produces cfg.NumProducts synthetic products. Each gets a
// uniformly random (category, subcategory) pair and a start date uniform in
// [today - years*365d, today - (years/2)*365d], so every product has been
// live for at least half the history window.
func GenerateCatalog(rng *rand.Rand, cfg CatalogConfig) ([]models.Product, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	categories := cfg.Taxonomy.Categories()
	maxAge := cfg.Years * 365
	minAge := maxAge / 2

	products := make([]models.Product, 0, cfg.NumProducts)
	for i := 0; i < cfg.NumProducts; i++ {
		category := categories[rng.Intn(len(categories))]
		subs := cfg.Taxonomy[category]
		sub := subs[rng.Intn(len(subs))]

		age := minAge + rng.Intn(maxAge-minAge+1)
		products = append(products, models.Product{
			ID:          uuid.New(),
			Category:    category,
			Subcategory: sub,
			StartDate:   cfg.Today.AddDays(-age),
		})
	}
	return products, nil
}

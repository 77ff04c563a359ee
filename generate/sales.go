// ABOUTME: Daily sales series synthesis per product
// ABOUTME: Combines seasonality baseline, category weights, and Gaussian noise
package generate

import (
	"fmt"
	"math/rand"

	"github.com/harperreed/salesgen/models"
)

// noiseScale is the standard deviation of the multiplicative Gaussian noise.
const noiseScale = 0.1

// SalesGenerator produces one SalesRecord per product per day.
type SalesGenerator struct {
	seasonality models.Seasonality
	weights     *Weights
	rng         *rand.Rand
	today       models.Date
}

// NewSalesGenerator validates inputs and returns a generator bound to its
// seasonality curve and weight tables.
func NewSalesGenerator(rng *rand.Rand, seasonality models.Seasonality, weights *Weights, today models.Date) (*SalesGenerator, error) {
	if err := seasonality.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seasonality: %w", err)
	}
	if weights == nil || weights.Category == nil || weights.Subcategory == nil {
		return nil, fmt.Errorf("weights are unset")
	}
	if today.IsZero() {
		return nil, fmt.Errorf("today is unset")
	}
	return &SalesGenerator{
		seasonality: seasonality,
		weights:     weights,
		rng:         rng,
		today:       today,
	}, nil
}

// Series generates the daily sales rows for one product, from its start date
// through today inclusive. Values are truncated toward zero and deliberately
// NOT clamped: strong negative noise on a small baseline can produce negative
// sales, a quirk of the original synthesis kept intact.
func (g *SalesGenerator) Series(p models.Product) ([]models.SalesRecord, error) {
	if p.StartDate.After(g.today.Time) {
		return nil, fmt.Errorf("product %s starts after today (%s > %s)", p.ID, p.StartDate, g.today)
	}

	days := p.StartDate.DaysUntil(g.today) + 1
	records := make([]models.SalesRecord, 0, days)

	for d := p.StartDate; !d.After(g.today.Time); d = d.AddDays(1) {
		baseline, ok := g.seasonality[d.Month()]
		if !ok {
			return nil, fmt.Errorf("no seasonality baseline for %s", d.Month())
		}
		catW, err := g.weights.Category.Weight(p.Category, d.Year(), d.Month())
		if err != nil {
			return nil, fmt.Errorf("category weight: %w", err)
		}
		subW, err := g.weights.Subcategory.Weight(p.Subcategory, d.Year(), d.Month())
		if err != nil {
			return nil, fmt.Errorf("subcategory weight: %w", err)
		}

		noise := g.rng.NormFloat64() * noiseScale
		value := int64((baseline + noise*baseline) * catW * subW)

		records = append(records, models.SalesRecord{
			ProductID:   p.ID,
			Date:        d,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Sales:       value,
		})
	}
	return records, nil
}

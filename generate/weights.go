// ABOUTME: Per-group monthly weight synthesis for categories and subcategories
// ABOUTME: Normalizes random draws so each (year, month) slice sums to 1.0
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/harperreed/salesgen/models"
)

// ErrWeightNotFound means a lookup fell outside the synthesized group/year range.
var ErrWeightNotFound = errors.New("weight not found")

type weightKey struct {
	Group string
	Year  int
	Month time.Month
}

// WeightTable holds normalized weights keyed by (group, year, month).
// Immutable once synthesized.
type WeightTable struct {
	weights map[weightKey]float64
}

// SynthesizeWeights draws one non-negative value per group for every
// (year, month) in [yearFrom, yearTo] and normalizes each slice so the
// weights across groups sum to 1.0.
func SynthesizeWeights(rng *rand.Rand, groups []string, yearFrom, yearTo int) (*WeightTable, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups to synthesize weights for")
	}
	if yearFrom > yearTo {
		return nil, fmt.Errorf("invalid year range [%d, %d]", yearFrom, yearTo)
	}

	table := &WeightTable{weights: make(map[weightKey]float64)}
	draws := make([]float64, len(groups))

	for year := yearFrom; year <= yearTo; year++ {
		for month := time.January; month <= time.December; month++ {
			var total float64
			for i := range groups {
				draws[i] = rng.Float64()
				total += draws[i]
			}
			// A zero total would need every draw to be exactly 0.0;
			// normalize defensively anyway by spreading evenly.
			for i, group := range groups {
				w := 1.0 / float64(len(groups))
				if total > 0 {
					w = draws[i] / total
				}
				table.weights[weightKey{group, year, month}] = w
			}
		}
	}
	return table, nil
}

// Weight looks up the normalized weight for a group at (year, month).
func (t *WeightTable) Weight(group string, year int, month time.Month) (float64, error) {
	w, ok := t.weights[weightKey{group, year, month}]
	if !ok {
		return 0, fmt.Errorf("%w: group %q at %d-%02d", ErrWeightNotFound, group, year, int(month))
	}
	return w, nil
}

// merge folds another table into this one. Group names must not collide.
func (t *WeightTable) merge(other *WeightTable) {
	for k, v := range other.weights {
		t.weights[k] = v
	}
}

// Weights is the merged two-level lookup: one table across categories and
// one across subcategories (normalized among siblings of the same category).
type Weights struct {
	Category    *WeightTable
	Subcategory *WeightTable
}

// SynthesizeAll builds the full weight structure for a taxonomy over
// [yearFrom, yearTo]. Category weights are normalized across all categories;
// subcategory weights are normalized within each category and merged into a
// single subcategory table.
func SynthesizeAll(rng *rand.Rand, taxonomy models.Taxonomy, yearFrom, yearTo int) (*Weights, error) {
	if err := taxonomy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}

	categories := taxonomy.Categories()
	categoryTable, err := SynthesizeWeights(rng, categories, yearFrom, yearTo)
	if err != nil {
		return nil, err
	}

	subTable := &WeightTable{weights: make(map[weightKey]float64)}
	for _, category := range categories {
		t, err := SynthesizeWeights(rng, taxonomy[category], yearFrom, yearTo)
		if err != nil {
			return nil, fmt.Errorf("subcategories of %q: %w", category, err)
		}
		subTable.merge(t)
	}

	return &Weights{Category: categoryTable, Subcategory: subTable}, nil
}

// ABOUTME: Tests for the series transformer
// ABOUTME: Covers zero-prefix trimming, record duplication, and date aggregation
package transform

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/salesgen/models"
)

func daily(start models.Date, values ...int64) []models.DailySales {
	rows := make([]models.DailySales, len(values))
	for i, v := range values {
		rows[i] = models.DailySales{Date: start.AddDays(i), Sales: v}
	}
	return rows
}

func TestTrimSeriesDropsLeadingZeros(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	rows := daily(start, 0, 0, 0, 5, 0, 7)

	trimmedStart, target, err := TrimSeries(rows)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-04", trimmedStart.String())
	assert.Equal(t, []int64{5, 0, 7}, target)
	assert.NotZero(t, target[0])
}

func TestTrimSeriesKeepsInteriorZeros(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	_, target, err := TrimSeries(daily(start, 3, 0, 0, 4))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 0, 4}, target)
}

func TestTrimSeriesNegativeCountsAsNonZero(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	trimmedStart, target, err := TrimSeries(daily(start, 0, -2, 6))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-02", trimmedStart.String())
	assert.Equal(t, []int64{-2, 6}, target)
}

func TestTrimSeriesAllZero(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	_, _, err := TrimSeries(daily(start, 0, 0, 0))
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestProductRecordsEmitsBothGranularities(t *testing.T) {
	enc, err := FitLabels([]string{"apparel", "footwear"})
	require.NoError(t, err)

	p := models.Product{
		ID:          uuid.New(),
		Category:    "apparel",
		Subcategory: "footwear",
	}
	start := models.NewDate(2023, time.May, 1)

	recs, err := ProductRecords(p, daily(start, 0, 8, 9), enc)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Category record first, subcategory second, same trimmed target.
	assert.Equal(t, 0, recs[0].Cat) // apparel
	assert.Equal(t, 1, recs[1].Cat) // footwear
	assert.Equal(t, recs[0].Target, recs[1].Target)
	assert.Equal(t, []int64{8, 9}, recs[0].Target)
	assert.True(t, recs[0].Start.Equal(recs[1].Start.Time))

	// The two targets are independent slices.
	recs[0].Target[0] = 42
	assert.Equal(t, int64(8), recs[1].Target[0])
}

func TestProductRecordsEmptySeries(t *testing.T) {
	enc, err := FitLabels([]string{"apparel", "footwear"})
	require.NoError(t, err)

	p := models.Product{ID: uuid.New(), Category: "apparel", Subcategory: "footwear"}
	_, err = ProductRecords(p, daily(models.NewDate(2023, time.May, 1), 0, 0), enc)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestBuildDatasetAggregatesDuplicateRows(t *testing.T) {
	enc, err := FitLabels([]string{"grocery", "snacks"})
	require.NoError(t, err)

	p := models.Product{ID: uuid.New(), Category: "grocery", Subcategory: "snacks"}
	date := models.NewDate(2024, time.June, 1)

	// Same (product, date) twice: sums to 5, not two rows.
	records := []models.SalesRecord{
		{ProductID: p.ID, Date: date, Category: p.Category, Subcategory: p.Subcategory, Sales: 2},
		{ProductID: p.ID, Date: date, Category: p.Category, Subcategory: p.Subcategory, Sales: 3},
		{ProductID: p.ID, Date: date.AddDays(1), Category: p.Category, Subcategory: p.Subcategory, Sales: 4},
	}

	ds, err := BuildDataset([]models.Product{p}, records, enc)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, []int64{5, 4}, ds[0].Target)
}

func TestBuildDatasetPreservesCatalogOrder(t *testing.T) {
	enc, err := FitLabels([]string{"apparel", "footwear", "grocery", "snacks"})
	require.NoError(t, err)

	p1 := models.Product{ID: uuid.New(), Category: "grocery", Subcategory: "snacks"}
	p2 := models.Product{ID: uuid.New(), Category: "apparel", Subcategory: "footwear"}
	date := models.NewDate(2024, time.June, 1)

	records := []models.SalesRecord{
		{ProductID: p2.ID, Date: date, Sales: 9},
		{ProductID: p1.ID, Date: date, Sales: 7},
	}

	ds, err := BuildDataset([]models.Product{p1, p2}, records, enc)
	require.NoError(t, err)
	require.Len(t, ds, 4)

	// p1's pair first (category then subcategory), then p2's.
	grocery, _ := enc.Encode("grocery")
	snacks, _ := enc.Encode("snacks")
	apparel, _ := enc.Encode("apparel")
	footwear, _ := enc.Encode("footwear")

	assert.Equal(t, []int{grocery, snacks, apparel, footwear},
		[]int{ds[0].Cat, ds[1].Cat, ds[2].Cat, ds[3].Cat})
}

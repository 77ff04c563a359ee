// ABOUTME: Reshapes the long-format sales table into series records
// ABOUTME: Aggregates by date, trims leading zero runs, emits category and subcategory views
package transform

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/harperreed/salesgen/models"
)

// ErrEmptySeries means a product never recorded a non-zero sales day, so no
// series can be built from it.
var ErrEmptySeries = errors.New("series has no non-zero sales")

// TrimSeries converts a product's date-ordered daily sales into a series
// start date and target sequence, dropping the leading all-zero run. Negative
// values count as non-zero; only an exact zero prefix is removed. Rows must
// already be aggregated to one per date and sorted ascending.
func TrimSeries(rows []models.DailySales) (models.Date, []int64, error) {
	first := -1
	for i, row := range rows {
		if row.Sales != 0 {
			first = i
			break
		}
	}
	if first == -1 {
		return models.Date{}, nil, ErrEmptySeries
	}

	target := make([]int64, 0, len(rows)-first)
	for _, row := range rows[first:] {
		target = append(target, row.Sales)
	}
	return rows[first].Date, target, nil
}

// ProductRecords builds the two series records for one product: the same
// trimmed target tagged once with the encoded category and once with the
// encoded subcategory. The two records never share a target slice.
func ProductRecords(p models.Product, rows []models.DailySales, enc *LabelEncoder) ([]models.SeriesRecord, error) {
	start, target, err := TrimSeries(rows)
	if err != nil {
		return nil, fmt.Errorf("product %s (%s/%s): %w", p.ID, p.Category, p.Subcategory, err)
	}

	catCode, err := enc.Encode(p.Category)
	if err != nil {
		return nil, err
	}
	subCode, err := enc.Encode(p.Subcategory)
	if err != nil {
		return nil, err
	}

	subTarget := make([]int64, len(target))
	copy(subTarget, target)

	return []models.SeriesRecord{
		{Start: start, Cat: catCode, Target: target},
		{Start: start, Cat: subCode, Target: subTarget},
	}, nil
}

// BuildDataset reshapes the full sales table into a dataset, preserving
// catalog order. Rows for each product are summed by date first, which keeps
// the transform correct even if the table carries duplicate (product, date)
// rows.
func BuildDataset(products []models.Product, records []models.SalesRecord, enc *LabelEncoder) (models.Dataset, error) {
	byProduct := make(map[uuid.UUID]map[models.Date]int64)
	for _, r := range records {
		daily, ok := byProduct[r.ProductID]
		if !ok {
			daily = make(map[models.Date]int64)
			byProduct[r.ProductID] = daily
		}
		daily[r.Date] += r.Sales
	}

	dataset := make(models.Dataset, 0, 2*len(products))
	for _, p := range products {
		daily := byProduct[p.ID]
		rows := make([]models.DailySales, 0, len(daily))
		for date, sales := range daily {
			rows = append(rows, models.DailySales{Date: date, Sales: sales})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date.Time) })

		recs, err := ProductRecords(p, rows, enc)
		if err != nil {
			return nil, err
		}
		dataset = append(dataset, recs...)
	}
	return dataset, nil
}

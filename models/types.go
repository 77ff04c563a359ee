// ABOUTME: Core data types for the synthetic sales dataset
// ABOUTME: Defines Product, SalesRecord, SeriesRecord, and the dataset wire format
package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is one synthetic catalog entry. Immutable after generation.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	StartDate   Date      `json:"start_date"`
}

// SalesRecord is one row of the long-format sales table: one product, one day.
type SalesRecord struct {
	ProductID   uuid.UUID `json:"product_id"`
	Date        Date      `json:"date"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Sales       int64     `json:"sales"`
}

// DailySales is one date-aggregated point of a single product's sales.
type DailySales struct {
	Date  Date  `json:"date"`
	Sales int64 `json:"sales"`
}

// SeriesRecord is the wire format consumed by the forecasting service:
// a start date, an encoded categorical tag, and a daily target sequence.
// Struct order fixes the output field order: start, cat, target.
type SeriesRecord struct {
	Start  Date    `json:"start"`
	Cat    int     `json:"cat"`
	Target []int64 `json:"target"`
}

// Clone returns a deep copy; the target slice is never shared.
func (r SeriesRecord) Clone() SeriesRecord {
	target := make([]int64, len(r.Target))
	copy(target, r.Target)
	return SeriesRecord{Start: r.Start, Cat: r.Cat, Target: target}
}

// Dataset is an ordered sequence of series records, two per product
// (category-tagged record immediately followed by the subcategory one).
type Dataset []SeriesRecord

// Clone deep-copies every record.
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	for i, r := range d {
		out[i] = r.Clone()
	}
	return out
}

// Today returns the current calendar day in UTC, the upper bound of
// every generated series.
func Today() Date {
	return DateOf(time.Now().UTC())
}

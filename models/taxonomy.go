// ABOUTME: Product taxonomy and monthly seasonality configuration types
// ABOUTME: Passed explicitly into the generators, validated at construction time
package models

import (
	"fmt"
	"sort"
	"time"
)

// Taxonomy maps a category to its subcategories.
type Taxonomy map[string][]string

// Validate rejects empty taxonomies, categories without subcategories, and
// subcategory names reused across categories (codes must be unambiguous).
func (t Taxonomy) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("taxonomy is empty")
	}
	seen := make(map[string]string)
	for category, subs := range t {
		if category == "" {
			return fmt.Errorf("taxonomy has an empty category name")
		}
		if len(subs) == 0 {
			return fmt.Errorf("category %q has no subcategories", category)
		}
		for _, sub := range subs {
			if sub == "" {
				return fmt.Errorf("category %q has an empty subcategory name", category)
			}
			if owner, ok := seen[sub]; ok {
				return fmt.Errorf("subcategory %q appears under both %q and %q", sub, owner, category)
			}
			seen[sub] = category
		}
	}
	return nil
}

// Categories returns category names in sorted order.
func (t Taxonomy) Categories() []string {
	out := make([]string, 0, len(t))
	for category := range t {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Labels returns every category and subcategory name, deduplicated and sorted.
func (t Taxonomy) Labels() []string {
	set := make(map[string]struct{})
	for category, subs := range t {
		set[category] = struct{}{}
		for _, sub := range subs {
			set[sub] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for label := range set {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Seasonality is the baseline sales level per calendar month.
type Seasonality map[time.Month]float64

// Validate requires a baseline for all twelve months.
func (s Seasonality) Validate() error {
	for month := time.January; month <= time.December; month++ {
		if _, ok := s[month]; !ok {
			return fmt.Errorf("seasonality is missing month %s", month)
		}
	}
	return nil
}

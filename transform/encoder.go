// ABOUTME: Label encoder for category and subcategory strings
// ABOUTME: Assigns stable integer codes in sorted order, reproducible across runs
package transform

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLabel means Encode was given a string outside the fitted vocabulary.
var ErrUnknownLabel = errors.New("unknown label")

// ErrUnknownCode means Decode was given a code outside the fitted range.
var ErrUnknownCode = errors.New("unknown label code")

// LabelEncoder maps label strings to integer codes and back. Codes are
// assigned in sorted label order, so the same vocabulary always produces the
// same codes regardless of insertion order.
type LabelEncoder struct {
	labels []string
	codes  map[string]int
}

// FitLabels builds an encoder over the deduplicated, sorted label set.
func FitLabels(labels []string) (*LabelEncoder, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels to fit")
	}

	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for l := range set {
		sorted = append(sorted, l)
	}
	sort.Strings(sorted)

	codes := make(map[string]int, len(sorted))
	for i, l := range sorted {
		codes[l] = i
	}
	return &LabelEncoder{labels: sorted, codes: codes}, nil
}

// Encode returns the integer code for a fitted label.
func (e *LabelEncoder) Encode(label string) (int, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return code, nil
}

// Decode is the inverse of Encode.
func (e *LabelEncoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.labels) {
		return "", fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return e.labels[code], nil
}

// Cardinality is the size of the fitted vocabulary, fed to the forecasting
// service as its categorical cardinality hyperparameter.
func (e *LabelEncoder) Cardinality() int {
	return len(e.labels)
}

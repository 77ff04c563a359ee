// ABOUTME: Train/test split over series records
// ABOUTME: Train drops the last horizon elements from every target, test keeps all
package transform

import (
	"errors"
	"fmt"

	"github.com/harperreed/salesgen/models"
)

// ErrInsufficientHorizon means a series is too short for the requested
// prediction horizon.
var ErrInsufficientHorizon = errors.New("series shorter than prediction horizon")

// Split derives the training and test views of a dataset. Test is a deep copy
// of the input; train is a deep copy with the last horizon elements removed
// from every target. Both are owned by the caller, with no aliasing back to
// the input or each other. Every record must satisfy len(target) > horizon.
func Split(dataset models.Dataset, horizon int) (train, test models.Dataset, err error) {
	if horizon <= 0 {
		return nil, nil, fmt.Errorf("horizon must be positive, got %d", horizon)
	}
	for i, r := range dataset {
		if len(r.Target) <= horizon {
			return nil, nil, fmt.Errorf("%w: record %d has %d points, horizon %d", ErrInsufficientHorizon, i, len(r.Target), horizon)
		}
	}

	test = dataset.Clone()
	train = make(models.Dataset, len(dataset))
	for i, r := range dataset {
		c := r.Clone()
		c.Target = c.Target[:len(c.Target)-horizon]
		train[i] = c
	}
	return train, test, nil
}

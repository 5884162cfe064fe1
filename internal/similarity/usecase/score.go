package usecase

import (
	"errors"
	"fmt"
)

var errDimensionMismatch = errors.New("embedding dimension mismatch")

// dotProduct returns the unnormalized inner product of a and b.
func dotProduct(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: query has %d values, candidate has %d", errDimensionMismatch, len(a), len(b))
	}

	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

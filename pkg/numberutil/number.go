package numberutil

import (
	"errors"
	"math"
)

var ErrOverflow = errors.New("integer overflow")

// SubClamp returns a-b, or zero when b exceeds a.
func SubClamp(a, b int64) int64 {
	if b >= a {
		return 0
	}

	return a - b
}

// AddNonNegative returns a+b for a non-negative balance a and amount b. It
// fails instead of wrapping around when the sum exceeds math.MaxInt64.
func AddNonNegative(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, errors.New("negative operand")
	}

	if b > math.MaxInt64-a {
		return 0, ErrOverflow
	}

	return a + b, nil
}

// Round rounds f to the given number of decimal places.
func Round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

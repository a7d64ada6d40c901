// SPDX-License-Identifier: MIT

// Package mat: checked vector helpers shared by the engine's update and
// scoring paths.
package mat

import (
	"fmt"
	"math"
)

// Dot returns the dot product a·b.
// Returns ErrDimensionMismatch if the lengths differ.
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dot: lengths %d and %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// AddScaledVec applies dst ← dst + s·x in place.
// Returns ErrDimensionMismatch if the lengths differ, ErrNaNInf if s or any
// x entry is non-finite.
// Complexity: O(n).
func AddScaledVec(dst, x []float64, s float64) error {
	if len(dst) != len(x) {
		return fmt.Errorf("AddScaledVec: lengths %d and %d: %w", len(dst), len(x), ErrDimensionMismatch)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("AddScaledVec: scale %v: %w", s, ErrNaNInf)
	}
	// Validate fully before mutating so a rejected call leaves dst untouched.
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("AddScaledVec: x[%d]: %w", i, ErrNaNInf)
		}
	}
	for i, v := range x {
		dst[i] += s * v
	}

	return nil
}

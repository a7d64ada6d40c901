// SPDX-License-Identifier: MIT

// Package mat: Cholesky factorization and the paired triangular solves,
// following strict fail-fast patterns. Cholesky replaces the usual general
// LU here because every matrix the callers factor is symmetric positive
// definite by construction, which halves the work and gives a built-in
// positive-definiteness check (the pivots).
package mat

import (
	"fmt"
	"math"
)

// Cholesky factors the symmetric positive-definite matrix a as a = L·Lᵀ and
// returns the lower-triangular factor L.
// Blueprint:
//
//	Stage 1 (Validate): a non-nil, entries finite.
//	Stage 2 (Execute): column-by-column Cholesky–Banachiewicz; each diagonal
//	        pivot must be strictly positive or the input is not PD.
//	Stage 3 (Finalize): return L (strictly-upper triangle left at zero).
//
// Only the lower triangle of a is read, so mild asymmetry in the upper
// triangle is ignored; callers that care must check IsSymmetric themselves.
// Complexity: O(n³) time, O(n²) memory.
func Cholesky(a *Dense) (*Dense, error) {
	// Stage 1: Validate
	if a == nil {
		return nil, fmt.Errorf("Cholesky: %w", ErrNilMatrix)
	}
	for i, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Cholesky: entry %d: %w", i, ErrNaNInf)
		}
	}
	n := a.n

	// Stage 2: Factor
	l, err := NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("Cholesky: %w", err)
	}
	var (
		i, j, k int     // loop indices
		sum     float64 // running dot of already-computed factor entries
		pivot   float64 // candidate diagonal value before the sqrt
	)
	for j = 0; j < n; j++ {
		// Diagonal entry: L[j][j] = sqrt(a[j][j] - Σ_k L[j][k]²)
		sum = 0
		for k = 0; k < j; k++ {
			sum += l.data[j*n+k] * l.data[j*n+k]
		}
		pivot = a.data[j*n+j] - sum
		if pivot <= 0 || math.IsNaN(pivot) {
			return nil, fmt.Errorf("Cholesky: pivot %v at column %d: %w", pivot, j, ErrNotPositiveDefinite)
		}
		l.data[j*n+j] = math.Sqrt(pivot)

		// Sub-diagonal column j: L[i][j] = (a[i][j] - Σ_k L[i][k]·L[j][k]) / L[j][j]
		for i = j + 1; i < n; i++ {
			sum = 0
			for k = 0; k < j; k++ {
				sum += l.data[i*n+k] * l.data[j*n+k]
			}
			l.data[i*n+j] = (a.data[i*n+j] - sum) / l.data[j*n+j]
		}
	}

	// Stage 3: Return factor
	return l, nil
}

// SolveCholesky solves L·Lᵀ·x = b given the lower-triangular Cholesky factor
// L, via forward substitution (L·y = b) then backward substitution (Lᵀ·x = y).
// The factor's diagonal is strictly positive by construction, so no pivot
// check is repeated here.
// Returns ErrNilMatrix if l is nil, ErrDimensionMismatch if len(b) != order.
// Complexity: O(n²) time, O(n) memory.
func SolveCholesky(l *Dense, b []float64) ([]float64, error) {
	if l == nil {
		return nil, fmt.Errorf("SolveCholesky: %w", ErrNilMatrix)
	}
	n := l.n
	if len(b) != n {
		return nil, fmt.Errorf("SolveCholesky: vector length %d, order %d: %w", len(b), n, ErrDimensionMismatch)
	}

	var (
		i, k int     // loop indices
		sum  float64 // substitution accumulator
	)

	// Forward substitution: L·y = b
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			sum += l.data[i*n+k] * y[k]
		}
		y[i] = (b[i] - sum) / l.data[i*n+i]
	}

	// Backward substitution: Lᵀ·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			// Lᵀ[i][k] == L[k][i]
			sum += l.data[k*n+i] * x[k]
		}
		x[i] = (y[i] - sum) / l.data[i*n+i]
	}

	return x, nil
}

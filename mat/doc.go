// SPDX-License-Identifier: MIT

// Package mat provides the small dense linear algebra the bandit engine
// needs: square row-major matrices, Cholesky factorization, triangular
// solves, and rank-1 symmetric updates.
//
// The package is deliberately narrow. Every matrix the engine touches is a
// d×d symmetric positive-definite design matrix with d rarely above a few
// dozen, so the routines here are sized for that regime:
//
//   - Dense          — square, row-major, flat backing slice
//   - Cholesky       — A = L·Lᵀ for symmetric positive-definite A, O(n³)
//   - SolveCholesky  — x from L·Lᵀ·x = b via forward + backward substitution, O(n²)
//   - Dot            — vector dot product with dimension checking
//   - AddScaledVec   — y ← y + s·x
//   - (*Dense).AddScaledOuter — A ← A + s·x·xᵀ
//
// Error contract: every routine validates its inputs and returns a sentinel
// (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix,
// ErrNaNInf, ErrNotPositiveDefinite) wrapped with call context. Nothing in
// this package panics on user-triggered conditions, and nothing here lets a
// NaN propagate silently into a factorization.
package mat

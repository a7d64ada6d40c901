// SPDX-License-Identifier: MIT

// Package mat: sentinel error set. All routines in this package return these
// sentinels (optionally wrapped with fmt.Errorf("Op: %w", ...) for context)
// and tests match them via errors.Is. No routine panics on user input.
package mat

import "errors"

var (
	// ErrBadShape is returned when a requested matrix size is non-positive.
	ErrBadShape = errors.New("mat: size must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. a vector whose length does not match the matrix order.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("mat: matrix is nil")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("mat: NaN or Inf encountered")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive pivot
	// is encountered, i.e. the input is not symmetric positive-definite.
	ErrNotPositiveDefinite = errors.New("mat: matrix is not positive definite")
)

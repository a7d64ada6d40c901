// SPDX-License-Identifier: MIT

// Package mat: Dense is a square, row-major float64 matrix backed by a flat
// slice for cache friendliness. Order n is fixed at construction.
package mat

import (
	"fmt"
	"math"
)

// Dense is a square row-major matrix of float64 values.
// n is the order; data holds n*n elements in row-major layout.
type Dense struct {
	n    int       // matrix order
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Returns ErrBadShape if n <= 0.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// NewScaledIdentity creates s·I of order n.
// Returns ErrBadShape if n <= 0, ErrNaNInf if s is not finite.
// Complexity: O(n²) time and memory.
func NewScaledIdentity(n int, s float64) (*Dense, error) {
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("NewScaledIdentity(%d, %v): %w", n, s, ErrNaNInf)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = s
	}

	return m, nil
}

// FromRows builds a Dense from a square slice-of-rows. The input is copied;
// the result does not alias rows.
// Returns ErrBadShape if rows is empty or ragged, ErrNaNInf on non-finite entries.
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has length %d, want %d: %w", i, len(row), n, ErrBadShape)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*n+j] = v
		}
	}

	return m, nil
}

// N returns the matrix order.
// Complexity: O(1).
func (m *Dense) N() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("Dense(%d,%d) with order %d: %w", row, col, m.n, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, fmt.Errorf("At: %w", err)
	}

	return m.data[idx], nil
}

// Set stores v at (row, col). Non-finite v is rejected with ErrNaNInf so a
// stray NaN cannot poison a later factorization.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Set(%d,%d): %w", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with m.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	out := &Dense{n: m.n, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Rows exports the matrix as a freshly allocated slice-of-rows.
// Complexity: O(n²).
func (m *Dense) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]float64, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// IsSymmetric reports whether |m[i][j] - m[j][i]| <= eps for all i, j.
// Complexity: O(n²).
func (m *Dense) IsSymmetric(eps float64) bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if math.Abs(m.data[i*m.n+j]-m.data[j*m.n+i]) > eps {
				return false
			}
		}
	}

	return true
}

// AddScaledOuter applies the rank-1 symmetric update m ← m + s·x·xᵀ in place.
// Symmetry of m is preserved unconditionally.
// Returns ErrDimensionMismatch if len(x) != n, ErrNaNInf if s or any x entry
// is non-finite.
// Complexity: O(n²).
func (m *Dense) AddScaledOuter(x []float64, s float64) error {
	if len(x) != m.n {
		return fmt.Errorf("AddScaledOuter: vector length %d, order %d: %w", len(x), m.n, ErrDimensionMismatch)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("AddScaledOuter: scale %v: %w", s, ErrNaNInf)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("AddScaledOuter: x[%d]: %w", i, ErrNaNInf)
		}
	}

	for i := 0; i < m.n; i++ {
		row := m.data[i*m.n : (i+1)*m.n]
		sxi := s * x[i]
		for j := 0; j < m.n; j++ {
			row[j] += sxi * x[j]
		}
	}

	return nil
}

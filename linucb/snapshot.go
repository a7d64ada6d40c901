package linucb

import (
	"fmt"
	"math"

	"github.com/yasut0ra/ani-replica/mat"
)

// symmetryEps bounds the asymmetry tolerated in a restored design matrix.
// Updates preserve symmetry exactly, so any drift comes from the snapshot's
// round-trip through an external codec.
const symmetryEps = 1e-9

// ArmState is one arm's exported sufficient statistics.
type ArmState struct {
	// A is the design matrix as rows, d×d, symmetric positive-definite.
	A [][]float64 `json:"a"`

	// B is the reward-weighted context sum, length d.
	B []float64 `json:"b"`
}

// State is a total export of an engine's numeric state: configuration plus
// every arm's model, with registration order preserved. It is the unit of
// persistence — collaborators (see statefile) serialize it however they
// like; the engine only promises the mapping is complete and deep-copied.
type State struct {
	Alpha  float64             `json:"alpha"`
	Lambda float64             `json:"lambda"`
	Dim    int                 `json:"dim"`
	Arms   []string            `json:"arms"`
	Models map[string]ArmState `json:"models"`
}

// Snapshot exports the engine's full numeric state. The result shares no
// storage with the engine: mutating it, or updating the engine afterwards,
// affects neither side.
func (e *Engine) Snapshot() State {
	s := State{
		Alpha:  e.alpha,
		Lambda: e.lambda,
		Dim:    e.dim,
		Arms:   e.Arms(),
		Models: make(map[string]ArmState, len(e.models)),
	}
	for id, m := range e.models {
		b := make([]float64, len(m.b))
		copy(b, m.b)
		s.Models[id] = ArmState{A: m.a.Rows(), B: b}
	}

	return s
}

// Restore rebuilds an Engine from a previously exported State.
//
// Validation (all failures wrap ErrBadSnapshot):
//  1. Configuration: Dim > 0, Alpha ≥ 0, Lambda > 0, all finite.
//  2. Arm list: no duplicates; exactly the keys of Models.
//  3. Per arm: A is Dim×Dim, finite, symmetric within tolerance, and
//     positive-definite (checked by factorization); B has length Dim with
//     finite entries.
//
// A State produced by Snapshot always restores; the checks exist for states
// that traveled through external storage.
func Restore(s State) (*Engine, error) {
	if s.Dim <= 0 {
		return nil, fmt.Errorf("Restore: dimension %d: %w", s.Dim, ErrBadSnapshot)
	}
	if s.Alpha < 0 || math.IsNaN(s.Alpha) || math.IsInf(s.Alpha, 0) {
		return nil, fmt.Errorf("Restore: alpha %v: %w", s.Alpha, ErrBadSnapshot)
	}
	if !(s.Lambda > 0) || math.IsInf(s.Lambda, 0) {
		return nil, fmt.Errorf("Restore: lambda %v: %w", s.Lambda, ErrBadSnapshot)
	}
	if len(s.Arms) != len(s.Models) {
		return nil, fmt.Errorf("Restore: %d arms but %d models: %w", len(s.Arms), len(s.Models), ErrBadSnapshot)
	}

	e := &Engine{
		alpha:  s.Alpha,
		lambda: s.Lambda,
		dim:    s.Dim,
		models: make(map[string]*armModel, len(s.Models)),
	}
	for _, id := range s.Arms {
		if _, dup := e.models[id]; dup {
			return nil, fmt.Errorf("Restore: duplicate arm %q: %w", id, ErrBadSnapshot)
		}
		st, ok := s.Models[id]
		if !ok {
			return nil, fmt.Errorf("Restore: arm %q has no model: %w", id, ErrBadSnapshot)
		}
		m, err := restoreArm(st, s.Dim)
		if err != nil {
			return nil, fmt.Errorf("Restore: arm %q: %w", id, err)
		}
		e.models[id] = m
		e.order = append(e.order, id)
	}

	return e, nil
}

// restoreArm validates and deep-copies one arm's exported state.
func restoreArm(st ArmState, dim int) (*armModel, error) {
	a, err := mat.FromRows(st.A)
	if err != nil {
		return nil, fmt.Errorf("design matrix: %v: %w", err, ErrBadSnapshot)
	}
	if a.N() != dim {
		return nil, fmt.Errorf("design matrix order %d, want %d: %w", a.N(), dim, ErrBadSnapshot)
	}
	if !a.IsSymmetric(symmetryEps) {
		return nil, fmt.Errorf("design matrix asymmetric: %w", ErrBadSnapshot)
	}
	if _, err = mat.Cholesky(a); err != nil {
		return nil, fmt.Errorf("design matrix not positive definite: %v: %w", err, ErrBadSnapshot)
	}

	if len(st.B) != dim {
		return nil, fmt.Errorf("b length %d, want %d: %w", len(st.B), dim, ErrBadSnapshot)
	}
	b := make([]float64, dim)
	for i, v := range st.B {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("b[%d] = %v: %w", i, v, ErrBadSnapshot)
		}
		b[i] = v
	}

	return &armModel{a: a, b: b}, nil
}

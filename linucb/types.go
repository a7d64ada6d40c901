// Package linucb defines configuration options and sentinel errors for the
// LinUCB bandit engine.
//
// Configuration:
//
//	– Alpha:  exploration coefficient (≥ 0). 0 disables the uncertainty bonus
//	          entirely and degenerates to greedy exploitation.
//	– Lambda: ridge regularization (> 0). Every arm's design matrix starts at
//	          Lambda·I, which keeps it invertible before any observation.
//	– Arms:   optional seed arms, registered in order at construction.
//	          Duplicates collapse to the first occurrence.
//
// Errors (sentinel):
//
//	– ErrBadDimension          if the context dimension is not positive.
//	– ErrBadAlpha              if Alpha < 0.
//	– ErrBadLambda             if Lambda <= 0.
//	– ErrInvalidContext        if a context vector has the wrong length or a
//	                           non-finite entry.
//	– ErrInvalidReward         if a reward is NaN or ±Inf.
//	– ErrEmptyArmSet           if Select has no candidates to score.
//	– ErrNumericalInstability  if scoring hits a broken numeric invariant
//	                           (negative quadratic form beyond tolerance,
//	                           failed factorization, non-finite score).
//	– ErrBadSnapshot           if Restore is given an inconsistent state.
package linucb

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrBadDimension indicates a non-positive context dimension at construction.
	ErrBadDimension = errors.New("linucb: dimension must be positive")

	// ErrBadAlpha indicates a negative exploration coefficient.
	ErrBadAlpha = errors.New("linucb: alpha must be non-negative")

	// ErrBadLambda indicates a non-positive ridge regularization constant.
	ErrBadLambda = errors.New("linucb: lambda must be positive")

	// ErrInvalidContext indicates a context vector of the wrong dimensionality
	// or containing NaN/±Inf. Contexts are never truncated, padded, or coerced.
	ErrInvalidContext = errors.New("linucb: invalid context vector")

	// ErrInvalidReward indicates a NaN or ±Inf reward. Finite rewards of any
	// magnitude or sign are accepted; bounding is the caller's business.
	ErrInvalidReward = errors.New("linucb: reward must be finite")

	// ErrEmptyArmSet indicates Select was called with no candidate arms and
	// no arms registered to fall back on.
	ErrEmptyArmSet = errors.New("linucb: no candidate arms")

	// ErrNumericalInstability indicates a broken numeric invariant: the
	// quadratic form under the exploration square root came out negative
	// beyond floating-point tolerance, a factorization failed despite the PD
	// invariant, or a score evaluated to NaN/Inf. The decision is aborted
	// rather than returning a poisoned score.
	ErrNumericalInstability = errors.New("linucb: numerical instability detected")

	// ErrBadSnapshot indicates Restore was given a snapshot with inconsistent
	// dimensions, an asymmetric or non-finite matrix, or invalid configuration.
	ErrBadSnapshot = errors.New("linucb: invalid snapshot")
)

// Defaults for the engine configuration.
const (
	// DefaultAlpha is the exploration coefficient used when WithAlpha is not given.
	DefaultAlpha = 0.25

	// DefaultLambda is the ridge regularization used when WithLambda is not given.
	DefaultLambda = 1.0
)

// quadFormTol bounds how far below zero the quadratic form xᵀ·A⁻¹·x may land
// before it stops being rounding error and becomes ErrNumericalInstability.
// The tolerance is applied relative to 1 + ‖x‖², since for λ ≥ 1 the exact
// form never exceeds ‖x‖².
const quadFormTol = 1e-9

// Options configures the behavior of the LinUCB engine.
type Options struct {
	// Alpha scales the exploration bonus. Must be ≥ 0.
	Alpha float64

	// Lambda scales the identity initialization of each arm's design matrix.
	// Must be > 0.
	Lambda float64

	// Arms seeds the registered arm set, in order.
	Arms []string
}

// Option mutates an Options value; pass to New.
type Option func(*Options)

// WithAlpha sets the exploration coefficient.
// Must pass a non-negative finite value; violations panic, since a broken
// Option constructor is a programmer error, not a runtime condition.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if alpha < 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
			panic(ErrBadAlpha.Error())
		}
		o.Alpha = alpha
	}
}

// WithLambda sets the ridge regularization constant.
// Must pass a positive finite value; violations panic.
func WithLambda(lambda float64) Option {
	return func(o *Options) {
		if !(lambda > 0) || math.IsInf(lambda, 0) {
			panic(ErrBadLambda.Error())
		}
		o.Lambda = lambda
	}
}

// WithArms seeds the engine's registered arm set. Order is preserved and
// determines cold-start tie-breaking; duplicates collapse to the first
// occurrence.
func WithArms(arms ...string) Option {
	return func(o *Options) {
		o.Arms = append(o.Arms, arms...)
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-options overrides.
//
// Defaults:
//   - Alpha:  DefaultAlpha (0.25)
//   - Lambda: DefaultLambda (1.0)
//   - Arms:   none (arms register lazily on Update, or explicitly via Register)
func DefaultOptions() Options {
	return Options{
		Alpha:  DefaultAlpha,
		Lambda: DefaultLambda,
	}
}

package linucb

import (
	"fmt"
	"math"

	"github.com/yasut0ra/ani-replica/mat"
)

// armModel holds one arm's sufficient statistics: the design matrix
// A = λ·I + Σ x·xᵀ and the reward-weighted context sum b = Σ r·x.
// A is symmetric positive-definite at all times: it starts PD (λ·I with
// λ > 0) and every update adds a PSD rank-1 term.
type armModel struct {
	a *mat.Dense
	b []float64
}

// Engine is a LinUCB contextual bandit over a lazily growing set of arms.
//
// The zero value is not usable; construct with New. The Engine carries no
// internal locking — Select is read-only and Update mutates exactly one
// arm's model, so hosts running concurrent callers must serialize at the
// boundary (see Synced).
type Engine struct {
	alpha  float64
	lambda float64
	dim    int

	// order preserves arm registration sequence; it is the cold-start
	// tie-break order when Select falls back to the full registered set.
	order  []string
	models map[string]*armModel
}

// New constructs an Engine for context vectors of length dim.
//
// Validation (in order):
//  1. dim must be positive (ErrBadDimension).
//  2. Alpha must be ≥ 0 (ErrBadAlpha).
//  3. Lambda must be > 0 and finite (ErrBadLambda).
//
// Seed arms from WithArms are registered immediately, in order, with
// duplicates collapsed to their first occurrence.
func New(dim int, opts ...Option) (*Engine, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("New: dimension %d: %w", dim, ErrBadDimension)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Alpha < 0 || math.IsNaN(cfg.Alpha) || math.IsInf(cfg.Alpha, 0) {
		return nil, fmt.Errorf("New: alpha %v: %w", cfg.Alpha, ErrBadAlpha)
	}
	if !(cfg.Lambda > 0) || math.IsInf(cfg.Lambda, 0) {
		return nil, fmt.Errorf("New: lambda %v: %w", cfg.Lambda, ErrBadLambda)
	}

	e := &Engine{
		alpha:  cfg.Alpha,
		lambda: cfg.Lambda,
		dim:    dim,
		models: make(map[string]*armModel),
	}
	e.Register(cfg.Arms...)

	return e, nil
}

// Alpha returns the exploration coefficient.
func (e *Engine) Alpha() float64 { return e.alpha }

// Lambda returns the ridge regularization constant.
func (e *Engine) Lambda() float64 { return e.lambda }

// Dim returns the context dimensionality.
func (e *Engine) Dim() int { return e.dim }

// Arms returns the registered arms in registration order.
// The returned slice is a copy; mutating it does not affect the engine.
func (e *Engine) Arms() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)

	return out
}

// Register adds arms to the engine, in the given order, skipping any already
// registered. Each new arm starts from the cold prior (A = λ·I, b = 0).
func (e *Engine) Register(arms ...string) {
	for _, id := range arms {
		e.ensureArm(id)
	}
}

// ensureArm returns the model for id, creating the cold-prior model and
// appending id to the registration order on first reference.
func (e *Engine) ensureArm(id string) *armModel {
	if m, ok := e.models[id]; ok {
		return m
	}
	m := e.coldModel()
	e.models[id] = m
	e.order = append(e.order, id)

	return m
}

// coldModel builds the prior-only model every arm starts from.
func (e *Engine) coldModel() *armModel {
	// λ > 0 and dim > 0 are construction invariants, so neither call can fail.
	a, _ := mat.NewScaledIdentity(e.dim, e.lambda)

	return &armModel{a: a, b: make([]float64, e.dim)}
}

// checkContext validates dimensionality and finiteness of a context vector.
func (e *Engine) checkContext(op string, context []float64) error {
	if len(context) != e.dim {
		return fmt.Errorf("%s: context length %d, want %d: %w", op, len(context), e.dim, ErrInvalidContext)
	}
	for i, v := range context {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: context[%d] = %v: %w", op, i, v, ErrInvalidContext)
		}
	}

	return nil
}

// Select scores every candidate arm against context and returns the arm with
// the highest upper confidence bound.
//
// Candidates: the arms passed explicitly, in the given order; when none are
// passed, the full registered set in registration order. Candidates without
// a registered model are scored against the cold prior without being
// materialized — Select never mutates the engine.
//
// Tie-break: strict greater-than while scanning candidates in order, so
// equal scores (the cold-start case included) resolve deterministically to
// the earliest candidate.
//
// Errors: ErrInvalidContext on a malformed context, ErrEmptyArmSet when the
// effective candidate set is empty, ErrNumericalInstability if any
// candidate's score cannot be computed soundly.
//
// Complexity: O(k·d³) time for k candidates (one Cholesky per candidate),
// O(d²) memory.
func (e *Engine) Select(context []float64, arms ...string) (string, error) {
	// 1) Validate context before touching any model.
	if err := e.checkContext("Select", context); err != nil {
		return "", err
	}

	// 2) Resolve the candidate set.
	candidates := arms
	if len(candidates) == 0 {
		candidates = e.order
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("Select: %w", ErrEmptyArmSet)
	}

	// 3) Score candidates in order; first strict maximum wins.
	var (
		bestArm   string
		bestScore = math.Inf(-1)
		cold      *armModel // shared transient model for unregistered candidates
	)
	for _, id := range candidates {
		m, ok := e.models[id]
		if !ok {
			if cold == nil {
				cold = e.coldModel()
			}
			m = cold
		}
		mean, bonus, err := e.score(m, context)
		if err != nil {
			return "", fmt.Errorf("Select: arm %q: %w", id, err)
		}
		if s := mean + bonus; s > bestScore {
			bestArm = id
			bestScore = s
		}
	}

	return bestArm, nil
}

// Score returns the decomposed LinUCB score, mean (θ·context) and bonus
// (α·√(contextᵀ·A⁻¹·context)), for one arm against a context. Unregistered
// arms are scored against the cold prior. Like Select, Score never mutates
// the engine; it exists for inspection, logging, and tests.
func (e *Engine) Score(armID string, context []float64) (mean, bonus float64, err error) {
	if err = e.checkContext("Score", context); err != nil {
		return 0, 0, err
	}
	m, ok := e.models[armID]
	if !ok {
		m = e.coldModel()
	}
	mean, bonus, err = e.score(m, context)
	if err != nil {
		return 0, 0, fmt.Errorf("Score: arm %q: %w", armID, err)
	}

	return mean, bonus, nil
}

// score evaluates one arm model against a validated context.
//
// Algorithm:
//  1. Factor A = L·Lᵀ (A is PD by invariant; a failed factorization means
//     the invariant broke and surfaces as ErrNumericalInstability).
//  2. θ = A⁻¹·b via the factor — the inverse is never formed.
//  3. mean = θ·context.
//  4. q = contextᵀ·A⁻¹·context via z = A⁻¹·context, q = context·z.
//     q is mathematically ≥ 0; a small negative q is rounding noise and
//     clamps to 0, while q below -quadFormTol·(1 + ‖context‖²) is a fault.
//  5. bonus = α·√q. A non-finite mean or bonus is likewise a fault: the
//     engine reports it instead of returning a poisoned score.
func (e *Engine) score(m *armModel, context []float64) (mean, bonus float64, err error) {
	l, err := mat.Cholesky(m.a)
	if err != nil {
		return 0, 0, fmt.Errorf("factorizing design matrix: %v: %w", err, ErrNumericalInstability)
	}

	theta, err := mat.SolveCholesky(l, m.b)
	if err != nil {
		return 0, 0, fmt.Errorf("solving for theta: %v: %w", err, ErrNumericalInstability)
	}
	mean, err = mat.Dot(theta, context)
	if err != nil {
		return 0, 0, fmt.Errorf("mean score: %v: %w", err, ErrNumericalInstability)
	}

	z, err := mat.SolveCholesky(l, context)
	if err != nil {
		return 0, 0, fmt.Errorf("solving quadratic form: %v: %w", err, ErrNumericalInstability)
	}
	q, err := mat.Dot(context, z)
	if err != nil {
		return 0, 0, fmt.Errorf("quadratic form: %v: %w", err, ErrNumericalInstability)
	}
	if q < 0 {
		norm2, _ := mat.Dot(context, context)
		if q < -quadFormTol*(1+norm2) {
			return 0, 0, fmt.Errorf("quadratic form %v below tolerance: %w", q, ErrNumericalInstability)
		}
		q = 0
	}
	bonus = e.alpha * math.Sqrt(q)

	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(bonus) || math.IsInf(bonus, 0) {
		return 0, 0, fmt.Errorf("non-finite score (mean %v, bonus %v): %w", mean, bonus, ErrNumericalInstability)
	}

	return mean, bonus, nil
}

// Update folds one observed decision outcome into armID's model:
//
//	A ← A + context·contextᵀ
//	b ← b + reward·context
//
// armID is registered on first reference (cold-start arms appear at runtime
// without re-deriving anything). Rewards of any finite magnitude or sign are
// accepted; clamping is the caller's concern. The zero context with any
// reward is a valid no-op update.
//
// Exactly the targeted arm's model is mutated; every other arm's state and
// scores are untouched.
//
// Errors: ErrInvalidContext on a malformed context, ErrInvalidReward on a
// non-finite reward. A rejected call leaves the engine unchanged.
func (e *Engine) Update(armID string, context []float64, reward float64) error {
	if err := e.checkContext("Update", context); err != nil {
		return err
	}
	if math.IsNaN(reward) || math.IsInf(reward, 0) {
		return fmt.Errorf("Update: reward %v: %w", reward, ErrInvalidReward)
	}

	m := e.ensureArm(armID)
	// Inputs are validated above, and dimensions match by construction, so
	// neither in-place update can fail.
	_ = m.a.AddScaledOuter(context, 1)
	_ = mat.AddScaledVec(m.b, context, reward)

	return nil
}

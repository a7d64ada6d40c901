// Package linucb implements the LinUCB contextual multi-armed bandit that
// picks the next conversation topic and learns from observed feedback.
//
// 🚀 What is LinUCB?
//
//	Each arm (topic) owns an independent ridge-regression model over the
//	context vector: a d×d design matrix A (initialized to λ·I) and a
//	reward-weighted context sum b. An arm's score for context x is
//
//	  score(x) = θ·x + α·√(xᵀ·A⁻¹·x),   θ = A⁻¹·b
//
//	the point estimate plus an optimism-in-the-face-of-uncertainty bonus.
//	Select returns the arm with the highest score; Update folds one observed
//	(context, reward) pair into the chosen arm's statistics:
//
//	  A ← A + x·xᵀ     b ← b + reward·x
//
// ✨ Guarantees:
//
//   - Deterministic – equal scores break toward the earliest candidate in
//     iteration order, so cold-start selection is reproducible
//   - Side-effect-free Select – only Update and Register mutate the engine;
//     unregistered candidates are scored against the cold prior (λ·I, 0)
//     without being materialized
//   - Symmetric positive-definite A after every update, for any finite
//     reward (negative and outside [0,1] included) and any finite context
//   - Fail loud – ErrInvalidContext / ErrInvalidReward / ErrEmptyArmSet on
//     bad input; ErrNumericalInstability instead of a NaN-poisoned score
//
// Linear systems are solved through the Cholesky factor of A (mat package)
// rather than an explicit inverse; A stays PD by construction, so the factor
// always exists.
//
// The engine itself carries no locks — it is pure computation; hosts
// with concurrent callers wrap it in Synced, which serializes Update/Restore
// against Select at the boundary.
//
// Persistence is a collaborator concern: Snapshot exports the full numeric
// state, Restore rebuilds an engine from one, and the statefile package puts
// snapshots on disk.
package linucb

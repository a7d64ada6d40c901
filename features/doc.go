// Package features maps conversation signals into the fixed-length context
// vectors the bandit engine consumes.
//
// The engine does not interpret feature semantics; this package owns them.
// A Signals value captures the decision situation at the start of a chat
// turn — affection score, turn count, how long the current topic has been
// running, the last observed reward — and Vector flattens it into a
// Dim-length []float64:
//
//	[ bias, affection, neutral, warm, excited, fatigue, streak, lastReward ]
//
// Affection is clamped to its supported 0–10 range before scaling, and the
// three tone indicators are a one-hot encoding of the companion's affection
// buckets (neutral below 3, warm below 7, excited at 7 and above). Turn
// count and topic streak enter as saturating ratios so an arbitrarily long
// session cannot blow up the vector's norm.
//
// Vector is deterministic and stateless: equal Signals produce equal
// vectors, and nothing is retained between calls.
package features

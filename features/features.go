package features

import "math"

// Dim is the length of every vector this package produces. Engines consuming
// these vectors must be constructed with the same dimension.
const Dim = 8

// Affection bounds and tone-bucket thresholds. The buckets mirror the
// companion's reply-tone tiers: neutral below WarmThreshold, warm below
// ExcitedThreshold, excited at or above it.
const (
	MinAffection     = 0
	MaxAffection     = 10
	WarmThreshold    = 3
	ExcitedThreshold = 7
)

// Saturation half-points: the turn where fatigue reaches 0.5 and the streak
// length where topic staleness reaches 0.5.
const (
	fatigueHalfLife = 8
	streakHalfLife  = 3
)

// Signals captures the decision situation at the start of a chat turn.
type Signals struct {
	// Affection is the current affection score, nominally 0–10. Out-of-range
	// values are clamped, matching the state layer's own clipping.
	Affection int

	// Turns is the number of completed chat turns this session.
	Turns int

	// TopicStreak is how many consecutive turns the current topic has held.
	TopicStreak int

	// LastReward is the most recent observed reward, clamped to [-1, 1] in
	// the vector so one outsized reward cannot dominate the context.
	LastReward float64
}

// clampAffection clips an affection score to the supported range.
func clampAffection(v int) int {
	if v < MinAffection {
		return MinAffection
	}
	if v > MaxAffection {
		return MaxAffection
	}

	return v
}

// saturate maps a non-negative count onto [0, 1) as count/(count+half).
// Negative counts are treated as zero.
func saturate(count, half int) float64 {
	if count < 0 {
		count = 0
	}

	return float64(count) / float64(count+half)
}

// clampReward clips a reward to [-1, 1]. NaN collapses to 0 so a corrupt
// reward signal cannot leak a non-finite entry into the context.
func clampReward(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

// Vector flattens s into a Dim-length context vector:
//
//	index 0: bias, always 1 (gives every arm an interceptable baseline)
//	index 1: affection scaled to [0, 1]
//	index 2: 1 if the tone bucket is neutral (affection < 3)
//	index 3: 1 if the tone bucket is warm (3 ≤ affection < 7)
//	index 4: 1 if the tone bucket is excited (affection ≥ 7)
//	index 5: session fatigue, turns/(turns+8)
//	index 6: topic staleness, streak/(streak+3)
//	index 7: last reward clamped to [-1, 1]
//
// All entries are finite by construction, so the result always passes the
// engine's context validation.
func Vector(s Signals) []float64 {
	v := make([]float64, Dim)
	v[0] = 1

	affection := clampAffection(s.Affection)
	v[1] = float64(affection) / MaxAffection

	switch {
	case affection < WarmThreshold:
		v[2] = 1
	case affection < ExcitedThreshold:
		v[3] = 1
	default:
		v[4] = 1
	}

	v[5] = saturate(s.Turns, fatigueHalfLife)
	v[6] = saturate(s.TopicStreak, streakHalfLife)

	v[7] = clampReward(s.LastReward)

	return v
}

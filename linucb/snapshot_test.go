package linucb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasut0ra/ani-replica/linucb"
)

// trainedEngine builds a small engine with some accumulated evidence.
func trainedEngine(t *testing.T) *linucb.Engine {
	t.Helper()
	eng, err := linucb.New(2, linucb.WithAlpha(0.5), linucb.WithLambda(2.0), linucb.WithArms("a", "b", "c"))
	require.NoError(t, err)
	require.NoError(t, eng.Update("a", []float64{1, 0}, 1.0))
	require.NoError(t, eng.Update("a", []float64{0.5, 0.5}, -0.25))
	require.NoError(t, eng.Update("b", []float64{0, 1}, 0.8))

	return eng
}

// TestSnapshotRestore_RoundTrip verifies a snapshot restores to an engine
// that scores and selects identically.
func TestSnapshotRestore_RoundTrip(t *testing.T) {
	eng := trainedEngine(t)

	clone, err := linucb.Restore(eng.Snapshot())
	require.NoError(t, err, "a snapshot produced by Snapshot must always restore")

	assert.Equal(t, eng.Arms(), clone.Arms(), "registration order must survive the round trip")
	assert.Equal(t, eng.Alpha(), clone.Alpha())
	assert.Equal(t, eng.Lambda(), clone.Lambda())
	assert.Equal(t, eng.Dim(), clone.Dim())

	probes := [][]float64{{1, 0}, {0, 1}, {0.3, -0.7}}
	for _, probe := range probes {
		for _, arm := range eng.Arms() {
			m0, u0, err := eng.Score(arm, probe)
			require.NoError(t, err)
			m1, u1, err := clone.Score(arm, probe)
			require.NoError(t, err)
			assert.Equal(t, m0, m1, "restored mean must match for arm %s", arm)
			assert.Equal(t, u0, u1, "restored bonus must match for arm %s", arm)
		}
		want, err := eng.Select(probe)
		require.NoError(t, err)
		got, err := clone.Select(probe)
		require.NoError(t, err)
		assert.Equal(t, want, got, "restored engine must select identically")
	}
}

// TestSnapshot_IsDeepCopy verifies snapshot and engine share no storage.
func TestSnapshot_IsDeepCopy(t *testing.T) {
	eng := trainedEngine(t)
	snap := eng.Snapshot()

	// Mutating the export must not reach the engine.
	snap.Models["a"].A[0][0] = 1e9
	snap.Models["a"].B[0] = -1e9
	fresh := eng.Snapshot()
	assert.NotEqual(t, 1e9, fresh.Models["a"].A[0][0], "snapshot matrices must be copies")
	assert.NotEqual(t, -1e9, fresh.Models["a"].B[0], "snapshot vectors must be copies")

	// Updating the engine must not reach an older export.
	before := snap.Models["b"].A[1][1]
	require.NoError(t, eng.Update("b", []float64{0, 1}, 1.0))
	assert.Equal(t, before, snap.Models["b"].A[1][1], "engine updates must not rewrite old snapshots")
}

// TestRestore_RejectsInconsistentState walks the ErrBadSnapshot cases:
// bad configuration, arm/model mismatches, malformed matrices.
func TestRestore_RejectsInconsistentState(t *testing.T) {
	tweak := func(mutate func(*linucb.State)) linucb.State {
		s := trainedEngine(t).Snapshot()
		mutate(&s)

		return s
	}

	cases := []struct {
		name   string
		mutate func(*linucb.State)
	}{
		{"zero dimension", func(s *linucb.State) { s.Dim = 0 }},
		{"negative alpha", func(s *linucb.State) { s.Alpha = -1 }},
		{"zero lambda", func(s *linucb.State) { s.Lambda = 0 }},
		{"NaN alpha", func(s *linucb.State) { s.Alpha = math.NaN() }},
		{"missing model", func(s *linucb.State) { delete(s.Models, "b") }},
		{"duplicate arm", func(s *linucb.State) { s.Arms = []string{"a", "a", "c"} }},
		{"unknown arm", func(s *linucb.State) { s.Arms = []string{"a", "b", "zzz"} }},
		{"asymmetric matrix", func(s *linucb.State) { s.Models["a"].A[0][1] += 0.5 }},
		{"wrong matrix order", func(s *linucb.State) {
			s.Models["a"] = linucb.ArmState{A: [][]float64{{1}}, B: []float64{0}}
		}},
		{"non-PD matrix", func(s *linucb.State) {
			s.Models["a"] = linucb.ArmState{A: [][]float64{{1, 0}, {0, -1}}, B: []float64{0, 0}}
		}},
		{"NaN matrix entry", func(s *linucb.State) { s.Models["a"].A[0][0] = math.NaN() }},
		{"short b vector", func(s *linucb.State) {
			s.Models["a"] = linucb.ArmState{A: s.Models["a"].A, B: []float64{1}}
		}},
		{"non-finite b entry", func(s *linucb.State) { s.Models["a"].B[1] = math.Inf(1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linucb.Restore(tweak(tc.mutate))
			assert.ErrorIs(t, err, linucb.ErrBadSnapshot, "restore must reject: %s", tc.name)
		})
	}
}

// Package anireplica is the decision and learning layer behind the ani
// companion's topic selection — a contextual multi-armed bandit with the
// numeric plumbing it needs, and nothing else.
//
// 🚀 What lives here?
//
//	A small, dependency-light library that brings together:
//		• linucb/    — the LinUCB contextual bandit engine: one ridge model per
//		  topic, UCB scoring, deterministic tie-breaking, snapshot export/import
//		• mat/       — dense symmetric linear algebra sized for small d:
//		  Cholesky factorization, triangular solves, rank-1 updates
//		• features/  — conversation signals → fixed-length context vectors
//		• statefile/ — atomic on-disk persistence of the engine's numeric state
//
// ✨ Design stance:
//
//   - Pure computation – every call is bounded, synchronous, and I/O-free
//     (statefile excepted, which exists precisely to own the I/O)
//   - Fail loud – sentinel errors for bad input and numerical faults; the
//     engine never swallows a NaN or guesses at a dimension
//   - Deterministic – cold-start selection, tie-breaks, and feature vectors
//     reproduce exactly given the same inputs
//   - Host-owned concurrency – the engine is lock-free; linucb.Synced is the
//     boundary wrapper for hosts that run concurrent callers
//
// Typical flow: build a context with features, ask linucb for a topic, hand
// the reply pipeline the topic, report the observed reward back to linucb,
// and statefile the engine between process restarts.
//
//	go get github.com/yasut0ra/ani-replica
package anireplica

// Package statefile persists the bandit engine's numeric state across
// process restarts.
//
// The engine exports and imports its state as a linucb.State; this package
// owns putting that state on disk. Writes go through a temp file in the
// same directory followed by a rename, so a crash mid-write leaves either
// the previous state or the new one, never a torn file. Reads distinguish
// "no state yet" (ErrNoState — start fresh) from a corrupt or unreadable
// file (a wrapped decode/read error — the caller decides whether to reset).
//
// The on-disk format is JSON purely as an implementation choice; nothing in
// the engine depends on it.
package statefile

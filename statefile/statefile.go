package statefile

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/yasut0ra/ani-replica/linucb"
)

// Sentinel errors returned by the store.
var (
	// ErrEmptyPath indicates a Store was constructed without a target path.
	ErrEmptyPath = errors.New("statefile: path must be non-empty")

	// ErrNoState indicates no state file exists yet. Callers start from a
	// fresh engine rather than treating this as a fault.
	ErrNoState = errors.New("statefile: no saved state")
)

// tmpSuffix is appended to the target path for the staging file.
const tmpSuffix = ".tmp"

// Store reads and writes one engine's state at a fixed path.
type Store struct {
	path string
}

// New constructs a Store targeting path. Returns ErrEmptyPath if path is "".
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("New: %w", ErrEmptyPath)
	}

	return &Store{path: path}, nil
}

// Path returns the target path.
func (s *Store) Path() string { return s.path }

// Save writes state atomically: encode, write to path+".tmp", rename over
// the target. The temp file is removed on any failure after creation.
func (s *Store) Save(state linucb.State) error {
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("Save: encode: %w", err)
	}

	tmp := s.path + tmpSuffix
	if err = os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("Save: write temp: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		// Best-effort cleanup; the rename error is the one worth reporting.
		_ = os.Remove(tmp)

		return fmt.Errorf("Save: replace %s: %w", s.path, err)
	}

	return nil
}

// Load reads the state from disk. A missing file returns ErrNoState; a file
// that exists but cannot be read or decoded returns the underlying error
// wrapped with context.
//
// Load returns the decoded State as-is: validation of its numeric content
// belongs to linucb.Restore, which callers invoke next.
func (s *Store) Load() (linucb.State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return linucb.State{}, fmt.Errorf("Load: %s: %w", s.path, ErrNoState)
		}

		return linucb.State{}, fmt.Errorf("Load: read %s: %w", s.path, err)
	}

	var state linucb.State
	if err = json.Unmarshal(raw, &state); err != nil {
		return linucb.State{}, fmt.Errorf("Load: decode %s: %w", s.path, err)
	}

	return state, nil
}

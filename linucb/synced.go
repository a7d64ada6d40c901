package linucb

import "sync"

// Synced wraps an Engine with boundary synchronization for hosts whose
// request handling runs concurrent callers.
//
// The Engine itself is lock-free: Select and Score are read-only, Update and
// Register write. An unsynchronized read concurrent with a write could
// observe a torn (A, b) pair, so Synced serializes writers against readers
// with one RWMutex. Concurrent Selects proceed in parallel.
//
// The wrapped Engine must not be used directly while a Synced is in play.
type Synced struct {
	mu  sync.RWMutex
	eng *Engine
}

// NewSynced constructs a Synced engine. See New for configuration.
func NewSynced(dim int, opts ...Option) (*Synced, error) {
	eng, err := New(dim, opts...)
	if err != nil {
		return nil, err
	}

	return &Synced{eng: eng}, nil
}

// Sync wraps an existing Engine. The caller hands over ownership.
func Sync(eng *Engine) *Synced {
	return &Synced{eng: eng}
}

// Select picks an arm under a read lock. See Engine.Select.
func (s *Synced) Select(context []float64, arms ...string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eng.Select(context, arms...)
}

// Score evaluates one arm under a read lock. See Engine.Score.
func (s *Synced) Score(armID string, context []float64) (mean, bonus float64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eng.Score(armID, context)
}

// Update applies one observation under the write lock. See Engine.Update.
func (s *Synced) Update(armID string, context []float64, reward float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.eng.Update(armID, context, reward)
}

// Register adds arms under the write lock. See Engine.Register.
func (s *Synced) Register(arms ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eng.Register(arms...)
}

// Arms returns the registered arms under a read lock.
func (s *Synced) Arms() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eng.Arms()
}

// Snapshot exports the numeric state under a read lock, so the export is a
// consistent point-in-time view even with concurrent Updates.
func (s *Synced) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.eng.Snapshot()
}

package snapshot

import "errors"

var (
	// ErrNotFound is returned when the target holds no complete snapshot.
	// Callers fall back to regeneration instead of failing.
	ErrNotFound = errors.New("snapshot: not found")
	// ErrDeviceNotFound is returned for unknown device ids.
	ErrDeviceNotFound = errors.New("snapshot: device not found")
	// ErrNilSnapshot is returned when saving a nil snapshot.
	ErrNilSnapshot = errors.New("snapshot: nil snapshot")
)

// PersistenceError wraps an I/O or decode failure on a snapshot artifact.
// Unlike a missing snapshot it is never silently recovered by regeneration:
// serving half-written data would be worse than failing.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "snapshot: " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

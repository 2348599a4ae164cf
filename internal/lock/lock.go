// Package lock serializes access to the pet state directory across
// processes. Two gitpet invocations racing on the same state file would
// each load, mutate, and overwrite the other's save; an advisory file
// lock around the whole session prevents that.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process already owns the pet.
var ErrLocked = errors.New("pet state is in use by another gitpet process")

// LockFileName is the lock file inside the state directory.
const LockFileName = "state.lock"

// Lock is an advisory lock on a pet state directory.
type Lock struct {
	fl *flock.Flock
}

// New creates a lock for the given state directory. The directory is
// created if missing so the lock file has somewhere to live.
func New(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &Lock{fl: flock.New(filepath.Join(dir, LockFileName))}, nil
}

// Acquire attempts to take the lock without blocking. Returns ErrLocked
// when another live process holds it; stale locks from crashed processes
// are released by the OS automatically.
func (l *Lock) Acquire() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring state lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// Release drops the lock. Safe to call when not held.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.fl.Path()
}

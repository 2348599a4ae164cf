// Package state persists the pet record as a JSON document under the
// user's configuration directory.
//
// Corruption is treated identically to absence: Load never surfaces a
// parse failure to the caller, it simply reports "no state" and the
// caller starts from defaults. Saves are full atomic overwrites.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/util"
)

// StateFileName is the file holding the pet record inside the data dir.
const StateFileName = "state.json"

// Store reads and writes the pet record in a fixed directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the per-user gitpet directory
// (<UserConfigDir>/gitpet).
func NewStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locating user config dir: %w", err)
	}
	return NewStoreAt(filepath.Join(base, "gitpet")), nil
}

// NewStoreAt creates a store rooted at an explicit directory. Tests use
// this with t.TempDir().
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, StateFileName)
}

// Exists reports whether a state file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads the pet record. A missing or malformed file returns
// (nil, nil): the caller constructs defaults. Only I/O errors other than
// absence are reported.
func (s *Store) Load() (*pet.State, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var st pet.State
	if err := json.Unmarshal(data, &st); err != nil {
		// Corrupt state is recovered by starting fresh, never fatal.
		return nil, nil
	}
	return &st, nil
}

// Save writes the full record, creating the directory if needed. The
// write is atomic so concurrent readers never observe a partial file.
func (s *Store) Save(st *pet.State) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := util.AtomicWriteJSON(s.Path(), st); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// Delete removes the persisted record. Missing files are not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing state file: %w", err)
	}
	return nil
}

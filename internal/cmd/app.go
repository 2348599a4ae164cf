package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gitpet/gitpet/internal/achievements"
	"github.com/gitpet/gitpet/internal/lock"
	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/state"
)

// openStore resolves the state directory, honoring --state-dir.
func openStore() (*state.Store, error) {
	if stateDirFlag != "" {
		return state.NewStoreAt(stateDirFlag), nil
	}
	return state.NewStore()
}

// lockStore takes the cross-process lock that serializes every
// load-modify-save on the state directory. The returned release must be
// called after the final save.
func lockStore(store *state.Store) (func(), error) {
	lk, err := lock.New(store.Dir())
	if err != nil {
		return nil, err
	}
	if err := lk.Acquire(); err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, errors.New("another gitpet session is already running")
		}
		return nil, err
	}
	return func() { _ = lk.Release() }, nil
}

// loadPet loads the pet under the state lock, creating a fresh one on
// first run, and brings its vitals current. The returned pet persists
// through the store; callers must defer the release.
func loadPet(now time.Time) (*pet.Pet, *state.Store, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}

	release, err := lockStore(store)
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := store.Load()
	if err != nil {
		release()
		return nil, nil, nil, err
	}
	if st == nil {
		st = pet.NewState("", "", now)
	}

	p := pet.New(st, store)
	if err := p.ApplyDecay(now); err != nil {
		release()
		return nil, nil, nil, err
	}
	return p, store, release, nil
}

// loadBook opens the achievements book that lives next to the state file.
func loadBook(store *state.Store) *achievements.Book {
	return achievements.Load(store.Dir())
}

// confirm asks a yes/no question on stdin and defaults to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

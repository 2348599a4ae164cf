// Package pet implements the pet lifecycle state machine: time-based stat
// decay, mood derivation, death and resurrection transitions, evolution
// staging, and commit streak bookkeeping. All mutation goes through the
// Pet controller, which serializes callers and persists after every change.
package pet

import "fmt"

// Species identifies one of the available pet body types. The species only
// affects presentation (ASCII art); it has no effect on lifecycle behavior.
type Species string

// Available species.
const (
	SpeciesBlob  Species = "blob"
	SpeciesPixel Species = "pixel"
	SpeciesBotty Species = "botty"
	SpeciesOcto  Species = "octo"
	SpeciesFoxy  Species = "foxy"
)

// AllSpecies returns every valid species, in display order.
func AllSpecies() []Species {
	return []Species{SpeciesBlob, SpeciesPixel, SpeciesBotty, SpeciesOcto, SpeciesFoxy}
}

// ParseSpecies validates a species tag from user input.
func ParseSpecies(s string) (Species, error) {
	for _, sp := range AllSpecies() {
		if string(sp) == s {
			return sp, nil
		}
	}
	return "", fmt.Errorf("unknown species %q (choose one of blob, pixel, botty, octo, foxy)", s)
}

func (s Species) String() string {
	return string(s)
}

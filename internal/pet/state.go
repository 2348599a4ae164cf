package pet

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for once-per-day streak
// bookkeeping. Streaks compare dates, not timestamps, so two commits in
// the same local day count once.
const DateLayout = "2006-01-02"

// Default vitals for a newly created pet.
const defaultVital = 80

// State is the durable snapshot of a pet. Field names are stable for
// forward compatibility of the state file.
type State struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Species Species `json:"species"`

	// Vitals, each clamped to [0,100].
	Hunger    float64 `json:"hunger"`
	Happiness float64 `json:"happiness"`
	Energy    float64 `json:"energy"`

	// Lifecycle timestamps.
	BornAt           time.Time  `json:"born_at"`
	LastFed          time.Time  `json:"last_fed"`
	LastPlayed       time.Time  `json:"last_played"`
	LastActivity     time.Time  `json:"last_activity"`
	LastDecayApplied time.Time  `json:"last_decay_applied"`
	DiedAt           *time.Time `json:"died_at,omitempty"`

	// ResurrectStreak counts consecutive-day commits while dead. Nonzero
	// only when DiedAt is set (ghost mode).
	ResurrectStreak int `json:"resurrect_streak"`

	// Historical counters.
	TotalCommits       int    `json:"total_commits"`
	TotalDeaths        int    `json:"total_deaths"`
	TotalResurrections int    `json:"total_resurrections"`
	CurrentStreak      int    `json:"current_streak"`
	LongestStreak      int    `json:"longest_streak"`
	LastCommitDate     string `json:"last_commit_date,omitempty"`
}

// NewState creates a fresh pet record with default vitals and all
// timestamps set to now.
func NewState(name string, species Species, now time.Time) *State {
	if name == "" {
		name = "Pip"
	}
	if species == "" {
		species = SpeciesBlob
	}
	return &State{
		ID:               uuid.NewString(),
		Name:             name,
		Species:          species,
		Hunger:           defaultVital,
		Happiness:        defaultVital,
		Energy:           defaultVital,
		BornAt:           now,
		LastFed:          now,
		LastPlayed:       now,
		LastActivity:     now,
		LastDecayApplied: now,
	}
}

// IsDead reports whether the pet has died. Presence of DiedAt defines death.
func (s *State) IsDead() bool {
	return s.DiedAt != nil
}

// IsGhost reports whether the pet is dead and mid-resurrection.
func (s *State) IsGhost() bool {
	return s.IsDead() && s.ResurrectStreak > 0
}

// Mood derives the display mood from current vitals and death status.
func (s *State) Mood() Mood {
	return MoodFor(s.Hunger, s.Happiness, s.Energy, s.IsDead(), s.IsGhost())
}

// Stage derives the evolution stage from the cumulative commit count.
func (s *State) Stage() Stage {
	return StageFor(s.TotalCommits)
}

// Age returns how long the pet has lived. For a dead pet the age is frozen
// at the moment of death.
func (s *State) Age(now time.Time) time.Duration {
	end := now
	if s.DiedAt != nil {
		end = *s.DiedAt
	}
	age := end.Sub(s.BornAt)
	if age < 0 {
		return 0
	}
	return age
}

// clamp bounds a vital to [0,100].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

package pet

import "time"

// Decay rates in stat points per hour. Hunger drains fastest and energy
// slowest; a fully-fed pet survives roughly 5-7 days of total neglect
// (100 hunger / 0.6 per hour ≈ 166 hours).
const (
	HungerDecayRate    = 0.6
	HappinessDecayRate = 0.4
	EnergyDecayRate    = 0.2
)

// applyDecay converts wall-clock time since the last application into stat
// reduction, then checks for death. Dead pets do not decay, which also
// guarantees the death transition fires exactly once.
//
// A clock that moved backward yields zero elapsed time, never negative
// decay. LastDecayApplied always advances to now.
func applyDecay(s *State, now time.Time) {
	if s.IsDead() {
		return
	}

	elapsed := now.Sub(s.LastDecayApplied).Hours()
	if elapsed < 0 {
		elapsed = 0
	}

	s.Hunger = clamp(s.Hunger - elapsed*HungerDecayRate)
	s.Happiness = clamp(s.Happiness - elapsed*HappinessDecayRate)
	s.Energy = clamp(s.Energy - elapsed*EnergyDecayRate)
	s.LastDecayApplied = now

	if s.Hunger <= 0 {
		die(s, now)
	}
}

// die marks the pet dead from neglect and resets the live commit streak.
func die(s *State, now time.Time) {
	t := now
	s.DiedAt = &t
	s.TotalDeaths++
	s.CurrentStreak = 0
}

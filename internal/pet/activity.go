package pet

import "time"

// Kind is an activity event tag. Unknown tags are ignored rather than
// rejected so that future activity types stay forward compatible.
type Kind string

// Activity kinds. The first four arrive from the git watcher; the rest
// are direct user commands.
const (
	KindCommit Kind = "commit"
	KindPush   Kind = "push"
	KindPull   Kind = "pull"
	KindTest   Kind = "test"
	KindFeed   Kind = "feed"
	KindPlay   Kind = "play"
	KindSleep  Kind = "sleep"
)

// Effect is the stat delta an activity applies to the three vitals.
type Effect struct {
	Hunger    float64
	Happiness float64
	Energy    float64
}

// effects maps each known activity to its stat deltas.
var effects = map[Kind]Effect{
	KindCommit: {Hunger: 20, Happiness: 10, Energy: 5},
	KindPush:   {Hunger: 5, Happiness: 15, Energy: 5},
	KindPull:   {Hunger: 0, Happiness: 5, Energy: 0},
	KindTest:   {Hunger: 0, Happiness: 20, Energy: -5},
	KindFeed:   {Hunger: 30, Happiness: 5, Energy: 0},
	KindPlay:   {Hunger: -5, Happiness: 25, Energy: -10},
	KindSleep:  {Hunger: -5, Happiness: 5, Energy: 30},
}

// applyActivity maps an activity to stat deltas and side effects, and
// returns the new evolution stage if the activity caused an evolution.
//
// Dead pets accept only commits, which route to the resurrection protocol
// instead of stat changes. Evolution is never evaluated while dead.
func applyActivity(s *State, kind Kind, now time.Time) *Stage {
	eff, known := effects[kind]
	if !known {
		return nil
	}

	if s.IsDead() {
		if kind == KindCommit {
			resurrectCommit(s, now)
		}
		return nil
	}

	s.Hunger = clamp(s.Hunger + eff.Hunger)
	s.Happiness = clamp(s.Happiness + eff.Happiness)
	s.Energy = clamp(s.Energy + eff.Energy)
	s.LastActivity = now

	switch kind {
	case KindCommit:
		return commitProtocol(s, now)
	case KindFeed:
		s.LastFed = now
	case KindPlay:
		s.LastPlayed = now
	}
	return nil
}

// commitProtocol records a commit: bumps the total, advances the
// once-per-day streak, and reports an evolution when the stage changes.
func commitProtocol(s *State, now time.Time) *Stage {
	oldStage := s.Stage()
	s.TotalCommits++
	newStage := s.Stage()

	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	switch s.LastCommitDate {
	case today:
		// Already counted today.
	case yesterday:
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}
	s.LastCommitDate = today
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	if newStage != oldStage {
		return &newStage
	}
	return nil
}

// ResurrectionDays is how many consecutive daily commits bring a dead pet
// back to life.
const ResurrectionDays = 3

// resurrectCommit advances the resurrection protocol for a commit made
// while dead. Same-day commits are no-ops; a skipped day restarts the
// streak at 1; reaching ResurrectionDays completes the resurrection.
func resurrectCommit(s *State, now time.Time) {
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	if s.LastCommitDate == today {
		return
	}
	if s.LastCommitDate == yesterday || s.ResurrectStreak == 0 {
		s.ResurrectStreak++
	} else {
		s.ResurrectStreak = 1
	}

	s.LastCommitDate = today
	s.TotalCommits++

	if s.ResurrectStreak >= ResurrectionDays {
		resurrect(s)
	}
}

// resurrect brings the pet back to life at half vitals. The commit streak
// restarts at the three days it took to come back.
func resurrect(s *State) {
	s.DiedAt = nil
	s.ResurrectStreak = 0
	s.Hunger = 50
	s.Happiness = 50
	s.Energy = 50
	s.TotalResurrections++
	s.CurrentStreak = ResurrectionDays
}

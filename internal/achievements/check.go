package achievements

import (
	"time"

	"github.com/gitpet/gitpet/internal/pet"
)

// CloseCallHunger is the hunger threshold below which a feed counts as a
// close call.
const CloseCallHunger = 10.0

// speedDemonWindow and speedDemonCount define the burst-commit check.
const (
	speedDemonWindow = time.Hour
	speedDemonCount  = 10
)

// happyStreakDays is how long the pet must stay happy for pet_whisperer.
const happyStreakDays = 30

// CheckState awards every state-derived achievement the pet now
// qualifies for and returns the newly earned ones in registry order.
func (b *Book) CheckState(s pet.State, now time.Time) []Achievement {
	var earned []Achievement
	award := func(id string, qualifies bool) {
		if !qualifies {
			return
		}
		if a, ok := b.Award(id, now); ok {
			earned = append(earned, a)
		}
	}

	award("first_commit", s.TotalCommits >= 1)
	award("ten_commits", s.TotalCommits >= 10)
	award("twenty_five_commits", s.TotalCommits >= 25)
	award("fifty_commits", s.TotalCommits >= 50)
	award("hundred_commits", s.TotalCommits >= 100)
	award("two_fifty_commits", s.TotalCommits >= 250)
	award("five_hundred_commits", s.TotalCommits >= 500)
	award("thousand_commits", s.TotalCommits >= 1000)

	award("streak_3", s.LongestStreak >= 3)
	award("streak_7", s.LongestStreak >= 7)
	award("streak_14", s.LongestStreak >= 14)
	award("streak_30", s.LongestStreak >= 30)
	award("streak_60", s.LongestStreak >= 60)
	award("streak_100", s.LongestStreak >= 100)
	award("streak_365", s.LongestStreak >= 365)

	award("full_stats", s.Hunger >= 100 && s.Happiness >= 100 && s.Energy >= 100)
	award("resurrection", s.TotalResurrections >= 1)
	award("three_resurrections", s.TotalResurrections >= 3)
	award("five_deaths", s.TotalDeaths >= 5)

	// Stage thresholds mirror the evolution ladder.
	award("evolve_hatchling", s.TotalCommits >= 10)
	award("evolve_juvenile", s.TotalCommits >= 50)
	award("evolve_adult", s.TotalCommits >= 200)
	award("evolve_elder", s.TotalCommits >= 500)

	earned = append(earned, b.checkHappyStreak(s, now)...)

	return earned
}

// OnCommit awards time-of-day and burst achievements for a commit made at
// the given instant, then runs the state checks.
func (b *Book) OnCommit(s pet.State, now time.Time) []Achievement {
	var earned []Achievement
	award := func(id string, qualifies bool) {
		if !qualifies {
			return
		}
		if a, ok := b.Award(id, now); ok {
			earned = append(earned, a)
		}
	}

	hour := now.Hour()
	award("night_owl", hour >= 0 && hour < 4)
	award("early_bird", hour >= 5 && hour < 7)
	award("weekend_warrior", now.Weekday() == time.Saturday || now.Weekday() == time.Sunday)
	award("midnight_coder", hour == 0 && now.Minute() == 0)
	award("holiday_hacker", (now.Month() == time.December && now.Day() == 25) ||
		(now.Month() == time.January && now.Day() == 1))

	award("speed_demon", b.recordCommit(now) >= speedDemonCount)

	return append(earned, b.CheckState(s, now)...)
}

// OnCare awards care achievements for a manual feed or play action.
// hungerBefore is the hunger level before the action applied.
func (b *Book) OnCare(kind pet.Kind, hungerBefore float64, now time.Time) []Achievement {
	var earned []Achievement
	award := func(id string, qualifies bool) {
		if !qualifies {
			return
		}
		if a, ok := b.Award(id, now); ok {
			earned = append(earned, a)
		}
	}

	switch kind {
	case pet.KindFeed:
		award("first_feed", true)
		award("close_call", hungerBefore < CloseCallHunger)
	case pet.KindPlay:
		award("first_play", true)
	}

	return earned
}

// recordCommit appends a commit instant to the rolling window and returns
// how many commits landed within the window.
func (b *Book) recordCommit(now time.Time) int {
	kept := b.data.RecentCommits[:0]
	for _, t := range b.data.RecentCommits {
		if now.Sub(t) < speedDemonWindow {
			kept = append(kept, t)
		}
	}
	b.data.RecentCommits = append(kept, now)
	return len(b.data.RecentCommits)
}

// checkHappyStreak tracks how long the pet has stayed happy. The streak
// survives restarts through the book file; any unhappy observation
// resets it.
func (b *Book) checkHappyStreak(s pet.State, now time.Time) []Achievement {
	mood := s.Mood()
	if mood != pet.MoodEcstatic && mood != pet.MoodHappy {
		b.data.HappySinceDate = ""
		return nil
	}

	today := now.Format(pet.DateLayout)
	if b.data.HappySinceDate == "" {
		b.data.HappySinceDate = today
		return nil
	}

	// The date was recorded in the caller's zone; parse it there, or the
	// 30-day mark drifts by the UTC offset.
	since, err := time.ParseInLocation(pet.DateLayout, b.data.HappySinceDate, now.Location())
	if err != nil {
		b.data.HappySinceDate = today
		return nil
	}

	if now.Sub(since) >= happyStreakDays*24*time.Hour {
		if a, ok := b.Award("pet_whisperer", now); ok {
			return []Achievement{a}
		}
	}
	return nil
}

package pet

import (
	"testing"
	"time"
)

func newDeadState() *State {
	s := newTestState()
	died := testBase
	s.DiedAt = &died
	s.Hunger = 0
	s.TotalDeaths = 1
	s.CurrentStreak = 0
	return s
}

func TestResurrection_ThreeConsecutiveDays(t *testing.T) {
	p := New(newDeadState(), nil)
	day := func(n int) time.Time { return testBase.AddDate(0, 0, n).Add(time.Hour) }

	mustCommit(t, p, day(1))
	if snap := p.Snapshot(); snap.ResurrectStreak != 1 || !snap.IsGhost() {
		t.Fatalf("after day 1: streak = %d, ghost = %v", snap.ResurrectStreak, snap.IsGhost())
	}

	mustCommit(t, p, day(2))
	if snap := p.Snapshot(); snap.ResurrectStreak != 2 {
		t.Fatalf("after day 2: streak = %d, want 2", snap.ResurrectStreak)
	}

	mustCommit(t, p, day(3))
	snap := p.Snapshot()
	if snap.IsDead() {
		t.Fatal("pet still dead after three consecutive daily commits")
	}
	if snap.ResurrectStreak != 0 {
		t.Errorf("ResurrectStreak = %d, want 0", snap.ResurrectStreak)
	}
	if snap.Hunger != 50 || snap.Happiness != 50 || snap.Energy != 50 {
		t.Errorf("vitals = %v/%v/%v, want 50/50/50", snap.Hunger, snap.Happiness, snap.Energy)
	}
	if snap.TotalResurrections != 1 {
		t.Errorf("TotalResurrections = %d, want 1", snap.TotalResurrections)
	}
	if snap.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", snap.CurrentStreak)
	}
}

func TestResurrection_SameDayCommitNoOp(t *testing.T) {
	p := New(newDeadState(), nil)
	now := testBase.AddDate(0, 0, 1)

	mustCommit(t, p, now)
	before := p.Snapshot()
	mustCommit(t, p, now.Add(2*time.Hour))
	after := p.Snapshot()

	if after.ResurrectStreak != before.ResurrectStreak {
		t.Errorf("same-day commit advanced streak: %d -> %d", before.ResurrectStreak, after.ResurrectStreak)
	}
	if after.TotalCommits != before.TotalCommits {
		t.Errorf("same-day commit counted twice: %d -> %d", before.TotalCommits, after.TotalCommits)
	}
}

func TestResurrection_SkippedDayRestartsAtOne(t *testing.T) {
	p := New(newDeadState(), nil)
	day := func(n int) time.Time { return testBase.AddDate(0, 0, n) }

	mustCommit(t, p, day(1))
	mustCommit(t, p, day(2))
	// Day 3 skipped.
	mustCommit(t, p, day(4))

	snap := p.Snapshot()
	if snap.ResurrectStreak != 1 {
		t.Errorf("ResurrectStreak = %d, want 1 after skipped day", snap.ResurrectStreak)
	}
	if !snap.IsDead() {
		t.Error("pet resurrected despite broken streak")
	}
}

func TestResurrection_CommitsStillCounted(t *testing.T) {
	p := New(newDeadState(), nil)
	mustCommit(t, p, testBase.AddDate(0, 0, 1))

	if got := p.Snapshot().TotalCommits; got != 1 {
		t.Errorf("TotalCommits = %d, want 1", got)
	}
}

func TestStartResurrection(t *testing.T) {
	t.Run("dead non-ghost pet", func(t *testing.T) {
		p := New(newDeadState(), nil)
		if err := p.StartResurrection(); err != nil {
			t.Fatalf("StartResurrection: %v", err)
		}
		if p.Snapshot().ResurrectStreak != 0 {
			t.Error("ResurrectStreak changed")
		}
	})

	t.Run("ghost pet is untouched", func(t *testing.T) {
		s := newDeadState()
		s.ResurrectStreak = 2
		p := New(s, nil)
		if err := p.StartResurrection(); err != nil {
			t.Fatalf("StartResurrection: %v", err)
		}
		if p.Snapshot().ResurrectStreak != 2 {
			t.Error("ghost streak was reset")
		}
	})

	t.Run("live pet is a no-op", func(t *testing.T) {
		p := New(newTestState(), nil)
		if err := p.StartResurrection(); err != nil {
			t.Fatalf("StartResurrection: %v", err)
		}
		if p.IsDead() || p.IsGhost() {
			t.Error("live pet changed lifecycle state")
		}
	})
}

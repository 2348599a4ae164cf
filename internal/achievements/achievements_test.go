package achievements

import (
	"testing"
	"time"

	"github.com/gitpet/gitpet/internal/pet"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) // a Monday

func newTestState() pet.State {
	return *pet.NewState("Pip", pet.SpeciesBlob, testNow)
}

func TestRegistryIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Name == "" || a.Description == "" || a.Icon == "" {
			t.Errorf("achievement %q has empty display fields", a.ID)
		}
		if a.Tier.Emoji() == "" || a.Tier.Color() == "" {
			t.Errorf("achievement %q has unknown tier %q", a.ID, a.Tier)
		}
	}
}

func TestVisibleExcludesHidden(t *testing.T) {
	for _, a := range Visible() {
		if a.Hidden {
			t.Errorf("Visible() returned hidden achievement %q", a.ID)
		}
	}
	if len(Visible()) == len(All()) {
		t.Error("registry should contain hidden achievements")
	}
}

func TestAwardFiresOnce(t *testing.T) {
	b := Load(t.TempDir())

	if _, ok := b.Award("first_commit", testNow); !ok {
		t.Fatal("first award should succeed")
	}
	if _, ok := b.Award("first_commit", testNow); ok {
		t.Error("second award of same id should be rejected")
	}
	if _, ok := b.Award("no_such_achievement", testNow); ok {
		t.Error("unknown id should be rejected")
	}
}

func TestBookRoundTrip(t *testing.T) {
	dir := t.TempDir()

	b := Load(dir)
	b.Award("streak_3", testNow)
	b.Award("first_feed", testNow.Add(time.Hour))
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded := Load(dir)
	if !reloaded.Has("streak_3") || !reloaded.Has("first_feed") {
		t.Error("reloaded book lost earned achievements")
	}
	if reloaded.EarnedCount() != 2 {
		t.Errorf("EarnedCount() = %d, want 2", reloaded.EarnedCount())
	}
	at, ok := reloaded.EarnedAt("streak_3")
	if !ok || !at.Equal(testNow) {
		t.Errorf("EarnedAt(streak_3) = (%v, %v), want (%v, true)", at, ok, testNow)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	b := Load(t.TempDir())
	if b.EarnedCount() != 0 {
		t.Errorf("empty book has %d earned", b.EarnedCount())
	}
}

func TestCheckState_CommitMilestones(t *testing.T) {
	tests := []struct {
		commits int
		wantIDs []string
	}{
		{0, nil},
		{1, []string{"first_commit"}},
		{10, []string{"first_commit", "ten_commits", "evolve_hatchling"}},
		{100, []string{"first_commit", "ten_commits", "twenty_five_commits",
			"fifty_commits", "hundred_commits", "evolve_hatchling", "evolve_juvenile"}},
	}

	for _, tt := range tests {
		b := Load(t.TempDir())
		s := newTestState()
		s.TotalCommits = tt.commits

		earned := b.CheckState(s, testNow)

		got := map[string]bool{}
		for _, a := range earned {
			got[a.ID] = true
		}
		if len(got) != len(tt.wantIDs) {
			t.Errorf("commits=%d: earned %v, want %v", tt.commits, earned, tt.wantIDs)
			continue
		}
		for _, id := range tt.wantIDs {
			if !got[id] {
				t.Errorf("commits=%d: missing %q in %v", tt.commits, id, earned)
			}
		}
	}
}

func TestCheckState_DoesNotRefire(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()
	s.TotalCommits = 10

	first := b.CheckState(s, testNow)
	if len(first) == 0 {
		t.Fatal("expected initial awards")
	}
	second := b.CheckState(s, testNow)
	if len(second) != 0 {
		t.Errorf("second check re-awarded %v", second)
	}
}

func TestCheckState_Streaks(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()
	s.LongestStreak = 14

	earned := b.CheckState(s, testNow)

	got := map[string]bool{}
	for _, a := range earned {
		got[a.ID] = true
	}
	for _, id := range []string{"streak_3", "streak_7", "streak_14"} {
		if !got[id] {
			t.Errorf("missing %q for longest streak 14", id)
		}
	}
	if got["streak_30"] {
		t.Error("streak_30 awarded at streak 14")
	}
}

func TestCheckState_FullStats(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()
	s.Hunger, s.Happiness, s.Energy = 100, 100, 100

	earned := b.CheckState(s, testNow)
	found := false
	for _, a := range earned {
		if a.ID == "full_stats" {
			found = true
		}
	}
	if !found {
		t.Error("full_stats not awarded at 100/100/100")
	}
}

func TestOnCommit_TimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		at      time.Time
		wantID  string
		skipIDs []string
	}{
		{"night owl", time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC), "night_owl", nil},
		{"early bird", time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC), "early_bird", nil},
		{"weekend", time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC), "weekend_warrior", nil},
		{"midnight", time.Date(2025, 3, 10, 0, 0, 30, 0, time.UTC), "midnight_coder", nil},
		{"christmas", time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC), "holiday_hacker", nil},
		{"new year", time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), "holiday_hacker", nil},
		{"plain tuesday noon", time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC), "",
			[]string{"night_owl", "early_bird", "weekend_warrior", "midnight_coder", "holiday_hacker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Load(t.TempDir())
			s := newTestState()

			earned := b.OnCommit(s, tt.at)
			got := map[string]bool{}
			for _, a := range earned {
				got[a.ID] = true
			}

			if tt.wantID != "" && !got[tt.wantID] {
				t.Errorf("missing %q in %v", tt.wantID, earned)
			}
			for _, id := range tt.skipIDs {
				if got[id] {
					t.Errorf("unexpected %q in %v", id, earned)
				}
			}
		})
	}
}

func TestOnCommit_SpeedDemon(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()

	start := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 9; i++ {
		earned := b.OnCommit(s, start.Add(time.Duration(i)*time.Minute))
		for _, a := range earned {
			if a.ID == "speed_demon" {
				t.Fatalf("speed_demon fired after %d commits", i+1)
			}
		}
	}

	earned := b.OnCommit(s, start.Add(9*time.Minute))
	found := false
	for _, a := range earned {
		if a.ID == "speed_demon" {
			found = true
		}
	}
	if !found {
		t.Error("speed_demon not awarded on 10th commit within the hour")
	}
}

func TestOnCommit_SpeedDemonWindowExpires(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()

	start := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	// 9 commits, then a long gap, then one more. Window resets.
	for i := 0; i < 9; i++ {
		b.OnCommit(s, start.Add(time.Duration(i)*time.Minute))
	}
	earned := b.OnCommit(s, start.Add(2*time.Hour))
	for _, a := range earned {
		if a.ID == "speed_demon" {
			t.Error("speed_demon awarded across an expired window")
		}
	}
}

func TestOnCare(t *testing.T) {
	b := Load(t.TempDir())

	earned := b.OnCare(pet.KindFeed, 50, testNow)
	got := map[string]bool{}
	for _, a := range earned {
		got[a.ID] = true
	}
	if !got["first_feed"] {
		t.Error("first_feed not awarded")
	}
	if got["close_call"] {
		t.Error("close_call awarded at hunger 50")
	}

	earned = b.OnCare(pet.KindFeed, 5, testNow)
	found := false
	for _, a := range earned {
		if a.ID == "close_call" {
			found = true
		}
	}
	if !found {
		t.Error("close_call not awarded at hunger 5")
	}

	earned = b.OnCare(pet.KindPlay, 50, testNow)
	if len(earned) != 1 || earned[0].ID != "first_play" {
		t.Errorf("play earned %v, want first_play", earned)
	}
}

func TestHappyStreak(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()
	s.Hunger, s.Happiness, s.Energy = 95, 95, 95

	// First happy observation starts the streak.
	if earned := b.CheckState(s, testNow); len(earned) != 0 {
		t.Fatalf("unexpected awards on first observation: %v", earned)
	}

	// Still happy 30 days later.
	earned := b.CheckState(s, testNow.AddDate(0, 0, 30))
	found := false
	for _, a := range earned {
		if a.ID == "pet_whisperer" {
			found = true
		}
	}
	if !found {
		t.Error("pet_whisperer not awarded after 30 happy days")
	}
}

func TestHappyStreak_LocalZoneDates(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()
	s.Hunger, s.Happiness, s.Energy = 95, 95, 95

	// Far east of UTC the recorded date must still count full local days.
	loc := time.FixedZone("UTC+14", 14*60*60)
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	b.CheckState(s, start)

	earned := b.CheckState(s, start.AddDate(0, 0, 30))
	found := false
	for _, a := range earned {
		if a.ID == "pet_whisperer" {
			found = true
		}
	}
	if !found {
		t.Error("pet_whisperer not awarded after 30 happy days in a non-UTC zone")
	}
}

func TestHappyStreak_ResetOnUnhappy(t *testing.T) {
	b := Load(t.TempDir())
	s := newTestState()
	s.Hunger, s.Happiness, s.Energy = 95, 95, 95

	b.CheckState(s, testNow)

	// Pet dips to neutral mid-streak.
	sad := s
	sad.Hunger, sad.Happiness, sad.Energy = 55, 55, 55
	b.CheckState(sad, testNow.AddDate(0, 0, 15))

	earned := b.CheckState(s, testNow.AddDate(0, 0, 30))
	for _, a := range earned {
		if a.ID == "pet_whisperer" {
			t.Error("pet_whisperer awarded despite streak reset")
		}
	}
}

package pet

import (
	"testing"
	"time"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState("", "", testBase)

	if s.Name != "Pip" {
		t.Errorf("Name = %q, want Pip", s.Name)
	}
	if s.Species != SpeciesBlob {
		t.Errorf("Species = %v, want blob", s.Species)
	}
	if s.Hunger != 80 || s.Happiness != 80 || s.Energy != 80 {
		t.Errorf("vitals = %v/%v/%v, want 80/80/80", s.Hunger, s.Happiness, s.Energy)
	}
	if s.ID == "" {
		t.Error("ID not assigned")
	}
	if s.IsDead() || s.IsGhost() {
		t.Error("new pet should be alive")
	}
	for _, ts := range []time.Time{s.BornAt, s.LastFed, s.LastPlayed, s.LastActivity, s.LastDecayApplied} {
		if !ts.Equal(testBase) {
			t.Errorf("timestamp = %v, want %v", ts, testBase)
		}
	}
}

func TestNewState_InitialMoodIsPositive(t *testing.T) {
	s := NewState("Pip", SpeciesBlob, testBase)
	switch s.Mood() {
	case MoodHappy, MoodContent, MoodEcstatic:
	default:
		t.Errorf("new pet mood = %v, want a positive mood", s.Mood())
	}
}

func TestState_Age(t *testing.T) {
	s := NewState("Pip", SpeciesBlob, testBase)

	if got := s.Age(testBase.Add(3 * time.Hour)); got != 3*time.Hour {
		t.Errorf("Age = %v, want 3h", got)
	}

	// Death freezes age.
	died := testBase.Add(48 * time.Hour)
	s.DiedAt = &died
	if got := s.Age(testBase.Add(200 * time.Hour)); got != 48*time.Hour {
		t.Errorf("dead Age = %v, want 48h", got)
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{90 * time.Second, "1 minute"},
		{12 * time.Minute, "12 minutes"},
		{time.Hour, "1 hour"},
		{5 * time.Hour, "5 hours"},
		{26 * time.Hour, "1 day, 2 hours"},
		{49 * time.Hour, "2 days, 1 hour"},
	}

	for _, tt := range tests {
		if got := FormatAge(tt.age); got != tt.want {
			t.Errorf("FormatAge(%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestParseSpecies(t *testing.T) {
	for _, sp := range AllSpecies() {
		got, err := ParseSpecies(string(sp))
		if err != nil || got != sp {
			t.Errorf("ParseSpecies(%q) = (%v, %v)", sp, got, err)
		}
	}

	if _, err := ParseSpecies("dragon"); err == nil {
		t.Error("ParseSpecies accepted unknown species")
	}
}

func TestChooser_Message(t *testing.T) {
	c := NewSeededChooser(7)
	s := NewState("Pip", SpeciesBlob, testBase)

	if msg := c.Message(s); msg == "" {
		t.Error("empty message for live pet")
	}

	// Ghost messages include resurrection progress in the pool.
	died := testBase
	s.DiedAt = &died
	s.ResurrectStreak = 2
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[c.Message(s)] = true
	}
	if !seen["Resurrection: 2/3 days"] {
		t.Error("ghost pool never produced the progress message")
	}
}

func TestChooser_Deterministic(t *testing.T) {
	s := NewState("Pip", SpeciesBlob, testBase)
	a := NewSeededChooser(42)
	b := NewSeededChooser(42)

	for i := 0; i < 20; i++ {
		if ma, mb := a.Message(s), b.Message(s); ma != mb {
			t.Fatalf("seeded choosers diverged at %d: %q vs %q", i, ma, mb)
		}
	}
}

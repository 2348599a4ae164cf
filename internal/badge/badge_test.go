package badge

import (
	"strings"
	"testing"
	"time"

	"github.com/gitpet/gitpet/internal/pet"
)

func newTestState() pet.State {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s := pet.NewState("Pip", pet.SpeciesBlob, now)
	s.TotalCommits = 42
	return *s
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"markdown", FormatMarkdown, false},
		{"svg", FormatSVG, false},
		{"SVG", FormatSVG, false},
		{"png", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextBadge(t *testing.T) {
	s := newTestState()
	out := Generate(s, FormatText)

	for _, want := range []string{"Pip the Blob", "Hunger: 80%", "Happiness: 80%", "Energy: 80%", "Commits: 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("text badge missing %q:\n%s", want, out)
		}
	}
}

func TestTextBadge_Dead(t *testing.T) {
	s := newTestState()
	died := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	s.DiedAt = &died
	out := Generate(s, FormatText)

	if !strings.Contains(out, "💀") {
		t.Errorf("dead badge missing skull:\n%s", out)
	}
	if strings.Contains(out, "Hunger:") {
		t.Errorf("dead badge should omit vitals:\n%s", out)
	}
}

func TestMarkdownBadge(t *testing.T) {
	s := newTestState()
	out := Generate(s, FormatMarkdown)

	for _, want := range []string{"<!-- gitpet badge -->", "| Hunger | Happiness | Energy | Commits |", "| 80% | 80% | 80% | 42 |"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown badge missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownBadge_Dead(t *testing.T) {
	s := newTestState()
	died := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	s.DiedAt = &died
	out := Generate(s, FormatMarkdown)

	if !strings.Contains(out, "DECEASED") || !strings.Contains(out, "Rest in peace") {
		t.Errorf("dead markdown badge wrong:\n%s", out)
	}
}

func TestSVGBadge(t *testing.T) {
	s := newTestState()
	s.Hunger = 95
	s.Happiness = 95
	s.Energy = 95
	out := Generate(s, FormatSVG)

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("svg badge not well-formed:\n%s", out)
	}
	// Ecstatic border color.
	if !strings.Contains(out, MoodColor(pet.MoodEcstatic)) {
		t.Errorf("svg badge missing mood color %s:\n%s", MoodColor(pet.MoodEcstatic), out)
	}
	if !strings.Contains(out, ">95%<") {
		t.Errorf("svg badge missing stat percentage:\n%s", out)
	}
}

func TestSVGBadge_Ghost(t *testing.T) {
	s := newTestState()
	died := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	s.DiedAt = &died
	s.ResurrectStreak = 1
	out := Generate(s, FormatSVG)

	// Ghosts get the full badge with the ghost accent, not the memorial.
	if strings.Contains(out, "DECEASED") {
		t.Errorf("ghost badge should not be the memorial variant:\n%s", out)
	}
	if !strings.Contains(out, MoodColor(pet.MoodGhost)) {
		t.Errorf("ghost badge missing ghost color:\n%s", out)
	}
}

func TestMoodColor_Fallback(t *testing.T) {
	if MoodColor(pet.Mood("bored")) != "#6b7280" {
		t.Errorf("unknown mood should use the gray fallback")
	}
}

package art

import (
	"strings"
	"testing"

	"github.com/gitpet/gitpet/internal/pet"
)

func TestEverySpeciesHasEveryMood(t *testing.T) {
	moods := []pet.Mood{
		pet.MoodEcstatic, pet.MoodHappy, pet.MoodContent, pet.MoodNeutral,
		pet.MoodSad, pet.MoodHungry, pet.MoodTired, pet.MoodCritical,
		pet.MoodDead, pet.MoodGhost,
	}

	for _, species := range pet.AllSpecies() {
		for _, mood := range moods {
			t.Run(string(species)+"/"+string(mood), func(t *testing.T) {
				a := For(species, mood)
				if strings.TrimSpace(a) == "" {
					t.Errorf("For(%v, %v) is blank", species, mood)
				}
			})
		}
	}
}

func TestUnknownSpeciesFallsBackToBlob(t *testing.T) {
	got := For(pet.Species("dragon"), pet.MoodHappy)
	want := For(pet.SpeciesBlob, pet.MoodHappy)
	if got != want {
		t.Errorf("unknown species should render blob art")
	}
}

func TestUnknownMoodFallsBackToNeutral(t *testing.T) {
	got := For(pet.SpeciesPixel, pet.Mood("bored"))
	want := For(pet.SpeciesPixel, pet.MoodNeutral)
	if got != want {
		t.Errorf("unknown mood should render neutral art")
	}
}

func TestMoodsRenderDistinctArt(t *testing.T) {
	happy := For(pet.SpeciesBotty, pet.MoodHappy)
	dead := For(pet.SpeciesBotty, pet.MoodDead)
	if happy == dead {
		t.Errorf("happy and dead portraits should differ")
	}
}

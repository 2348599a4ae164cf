package pet

// Mood is the display mood derived from current vitals and death status.
type Mood string

// Moods, roughly best to worst, plus the two death states.
const (
	MoodEcstatic Mood = "ecstatic"
	MoodHappy    Mood = "happy"
	MoodContent  Mood = "content"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodHungry   Mood = "hungry"
	MoodTired    Mood = "tired"
	MoodCritical Mood = "critical"
	MoodDead     Mood = "dead"
	MoodGhost    Mood = "ghost"
)

// moodEmoji maps moods to display emoji.
var moodEmoji = map[Mood]string{
	MoodEcstatic: "🤩",
	MoodHappy:    "😊",
	MoodContent:  "🙂",
	MoodNeutral:  "😐",
	MoodSad:      "😢",
	MoodHungry:   "🍕",
	MoodTired:    "😴",
	MoodCritical: "😰",
	MoodDead:     "💀",
	MoodGhost:    "👻",
}

// MoodFor classifies the current mood. The average drives the top bands;
// below an average of 30 the most critical individual stat wins, so a
// starving pet reads "hungry" rather than a generic "sad".
func MoodFor(hunger, happiness, energy float64, dead, ghost bool) Mood {
	if dead {
		if ghost {
			return MoodGhost
		}
		return MoodDead
	}

	avg := (hunger + happiness + energy) / 3

	switch {
	case avg >= 90:
		return MoodEcstatic
	case avg >= 70:
		return MoodHappy
	case avg >= 50:
		return MoodContent
	case avg >= 30:
		return MoodNeutral
	case hunger < 20:
		return MoodHungry
	case energy < 20:
		return MoodTired
	case avg < 20:
		return MoodCritical
	default:
		return MoodSad
	}
}

func (m Mood) String() string {
	return string(m)
}

// Emoji returns the display emoji for the mood.
func (m Mood) Emoji() string {
	return moodEmoji[m]
}

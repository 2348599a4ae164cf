package pet

import (
	"fmt"
	"math/rand/v2"
)

// moodMessages holds the flavor-text pool for each mood.
var moodMessages = map[Mood][]string{
	MoodEcstatic: {
		"I LOVE YOU! 🎉",
		"Best. Day. EVER!",
		"*does a happy dance*",
		"You're on fire today! 🔥",
	},
	MoodHappy: {
		"Life is good! 😊",
		"Thanks for the commits!",
		"*wags tail*",
		"You're awesome!",
	},
	MoodContent: {
		"Doing alright!",
		"Keep up the good work!",
		"*purrs contentedly*",
		"Nice and cozy here.",
	},
	MoodNeutral: {
		"Hey there.",
		"What's up?",
		"*looks around*",
		"Could use some attention...",
	},
	MoodSad: {
		"I miss you... 😢",
		"It's been a while...",
		"*sighs*",
		"Remember me?",
	},
	MoodHungry: {
		"SO HUNGRY! 🍕",
		"Feed me! (commit something!)",
		"*stomach growls*",
		"Is that... a commit I smell?",
	},
	MoodTired: {
		"So... tired... 😴",
		"*yawns*",
		"Need... sleep...",
		"Long day, huh?",
	},
	MoodCritical: {
		"I'm not doing so well...",
		"Please... commit something...",
		"*weakly waves*",
		"Don't let me die! 😰",
	},
	MoodDead: {
		"...",
		"💀",
		"*silence*",
		"I trusted you...",
	},
	MoodGhost: {
		"I'm still here... barely",
		"*floats spookily* 👻",
		"Keep committing to bring me back!",
	},
}

// Chooser selects flavor messages. The random source is injectable so
// tests can pin the selection.
type Chooser struct {
	rng *rand.Rand
}

// NewChooser creates a message chooser with the default random source.
func NewChooser() *Chooser {
	return &Chooser{}
}

// NewSeededChooser creates a deterministic chooser for tests.
func NewSeededChooser(seed uint64) *Chooser {
	return &Chooser{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Message picks a flavor message for the pet's current mood. Ghost pets
// additionally report resurrection progress.
func (c *Chooser) Message(s *State) string {
	mood := s.Mood()
	pool := moodMessages[mood]
	if mood == MoodGhost {
		pool = append(pool, fmt.Sprintf("Resurrection: %d/%d days", s.ResurrectStreak, ResurrectionDays))
	}
	if len(pool) == 0 {
		return "..."
	}
	return pool[c.intN(len(pool))]
}

func (c *Chooser) intN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}

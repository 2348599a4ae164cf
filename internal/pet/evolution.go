package pet

// Stage is a life-cycle tier derived purely from the cumulative commit
// count. Stages only move forward: totalCommits never decreases, so the
// stage is monotonic non-decreasing over a pet's life.
type Stage string

// Evolution stages, in ascending order.
const (
	StageEgg       Stage = "egg"
	StageHatchling Stage = "hatchling"
	StageJuvenile  Stage = "juvenile"
	StageAdult     Stage = "adult"
	StageElder     Stage = "elder"
)

// stageThresholds maps each stage to the commit count required to reach it.
// The stage for a given count is the highest threshold not exceeding it.
var stageThresholds = []struct {
	Stage     Stage
	Threshold int
}{
	{StageEgg, 0},
	{StageHatchling, 10},
	{StageJuvenile, 50},
	{StageAdult, 200},
	{StageElder, 500},
}

// stageEmoji maps stages to their display emoji.
var stageEmoji = map[Stage]string{
	StageEgg:       "🥚",
	StageHatchling: "🐣",
	StageJuvenile:  "🐥",
	StageAdult:     "🐤",
	StageElder:     "👑",
}

// StageFor returns the evolution stage for a cumulative commit count.
func StageFor(totalCommits int) Stage {
	stage := StageEgg
	for _, st := range stageThresholds {
		if totalCommits >= st.Threshold {
			stage = st.Stage
		}
	}
	return stage
}

// CommitsToNext returns how many more commits are needed to reach the next
// stage. The second return is false at the terminal (elder) stage.
func CommitsToNext(totalCommits int) (int, bool) {
	for _, st := range stageThresholds {
		if totalCommits < st.Threshold {
			return st.Threshold - totalCommits, true
		}
	}
	return 0, false
}

// StageProgress reports how far through its current stage the pet is, as
// a percentage of the commits between the stage's threshold and the next.
// The second return is false at the terminal (elder) stage.
func StageProgress(totalCommits int) (int, bool) {
	reached := 0
	for _, st := range stageThresholds {
		if totalCommits < st.Threshold {
			return (totalCommits - reached) * 100 / (st.Threshold - reached), true
		}
		reached = st.Threshold
	}
	return 100, false
}

func (s Stage) String() string {
	return string(s)
}

// Emoji returns the display emoji for the stage.
func (s Stage) Emoji() string {
	if e, ok := stageEmoji[s]; ok {
		return e
	}
	return stageEmoji[StageEgg]
}

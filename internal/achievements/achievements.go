// Package achievements defines the achievement registry and the earned
// record book. Definitions are static; progress lives in a JSON book next
// to the pet's state file.
package achievements

// Tier is an achievement rarity tier.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

var tierEmoji = map[Tier]string{
	TierBronze:   "🥉",
	TierSilver:   "🥈",
	TierGold:     "🥇",
	TierPlatinum: "💎",
	TierDiamond:  "👑",
}

var tierColor = map[Tier]string{
	TierBronze:   "#cd7f32",
	TierSilver:   "#c0c0c0",
	TierGold:     "#ffd700",
	TierPlatinum: "#e5e4e2",
	TierDiamond:  "#b9f2ff",
}

// Emoji returns the tier's medal emoji.
func (t Tier) Emoji() string { return tierEmoji[t] }

// Color returns the tier's display color.
func (t Tier) Color() string { return tierColor[t] }

// Achievement is a single achievement definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Icon        string
	Hidden      bool
}

// registry holds every achievement in display order.
var registry = []Achievement{
	// Commit milestones
	{ID: "first_commit", Name: "First Commit", Description: "Feed your pet for the first time", Tier: TierBronze, Icon: "🎉"},
	{ID: "ten_commits", Name: "Getting Started", Description: "Reach 10 total commits", Tier: TierBronze, Icon: "📝"},
	{ID: "twenty_five_commits", Name: "Quarter Century", Description: "Reach 25 total commits", Tier: TierBronze, Icon: "🔢"},
	{ID: "fifty_commits", Name: "Half Century", Description: "Reach 50 total commits", Tier: TierSilver, Icon: "🎯"},
	{ID: "hundred_commits", Name: "Century Club", Description: "Reach 100 total commits", Tier: TierGold, Icon: "💯"},
	{ID: "two_fifty_commits", Name: "Prolific Coder", Description: "Reach 250 total commits", Tier: TierGold, Icon: "📚"},
	{ID: "five_hundred_commits", Name: "Code Machine", Description: "Reach 500 total commits", Tier: TierPlatinum, Icon: "⚙️"},
	{ID: "thousand_commits", Name: "Legendary", Description: "Reach 1000 total commits", Tier: TierDiamond, Icon: "🏆"},

	// Streaks
	{ID: "streak_3", Name: "Consistent", Description: "Maintain a 3-day commit streak", Tier: TierBronze, Icon: "🔥"},
	{ID: "streak_7", Name: "Streak Master", Description: "Maintain a 7-day commit streak", Tier: TierSilver, Icon: "🔥"},
	{ID: "streak_14", Name: "Two Week Warrior", Description: "Maintain a 14-day commit streak", Tier: TierSilver, Icon: "⚡"},
	{ID: "streak_30", Name: "Monthly Marathon", Description: "Maintain a 30-day commit streak", Tier: TierGold, Icon: "🏃"},
	{ID: "streak_60", Name: "Iron Will", Description: "Maintain a 60-day commit streak", Tier: TierPlatinum, Icon: "🦾"},
	{ID: "streak_100", Name: "Unstoppable", Description: "Maintain a 100-day commit streak", Tier: TierDiamond, Icon: "💫"},
	{ID: "streak_365", Name: "Year of Code", Description: "Maintain a 365-day commit streak", Tier: TierDiamond, Icon: "🌍"},

	// Time of day
	{ID: "night_owl", Name: "Night Owl", Description: "Make a commit between midnight and 4 AM", Tier: TierBronze, Icon: "🦉"},
	{ID: "early_bird", Name: "Early Bird", Description: "Make a commit between 5 AM and 7 AM", Tier: TierBronze, Icon: "🐦"},
	{ID: "weekend_warrior", Name: "Weekend Warrior", Description: "Make a commit on a Saturday or Sunday", Tier: TierBronze, Icon: "⚔️"},
	{ID: "midnight_coder", Name: "Midnight Coder", Description: "Make a commit at exactly midnight", Tier: TierSilver, Icon: "🌙"},
	{ID: "holiday_hacker", Name: "Holiday Hacker", Description: "Commit on a major holiday (Dec 25, Jan 1)", Tier: TierGold, Icon: "🎄"},

	// Pet care
	{ID: "first_feed", Name: "Caretaker", Description: "Manually feed your pet for the first time", Tier: TierBronze, Icon: "🍕"},
	{ID: "first_play", Name: "Playful", Description: "Play with your pet for the first time", Tier: TierBronze, Icon: "🎮"},
	{ID: "full_stats", Name: "Perfect Balance", Description: "Get all pet stats to 100%", Tier: TierSilver, Icon: "⚖️"},
	{ID: "close_call", Name: "Close Call", Description: "Feed your pet when hunger is below 10%", Tier: TierSilver, Icon: "😰"},
	{ID: "resurrection", Name: "Phoenix", Description: "Resurrect your dead pet", Tier: TierGold, Icon: "🔥"},
	{ID: "three_resurrections", Name: "Necromancer", Description: "Resurrect your pet 3 times", Tier: TierPlatinum, Icon: "💀"},

	// Evolution
	{ID: "evolve_hatchling", Name: "Hatched!", Description: "Evolve your pet to Hatchling stage", Tier: TierBronze, Icon: "🐣"},
	{ID: "evolve_juvenile", Name: "Growing Up", Description: "Evolve your pet to Juvenile stage", Tier: TierSilver, Icon: "🐥"},
	{ID: "evolve_adult", Name: "All Grown Up", Description: "Evolve your pet to Adult stage", Tier: TierGold, Icon: "🐤"},
	{ID: "evolve_elder", Name: "Elder Wisdom", Description: "Evolve your pet to Elder stage", Tier: TierDiamond, Icon: "👑"},

	// Hidden
	{ID: "speed_demon", Name: "Speed Demon", Description: "Make 10 commits within a single hour", Tier: TierGold, Icon: "⚡", Hidden: true},
	{ID: "pet_whisperer", Name: "Pet Whisperer", Description: "Keep your pet happy for 30 consecutive days", Tier: TierPlatinum, Icon: "🐾", Hidden: true},
	{ID: "five_deaths", Name: "Grim Reaper", Description: "Let your pet die 5 times", Tier: TierSilver, Icon: "☠️", Hidden: true},
	{ID: "reset_master", Name: "Fresh Start", Description: "Reset your pet and start over", Tier: TierBronze, Icon: "🔄", Hidden: true},
}

var byID = func() map[string]Achievement {
	m := make(map[string]Achievement, len(registry))
	for _, a := range registry {
		m[a.ID] = a
	}
	return m
}()

// Get looks up an achievement by ID.
func Get(id string) (Achievement, bool) {
	a, ok := byID[id]
	return a, ok
}

// All returns every achievement in display order.
func All() []Achievement {
	out := make([]Achievement, len(registry))
	copy(out, registry)
	return out
}

// Visible returns the non-hidden achievements.
func Visible() []Achievement {
	var out []Achievement
	for _, a := range registry {
		if !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

// ByTier returns the achievements of one tier.
func ByTier(tier Tier) []Achievement {
	var out []Achievement
	for _, a := range registry {
		if a.Tier == tier {
			out = append(out, a)
		}
	}
	return out
}

package achievements

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gitpet/gitpet/internal/util"
)

// BookFileName is the achievements file inside the state directory.
const BookFileName = "achievements.json"

// Earned records one earned achievement.
type Earned struct {
	AchievementID string    `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
}

type bookData struct {
	Earned []Earned `json:"earned"`

	// Rolling tracking used by hidden achievements.
	RecentCommits  []time.Time `json:"recent_commits,omitempty"`
	HappySinceDate string      `json:"happy_since,omitempty"`
}

// Book is the persisted record of earned achievements plus the small
// amount of rolling state some checks need.
type Book struct {
	path  string
	data  bookData
	index map[string]bool
}

// Load reads the book from dir. A missing or unreadable file yields an
// empty book; achievements are nice-to-have and never block the pet.
func Load(dir string) *Book {
	b := &Book{
		path:  filepath.Join(dir, BookFileName),
		index: make(map[string]bool),
	}

	raw, err := os.ReadFile(b.path)
	if err != nil {
		return b
	}
	if err := json.Unmarshal(raw, &b.data); err != nil {
		b.data = bookData{}
		return b
	}
	for _, e := range b.data.Earned {
		b.index[e.AchievementID] = true
	}
	return b
}

// Save writes the book atomically.
func (b *Book) Save() error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return err
	}
	return util.AtomicWriteJSON(b.path, b.data)
}

// Has reports whether the achievement has been earned.
func (b *Book) Has(id string) bool {
	return b.index[id]
}

// EarnedCount returns how many achievements have been earned.
func (b *Book) EarnedCount() int {
	return len(b.data.Earned)
}

// EarnedAt returns when the achievement was earned.
func (b *Book) EarnedAt(id string) (time.Time, bool) {
	for _, e := range b.data.Earned {
		if e.AchievementID == id {
			return e.EarnedAt, true
		}
	}
	return time.Time{}, false
}

// Award marks an achievement earned. Returns the definition and true on
// the first award; unknown or already-earned IDs return false.
func (b *Book) Award(id string, now time.Time) (Achievement, bool) {
	a, ok := Get(id)
	if !ok || b.index[id] {
		return Achievement{}, false
	}
	b.data.Earned = append(b.data.Earned, Earned{AchievementID: id, EarnedAt: now})
	b.index[id] = true
	return a, true
}

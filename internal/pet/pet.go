package pet

import (
	"fmt"
	"sync"
	"time"
)

// Saver persists the state record. The persistence adapter implements it;
// tests may pass nil to skip persistence.
type Saver interface {
	Save(*State) error
}

// Pet is the single owner of a state record within a process. Every
// read-modify-write is guarded by one mutex so the interactive tick, the
// background poller, and watcher callbacks can all mutate safely, and the
// record is persisted after every mutation.
type Pet struct {
	mu    sync.Mutex
	state *State
	saver Saver
}

// New wraps a state record in a controller.
func New(state *State, saver Saver) *Pet {
	return &Pet{state: state, saver: saver}
}

// ApplyDecay catches the vitals up to now. Idempotent per instant and a
// no-op for dead pets.
func (p *Pet) ApplyDecay(now time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	applyDecay(p.state, now)
	return p.save()
}

// ApplyActivity applies a named activity. It returns the new evolution
// stage when the activity caused an evolution, for UI notification.
// Unknown kinds and invalid-for-lifecycle activities are silent no-ops.
func (p *Pet) ApplyActivity(kind Kind, now time.Time) (*Stage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	evolved := applyActivity(p.state, kind, now)
	if err := p.save(); err != nil {
		return evolved, err
	}
	return evolved, nil
}

// StartResurrection confirms the resurrection attempt on a dead, non-ghost
// pet. It changes no stats; daily commits are what actually advance it.
func (p *Pet) StartResurrection() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.IsDead() || p.state.IsGhost() {
		return nil
	}
	p.state.ResurrectStreak = 0
	return p.save()
}

// Save persists the current record, for the final flush on exit.
func (p *Pet) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.save()
}

// Snapshot returns a copy of the state record for read-only consumers
// (display, badge, achievements).
func (p *Pet) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := *p.state
	if p.state.DiedAt != nil {
		t := *p.state.DiedAt
		snap.DiedAt = &t
	}
	return snap
}

// IsDead reports whether the pet is dead.
func (p *Pet) IsDead() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.IsDead()
}

// IsGhost reports whether the pet is dead and mid-resurrection.
func (p *Pet) IsGhost() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.IsGhost()
}

func (p *Pet) save() error {
	if p.saver == nil {
		return nil
	}
	if err := p.saver.Save(p.state); err != nil {
		return fmt.Errorf("saving pet state: %w", err)
	}
	return nil
}

// FormatAge renders an age the way the status panel shows it:
// "2 days, 3 hours", "5 hours", or "12 minutes".
func FormatAge(age time.Duration) string {
	days := int(age.Hours()) / 24
	hours := int(age.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%s, %s", plural(days, "day"), plural(hours, "hour"))
	}
	if hours > 0 {
		return plural(hours, "hour")
	}
	return plural(int(age.Minutes()), "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

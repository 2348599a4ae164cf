// Package tui implements the interactive pet view: a bubbletea program
// that keeps the pet's vitals current while git activity streams in.
package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gitpet/gitpet/internal/achievements"
	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/tracker"
)

// noticeTTL is how long transient action feedback stays on screen.
const noticeTTL = 4 * time.Second

// bannerTTL is how long evolution and achievement banners stay up.
const bannerTTL = 8 * time.Second

// Model is the bubbletea model for the interactive view.
type Model struct {
	pet     *pet.Pet
	book    *achievements.Book
	chooser *pet.Chooser
	repos   []string

	refreshInterval time.Duration
	pollInterval    time.Duration
	lastPoll        time.Time

	events    <-chan pet.Kind
	done      chan struct{}
	closeOnce sync.Once

	width  int
	height int

	keys     KeyMap
	help     help.Model
	showHelp bool

	notice      string
	noticeUntil time.Time
	banner      string
	bannerUntil time.Time
}

// NewModel creates the interactive view model. events carries activity
// from the git tracker; repos is the repo set for the poll backstop.
func NewModel(p *pet.Pet, book *achievements.Book, repos []string, events <-chan pet.Kind, refresh, poll time.Duration) *Model {
	h := help.New()
	h.ShowAll = false

	return &Model{
		pet:             p,
		book:            book,
		chooser:         pet.NewChooser(),
		repos:           repos,
		refreshInterval: refresh,
		pollInterval:    poll,
		lastPoll:        time.Now(),
		events:          events,
		done:            make(chan struct{}),
		keys:            DefaultKeyMap(),
		help:            h,
	}
}

// Stop unblocks the event listener so the program can exit.
func (m *Model) Stop() {
	m.closeOnce.Do(func() { close(m.done) })
}

type tickMsg time.Time

type pollMsg time.Time

type activityMsg pet.Kind

// listenForActivity returns a command that waits for the next tracker
// event.
func (m *Model) listenForActivity() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	done := m.done
	return func() tea.Msg {
		select {
		case kind, ok := <-events:
			if !ok {
				return nil
			}
			return activityMsg(kind)
		case <-done:
			return nil
		}
	}
}

func (m *Model) refreshTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) pollTick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// Init starts the refresh loop, the poll backstop, and the event
// listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.listenForActivity(),
		m.refreshTick(),
		m.pollTick(),
		tea.SetWindowTitle("gitpet"),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		_ = m.pet.ApplyDecay(now)
		m.expireTransients(now)
		return m, m.refreshTick()

	case pollMsg:
		now := time.Time(msg)
		if tracker.HasNewCommits(m.repos, m.lastPoll) {
			m.applyActivity(pet.KindCommit, now)
		}
		m.lastPoll = now
		return m, m.pollTick()

	case activityMsg:
		m.applyActivity(pet.Kind(msg), time.Now())
		return m, m.listenForActivity()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Stop()
		_ = m.pet.Save()
		_ = m.book.Save()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Feed):
		m.care(pet.KindFeed, "🍕 Fed your pet!", now)
		return m, nil

	case key.Matches(msg, m.keys.Play):
		m.care(pet.KindPlay, "🎮 Played with your pet!", now)
		return m, nil

	case key.Matches(msg, m.keys.Sleep):
		m.care(pet.KindSleep, "😴 Pet is resting...", now)
		return m, nil

	case key.Matches(msg, m.keys.Resurrect):
		if m.pet.IsDead() && !m.pet.IsGhost() {
			if err := m.pet.StartResurrection(); err == nil {
				m.setNotice("👻 Resurrection started! Commit for 3 days to bring your pet back.", now)
			}
		}
		return m, nil
	}

	return m, nil
}

// care applies a manual care action and surfaces feedback. Dead pets
// (outside ghost mode) ignore care.
func (m *Model) care(kind pet.Kind, message string, now time.Time) {
	if m.pet.IsDead() && !m.pet.IsGhost() {
		m.setNotice("Your pet is dead. Press 'r' to start resurrection.", now)
		return
	}

	hungerBefore := m.pet.Snapshot().Hunger
	if _, err := m.pet.ApplyActivity(kind, now); err != nil {
		return
	}
	m.setNotice(message, now)

	earned := m.book.OnCare(kind, hungerBefore, now)
	earned = append(earned, m.book.CheckState(m.pet.Snapshot(), now)...)
	m.announceAchievements(earned, now)
	_ = m.book.Save()
}

// applyActivity feeds one tracker event to the pet and surfaces any
// evolution or achievement it triggered.
func (m *Model) applyActivity(kind pet.Kind, now time.Time) {
	evolved, err := m.pet.ApplyActivity(kind, now)
	if err != nil {
		return
	}

	if evolved != nil {
		m.setBanner(evolutionBanner(*evolved), now)
	}

	var earned []achievements.Achievement
	if kind == pet.KindCommit {
		earned = m.book.OnCommit(m.pet.Snapshot(), now)
	} else {
		earned = m.book.CheckState(m.pet.Snapshot(), now)
	}
	// An evolution keeps the marquee; earned achievements still land in
	// the book and show up in the achievements list.
	if evolved == nil {
		m.announceAchievements(earned, now)
	}
	_ = m.book.Save()
}

func (m *Model) announceAchievements(earned []achievements.Achievement, now time.Time) {
	if len(earned) == 0 {
		return
	}
	// Show the rarest one; the rest are in the achievements list.
	best := earned[0]
	for _, a := range earned[1:] {
		if tierRank(a.Tier) > tierRank(best.Tier) {
			best = a
		}
	}
	m.setBanner(achievementBanner(best), now)
}

func tierRank(t achievements.Tier) int {
	switch t {
	case achievements.TierBronze:
		return 0
	case achievements.TierSilver:
		return 1
	case achievements.TierGold:
		return 2
	case achievements.TierPlatinum:
		return 3
	case achievements.TierDiamond:
		return 4
	}
	return -1
}

func (m *Model) setNotice(s string, now time.Time) {
	m.notice = s
	m.noticeUntil = now.Add(noticeTTL)
}

func (m *Model) setBanner(s string, now time.Time) {
	m.banner = s
	m.bannerUntil = now.Add(bannerTTL)
}

func (m *Model) expireTransients(now time.Time) {
	if m.notice != "" && now.After(m.noticeUntil) {
		m.notice = ""
	}
	if m.banner != "" && now.After(m.bannerUntil) {
		m.banner = ""
	}
}

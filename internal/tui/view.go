package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitpet/gitpet/internal/achievements"
	"github.com/gitpet/gitpet/internal/art"
	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/style"
	"github.com/gitpet/gitpet/internal/ui"
)

// nowFunc is swapped in tests for deterministic ages.
var nowFunc = time.Now

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorAccent).
			Padding(0, 2)

	deadPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorBad).
			Padding(0, 2)

	artStyle     = lipgloss.NewStyle().Foreground(ui.ColorAccent)
	messageStyle = lipgloss.NewStyle().Foreground(ui.ColorWarn).Italic(true)
	bannerStyle  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ui.ColorWarn).
			Padding(0, 2)
)

// View renders the pet panel.
func (m *Model) View() string {
	s := m.pet.Snapshot()
	mood := s.Mood()
	stage := s.Stage()

	var b strings.Builder

	b.WriteString(artStyle.Render(art.For(s.Species, mood)))
	b.WriteString("\n")
	b.WriteString(messageStyle.Render(fmt.Sprintf("%q", m.chooser.Message(&s))))
	b.WriteString("\n\n")

	if !s.IsDead() || s.IsGhost() {
		b.WriteString(fmt.Sprintf("hunger:    %s\n", style.VitalBar(s.Hunger, 14)))
		b.WriteString(fmt.Sprintf("happiness: %s\n", style.VitalBar(s.Happiness, 14)))
		b.WriteString(fmt.Sprintf("energy:    %s\n", style.VitalBar(s.Energy, 14)))
	}

	b.WriteString("\n")
	b.WriteString(style.Bold.Render(fmt.Sprintf("%s %s", strings.ToUpper(string(mood)), mood.Emoji())))
	b.WriteString("\n")

	if toNext, ok := pet.CommitsToNext(s.TotalCommits); ok {
		b.WriteString(ui.RenderMagic(fmt.Sprintf("Stage: %s %s (%d commits to evolve)",
			strings.ToUpper(string(stage)), stage.Emoji(), toNext)))
	} else {
		b.WriteString(ui.RenderMagic(fmt.Sprintf("Stage: %s %s (MAX)",
			strings.ToUpper(string(stage)), stage.Emoji())))
	}
	b.WriteString("\n\n")
	b.WriteString(m.statsLine(s))

	panel := panelStyle
	if s.IsDead() {
		panel = deadPanelStyle
	}

	out := m.titleLine(s) + "\n" + panel.Render(b.String()) + "\n"

	if m.banner != "" {
		out += bannerStyle.Render(m.banner) + "\n"
	}
	if m.notice != "" {
		out += style.Success.Render(m.notice) + "\n"
	}

	out += m.help.View(m.keys)
	return out
}

func (m *Model) titleLine(s pet.State) string {
	switch {
	case s.IsGhost():
		return style.Bold.Render(fmt.Sprintf("👻 %s (ghost)", s.Name)) +
			ui.RenderMuted(fmt.Sprintf("  Resurrection: %d/%d days", s.ResurrectStreak, pet.ResurrectionDays))
	case s.IsDead():
		return style.Bold.Render(fmt.Sprintf("💀 %s (deceased)", s.Name))
	default:
		return style.Bold.Render(fmt.Sprintf("%s %s the %s", s.Stage().Emoji(), s.Name, s.Species))
	}
}

func (m *Model) statsLine(s pet.State) string {
	age := pet.FormatAge(s.Age(nowFunc()))
	if s.IsDead() && !s.IsGhost() {
		return ui.RenderMuted(fmt.Sprintf("Lived for: %s", age))
	}
	return ui.RenderMuted(fmt.Sprintf("Age: %s | Commits: %d | Streak: %d days 🔥",
		age, s.TotalCommits, s.CurrentStreak))
}

func evolutionBanner(stage pet.Stage) string {
	messages := map[pet.Stage]string{
		pet.StageEgg:       "Your pet has hatched... wait, it's still an egg!",
		pet.StageHatchling: "Your egg has hatched! Welcome to the world, little one!",
		pet.StageJuvenile:  "Your pet is growing up! Look at it go!",
		pet.StageAdult:     "Your pet has reached adulthood! So proud!",
		pet.StageElder:     "Your pet has achieved ELDER status! A true legend!",
	}
	msg := messages[stage]
	return fmt.Sprintf("★ EVOLUTION! ★\n\n%s %s %s\n\n%s",
		stage.Emoji(), strings.ToUpper(string(stage)), stage.Emoji(), msg)
}

func achievementBanner(a achievements.Achievement) string {
	return fmt.Sprintf("🎉 Achievement Unlocked! %s\n\n%s %s [%s]\n%s",
		a.Tier.Emoji(), a.Icon, a.Name, a.Tier, a.Description)
}

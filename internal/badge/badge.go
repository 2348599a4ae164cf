// Package badge renders shareable pet status badges for READMEs and CI
// dashboards. Three formats: plain text, markdown, and a self-contained
// SVG.
package badge

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gitpet/gitpet/internal/pet"
)

// Format selects the badge output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatSVG      Format = "svg"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unknown badge format %q (choose one of text, markdown, svg)", s)
}

// moodColors maps each mood to its badge accent color.
var moodColors = map[pet.Mood]string{
	pet.MoodEcstatic: "#22c55e",
	pet.MoodHappy:    "#4ade80",
	pet.MoodContent:  "#86efac",
	pet.MoodNeutral:  "#fbbf24",
	pet.MoodSad:      "#f59e0b",
	pet.MoodHungry:   "#ef4444",
	pet.MoodTired:    "#8b5cf6",
	pet.MoodCritical: "#dc2626",
	pet.MoodDead:     "#6b7280",
	pet.MoodGhost:    "#a855f7",
}

const defaultMoodColor = "#6b7280"

// MoodColor returns the accent color for a mood.
func MoodColor(mood pet.Mood) string {
	if c, ok := moodColors[mood]; ok {
		return c
	}
	return defaultMoodColor
}

var titler = cases.Title(language.English)

// Generate renders a badge for the pet's current state.
func Generate(s pet.State, format Format) string {
	switch format {
	case FormatSVG:
		return generateSVG(s)
	case FormatMarkdown:
		return generateMarkdown(s)
	default:
		return generateText(s)
	}
}

func generateText(s pet.State) string {
	mood := s.Mood()
	stage := s.Stage()
	name := s.Name
	species := titler.String(string(s.Species))
	moodText := strings.ToUpper(string(mood))
	stageText := strings.ToUpper(string(stage))

	if s.IsDead() && !s.IsGhost() {
		return fmt.Sprintf("💀 %s the %s | %s | %s %s",
			name, species, moodText, stageText, stage.Emoji())
	}

	line1 := fmt.Sprintf("%s %s the %s | %s %s | %s",
		stage.Emoji(), name, species, moodText, mood.Emoji(), stageText)
	line2 := fmt.Sprintf("Hunger: %d%% | Happiness: %d%% | Energy: %d%%",
		pct(s.Hunger), pct(s.Happiness), pct(s.Energy))
	line3 := fmt.Sprintf("Commits: %d", s.TotalCommits)

	return line1 + "\n" + line2 + "\n" + line3
}

func generateMarkdown(s pet.State) string {
	mood := s.Mood()
	stage := s.Stage()
	name := s.Name
	species := titler.String(string(s.Species))
	moodText := strings.ToUpper(string(mood))
	stageText := strings.ToUpper(string(stage))

	if s.IsDead() && !s.IsGhost() {
		return strings.Join([]string{
			"<!-- gitpet badge -->",
			fmt.Sprintf("**💀 %s the %s** | DECEASED | Stage: %s %s",
				name, species, stageText, stage.Emoji()),
			"",
			"*Rest in peace*",
			"",
			"---",
			"*Powered by [gitpet](https://github.com/gitpet/gitpet)*",
		}, "\n")
	}

	return strings.Join([]string{
		"<!-- gitpet badge -->",
		fmt.Sprintf("**%s %s the %s** | %s %s | Stage: %s",
			stage.Emoji(), name, species, moodText, mood.Emoji(), stageText),
		"",
		"| Hunger | Happiness | Energy | Commits |",
		"|:------:|:---------:|:------:|:-------:|",
		fmt.Sprintf("| %d%% | %d%% | %d%% | %d |",
			pct(s.Hunger), pct(s.Happiness), pct(s.Energy), s.TotalCommits),
		"",
		"---",
		"*Powered by [gitpet](https://github.com/gitpet/gitpet)*",
	}, "\n")
}

// statBarSVG renders one background + fill bar pair at the given origin.
func statBarSVG(value, x, y, width int) string {
	filledWidth := value * width / 100

	var fill string
	switch {
	case value >= 70:
		fill = "#22c55e"
	case value >= 30:
		fill = "#fbbf24"
	default:
		fill = "#ef4444"
	}

	bg := fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="8" rx="4" fill="#374151"/>`, x, y, width)
	filled := fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="8" rx="4" fill="%s"/>`, x, y, filledWidth, fill)
	return bg + filled
}

func generateSVG(s pet.State) string {
	mood := s.Mood()
	stage := s.Stage()
	name := s.Name
	species := titler.String(string(s.Species))
	moodText := strings.ToUpper(string(mood))
	moodColor := MoodColor(mood)
	stageText := strings.ToUpper(string(stage))

	const width = 300
	const height = 115

	if s.IsDead() && !s.IsGhost() {
		return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="70" viewBox="0 0 %[1]d 70">
  <defs>
    <linearGradient id="bg" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:#1f2937"/>
      <stop offset="100%%" style="stop-color:#111827"/>
    </linearGradient>
  </defs>
  <rect width="%[1]d" height="70" rx="8" fill="url(#bg)"/>
  <rect x="1" y="1" width="%[2]d" height="68" rx="7" fill="none" stroke="#6b7280" stroke-width="1"/>
  <text x="20" y="26" font-family="system-ui, -apple-system, sans-serif" font-size="14" fill="#f9fafb">
    <tspan>💀 %[3]s the %[4]s</tspan>
  </text>
  <text x="20" y="46" font-family="system-ui, -apple-system, sans-serif" font-size="12" fill="#9ca3af">DECEASED</text>
  <text x="20" y="62" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#9ca3af">Stage: %[5]s %[6]s | Commits: %[7]d</text>
</svg>`, width, width-2, name, species, stageText, stage.Emoji(), s.TotalCommits)
	}

	hungerBar := statBarSVG(pct(s.Hunger), 75, 42, 60)
	happinessBar := statBarSVG(pct(s.Happiness), 75, 58, 60)
	energyBar := statBarSVG(pct(s.Energy), 75, 74, 60)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[2]d" viewBox="0 0 %[1]d %[2]d">
  <defs>
    <linearGradient id="bg" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:#1f2937"/>
      <stop offset="100%%" style="stop-color:#111827"/>
    </linearGradient>
  </defs>

  <rect width="%[1]d" height="%[2]d" rx="8" fill="url(#bg)"/>
  <rect x="1" y="1" width="%[3]d" height="%[4]d" rx="7" fill="none" stroke="%[5]s" stroke-width="1"/>
`, width, height, width-2, height-2, moodColor)

	fmt.Fprintf(&sb, `
  <text x="15" y="24" font-family="system-ui, -apple-system, sans-serif" font-size="14" font-weight="600" fill="#f9fafb">
    <tspan>%s %s the %s</tspan>
  </text>

  <rect x="210" y="10" width="70" height="20" rx="10" fill="%s"/>
  <text x="245" y="24" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#ffffff" text-anchor="middle">%s</text>
`, stage.Emoji(), name, species, moodColor, moodText)

	fmt.Fprintf(&sb, `
  <text x="15" y="50" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#9ca3af">Hunger</text>
  <text x="15" y="66" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#9ca3af">Happy</text>
  <text x="15" y="82" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#9ca3af">Energy</text>

  %s
  %s
  %s

  <text x="145" y="50" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#d1d5db">%d%%</text>
  <text x="145" y="66" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#d1d5db">%d%%</text>
  <text x="145" y="82" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#d1d5db">%d%%</text>

  <text x="260" y="75" font-family="system-ui, -apple-system, sans-serif" font-size="24">%s</text>

  <text x="15" y="103" font-family="system-ui, -apple-system, sans-serif" font-size="10" fill="#a78bfa">Stage: %s | Commits: %d</text>
</svg>`,
		hungerBar, happinessBar, energyBar,
		pct(s.Hunger), pct(s.Happiness), pct(s.Energy),
		mood.Emoji(), stageText, s.TotalCommits)

	return sb.String()
}

func pct(v float64) int {
	return int(math.Round(v))
}

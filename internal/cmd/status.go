package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/art"
	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/style"
	"github.com/gitpet/gitpet/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	GroupID: GroupInfo,
	Short:   "Show a quick status of your pet",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		p, _, release, err := loadPet(now)
		if err != nil {
			return err
		}
		defer release()
		printStatus(p, now)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// printStatus renders the one-shot status panel used by status and the
// care commands.
func printStatus(p *pet.Pet, now time.Time) {
	s := p.Snapshot()
	mood := s.Mood()
	stage := s.Stage()

	switch {
	case s.IsGhost():
		fmt.Printf("%s  %s\n", style.Bold.Render(fmt.Sprintf("👻 %s (ghost)", s.Name)),
			ui.RenderMuted(fmt.Sprintf("Resurrection: %d/%d days", s.ResurrectStreak, pet.ResurrectionDays)))
	case s.IsDead():
		fmt.Printf("%s  %s\n", style.Bold.Render(fmt.Sprintf("💀 %s (deceased)", s.Name)),
			ui.RenderMuted(fmt.Sprintf("Lived for: %s", pet.FormatAge(s.Age(now)))))
	default:
		fmt.Printf("%s  %s\n", style.Bold.Render(fmt.Sprintf("%s %s the %s", stage.Emoji(), s.Name, s.Species)),
			ui.RenderMuted(fmt.Sprintf("Age: %s | Commits: %d", pet.FormatAge(s.Age(now)), s.TotalCommits)))
	}

	fmt.Println(ui.RenderAccent(art.For(s.Species, mood)))
	fmt.Printf("%s\n\n", style.Dim.Italic(true).Render(fmt.Sprintf("%q", pet.NewChooser().Message(&s))))

	if !s.IsDead() || s.IsGhost() {
		fmt.Printf("  hunger:    %s\n", style.VitalBar(s.Hunger, 14))
		fmt.Printf("  happiness: %s\n", style.VitalBar(s.Happiness, 14))
		fmt.Printf("  energy:    %s\n", style.VitalBar(s.Energy, 14))
		fmt.Println()
	}

	fmt.Printf("  %s %s\n", style.Bold.Render(strings.ToUpper(string(mood))), mood.Emoji())
	if toNext, ok := pet.CommitsToNext(s.TotalCommits); ok {
		fmt.Printf("  %s\n", ui.RenderMagic(fmt.Sprintf("Stage: %s %s (%d commits to evolve)",
			strings.ToUpper(string(stage)), stage.Emoji(), toNext)))
	} else {
		fmt.Printf("  %s\n", ui.RenderMagic(fmt.Sprintf("Stage: %s %s (MAX)",
			strings.ToUpper(string(stage)), stage.Emoji())))
	}
}

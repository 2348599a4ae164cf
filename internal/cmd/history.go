package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/style"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	GroupID: GroupInfo,
	Short:   "Show pet activity history and stats",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		p, _, release, err := loadPet(now)
		if err != nil {
			return err
		}
		defer release()
		s := p.Snapshot()

		fmt.Printf("%s\n\n", style.Bold.Render("📊 Stats"))

		table := style.NewTable(
			style.Column{Name: "Stat", Width: 24},
			style.Column{Name: "Value", Width: 12, Align: style.AlignRight},
		)
		table.AddRow("🔥 Current Streak", fmt.Sprintf("%d days", s.CurrentStreak))
		table.AddRow("📈 Longest Streak", fmt.Sprintf("%d days", s.LongestStreak))
		table.AddRow("🍕 Total Commits Fed", strconv.Itoa(s.TotalCommits))
		table.AddRow("💀 Deaths", strconv.Itoa(s.TotalDeaths))
		table.AddRow("🐣 Resurrections", strconv.Itoa(s.TotalResurrections))
		table.AddRow("🎂 Age", pet.FormatAge(s.Age(now)))
		fmt.Print(table.Render())

		if pct, ok := pet.StageProgress(s.TotalCommits); ok {
			toNext, _ := pet.CommitsToNext(s.TotalCommits)
			fmt.Printf("\n  %s %s %s\n", style.Bold.Render("Next stage:"),
				style.ProgressBar(pct, 20),
				style.Dim.Render(fmt.Sprintf("%d commits away", toNext)))
		}

		if s.LastCommitDate != "" {
			fmt.Printf("\n  %s\n", style.Dim.Render("Last commit day: "+s.LastCommitDate))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

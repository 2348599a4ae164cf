package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/achievements"
	"github.com/gitpet/gitpet/internal/style"
)

var achievementsShowAll bool

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	GroupID: GroupInfo,
	Short:   "View your achievements and progress",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		p, store, release, err := loadPet(now)
		if err != nil {
			return err
		}
		defer release()

		book := loadBook(store)

		// Award anything the pet already qualifies for.
		newlyEarned := book.CheckState(p.Snapshot(), now)
		for _, a := range newlyEarned {
			printAchievement(a)
		}
		if len(newlyEarned) > 0 {
			if err := book.Save(); err != nil {
				style.PrintWarning("could not save achievements: %v", err)
			}
			fmt.Println()
		}

		printAchievementsList(book, achievementsShowAll)
		return nil
	},
}

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsShowAll, "all", false, "show hidden achievements too")
	rootCmd.AddCommand(achievementsCmd)
}

// printAchievement announces a newly earned achievement.
func printAchievement(a achievements.Achievement) {
	fmt.Printf("%s %s %s %s %s\n",
		style.Success.Render("🎉 Achievement Unlocked!"),
		a.Tier.Emoji(), a.Icon,
		style.Bold.Render(a.Name),
		style.Dim.Render(a.Description))
}

func printAchievementsList(book *achievements.Book, showHidden bool) {
	all := achievements.All()

	earned := book.EarnedCount()
	fmt.Printf("%s %s\n\n", style.Bold.Render("🏆 Achievements"),
		style.Dim.Render(fmt.Sprintf("(%d/%d earned)", earned, len(all))))

	for _, a := range all {
		has := book.Has(a.ID)
		if a.Hidden && !has && !showHidden {
			continue
		}

		name := a.Name
		desc := a.Description
		if a.Hidden && !has {
			name = "???"
			desc = "Hidden achievement"
		}

		if has {
			when := ""
			if at, ok := book.EarnedAt(a.ID); ok {
				when = at.Format("2006-01-02")
			}
			fmt.Printf("  %s %s %s %s %s\n", a.Tier.Emoji(), a.Icon,
				style.Bold.Render(name), style.Dim.Render(desc),
				style.Dim.Render(when))
		} else {
			fmt.Printf("  %s %s %s\n", style.Dim.Render("🔒"),
				style.Dim.Render(name), style.Dim.Render(desc))
		}
	}
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/style"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:     "reset",
	GroupID: GroupCare,
	Short:   "Reset everything (delete your pet permanently)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce && !confirm("This will permanently delete your pet. Are you sure?") {
			fmt.Println(style.Dim.Render("Aborted."))
			return nil
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		release, err := lockStore(store)
		if err != nil {
			return err
		}
		defer release()

		if err := store.Delete(); err != nil {
			return err
		}

		// Starting over is itself worth remembering.
		book := loadBook(store)
		if a, ok := book.Award("reset_master", time.Now()); ok {
			printAchievement(a)
			if err := book.Save(); err != nil {
				style.PrintWarning("could not save achievements: %v", err)
			}
		}

		fmt.Printf("%s Pet deleted. Run 'gitpet' to create a new one.\n", style.WarningPrefix)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

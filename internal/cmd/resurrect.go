package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/style"
)

var resurrectCmd = &cobra.Command{
	Use:     "resurrect",
	GroupID: GroupCare,
	Short:   "Start the resurrection process for a dead pet",
	Long: `Start the resurrection process for a dead pet.

A dead pet returns as a ghost once you commit. Commit on three
consecutive days and it comes back to life at half vitals.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		p, _, release, err := loadPet(now)
		if err != nil {
			return err
		}
		defer release()

		if !p.IsDead() {
			fmt.Printf("%s Your pet is alive! No resurrection needed.\n", style.WarningPrefix)
			return nil
		}

		if p.IsGhost() {
			s := p.Snapshot()
			fmt.Printf("%s\n", style.Warning.Render(fmt.Sprintf("👻 Resurrection in progress: %d/%d days",
				s.ResurrectStreak, pet.ResurrectionDays)))
			fmt.Printf("%s\n", style.Dim.Render("Keep committing daily to bring your pet back!"))
			return nil
		}

		if err := p.StartResurrection(); err != nil {
			return err
		}
		fmt.Printf("%s\n", style.Info.Render("👻 Resurrection started!"))
		fmt.Printf("%s\n\n", style.Dim.Render("Commit code for 3 consecutive days to bring your pet back to life."))
		printStatus(p, now)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resurrectCmd)
}

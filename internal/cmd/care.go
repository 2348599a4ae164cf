package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/style"
)

var feedCmd = &cobra.Command{
	Use:     "feed",
	GroupID: GroupCare,
	Short:   "Feed your pet manually",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCare(pet.KindFeed, "🍕 Fed your pet!")
	},
}

var playCmd = &cobra.Command{
	Use:     "play",
	GroupID: GroupCare,
	Short:   "Play with your pet",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCare(pet.KindPlay, "🎮 Played with your pet!")
	},
}

var sleepCmd = &cobra.Command{
	Use:     "sleep",
	GroupID: GroupCare,
	Short:   "Put your pet to sleep to recover energy",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCare(pet.KindSleep, "😴 Pet is resting...")
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sleepCmd)
}

func runCare(kind pet.Kind, message string) error {
	now := time.Now()
	p, store, release, err := loadPet(now)
	if err != nil {
		return err
	}
	defer release()

	if p.IsDead() && !p.IsGhost() {
		return fmt.Errorf("your pet is dead. Use 'gitpet resurrect' first")
	}

	hungerBefore := p.Snapshot().Hunger
	if _, err := p.ApplyActivity(kind, now); err != nil {
		return err
	}
	fmt.Printf("%s %s\n\n", style.SuccessPrefix, style.Success.Render(message))

	book := loadBook(store)
	earned := book.OnCare(kind, hungerBefore, now)
	earned = append(earned, book.CheckState(p.Snapshot(), now)...)
	for _, a := range earned {
		printAchievement(a)
	}
	if err := book.Save(); err != nil {
		style.PrintWarning("could not save achievements: %v", err)
	}

	printStatus(p, now)
	return nil
}

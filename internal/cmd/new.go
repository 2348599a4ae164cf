package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/style"
)

var (
	newName    string
	newSpecies string
)

var newCmd = &cobra.Command{
	Use:     "new",
	GroupID: GroupCare,
	Short:   "Create a new pet (warning: replaces existing pet!)",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		species, err := pet.ParseSpecies(newSpecies)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		if store.Exists() {
			if !confirm("This will replace your existing pet. Continue?") {
				fmt.Println(style.Dim.Render("Aborted."))
				return nil
			}
		}

		release, err := lockStore(store)
		if err != nil {
			return err
		}
		defer release()

		now := time.Now()
		st := pet.NewState(newName, species, now)
		p := pet.New(st, store)
		if err := p.Save(); err != nil {
			return err
		}

		fmt.Printf("%s %s\n\n", style.SuccessPrefix,
			style.Success.Render(fmt.Sprintf("🐣 Welcome %s the %s!", st.Name, st.Species)))
		printStatus(p, now)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "name for your new pet")
	newCmd.Flags().StringVar(&newSpecies, "species", "blob",
		fmt.Sprintf("pet species (%s)", speciesChoices()))
	rootCmd.AddCommand(newCmd)
}

func speciesChoices() string {
	var names []string
	for _, s := range pet.AllSpecies() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

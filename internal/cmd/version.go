package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	GroupID: GroupInfo,
	Short:   "Print the gitpet version",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitpet %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

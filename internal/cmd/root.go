// Package cmd implements the gitpet CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/style"
)

// Command group IDs.
const (
	GroupCare = "care"
	GroupInfo = "info"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gitpet",
	Short: "🐣 A virtual pet that feeds on your git commits",
	Long: `gitpet keeps a persistent virtual pet whose vitals decay in real time
and are replenished by your git activity. Commits feed it, pushes cheer
it up, and neglect kills it. Dead pets can be resurrected by committing
three days in a row.

Run gitpet with no arguments to open the interactive view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCare, Title: "Pet Care:"},
		&cobra.Group{ID: GroupInfo, Title: "Info:"},
	)
	rootCmd.PersistentFlags().StringVar(&stateDirFlag, "state-dir", "",
		"override the state directory (default: platform config dir)")
}

// stateDirFlag lets tests and scripts point at an alternate state home.
var stateDirFlag string

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		return 1
	}
	return 0
}

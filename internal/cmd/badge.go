package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitpet/gitpet/internal/badge"
	"github.com/gitpet/gitpet/internal/style"
)

var (
	badgeFormat string
	badgeOutput string
)

var badgeCmd = &cobra.Command{
	Use:     "badge",
	GroupID: GroupInfo,
	Short:   "Generate a profile badge for your pet",
	Long: `Generate a shareable status badge for your pet.

Formats:
  text      plain text, for terminals and commit hooks
  markdown  a table snippet for READMEs
  svg       a self-contained SVG image`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := badge.ParseFormat(badgeFormat)
		if err != nil {
			return err
		}

		now := time.Now()
		p, _, release, err := loadPet(now)
		if err != nil {
			return err
		}
		defer release()

		content := badge.Generate(p.Snapshot(), format)

		if badgeOutput != "" {
			if err := os.WriteFile(badgeOutput, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing badge: %w", err)
			}
			fmt.Printf("%s Badge written to %s\n", style.SuccessPrefix, badgeOutput)
			return nil
		}

		fmt.Println(content)
		if format == badge.FormatSVG {
			fmt.Printf("\n%s\n", style.Dim.Render("Tip: Use --output badge.svg to save to a file"))
		}
		return nil
	},
}

func init() {
	badgeCmd.Flags().StringVar(&badgeFormat, "format", "text", "output format (text, markdown, svg)")
	badgeCmd.Flags().StringVarP(&badgeOutput, "output", "o", "", "write badge to file instead of stdout")
	rootCmd.AddCommand(badgeCmd)
}

// ABOUTME: CLI command for re-rendering a saved plan.
// ABOUTME: Looks a submission up by ID prefix and renders it in any report format.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/report"
)

var (
	showFormat string
	showDays   int
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved plan",
	Long: `Show a saved plan by its submission ID or ID prefix.

EXAMPLES:

  wellness show abc12345                 # Colored summary
  wellness show abc1 --days 0            # Every day in the summary
  wellness show abc1 -f markdown         # Printable document
  wellness show abc1 -f json > plan.json`,
	Args:        cobra.ExactArgs(1),
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(showFormat)
		if err != nil {
			return err
		}

		sub, err := repo.GetSubmission(args[0])
		if err != nil {
			return fmt.Errorf("failed to get submission: %w", err)
		}
		if sub.Plan == nil {
			return fmt.Errorf("submission %s has no plan", sub.ShortID())
		}

		return report.Render(cmd.OutOrStdout(), sub.Plan, format, showDays)
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text", "output format: text, json, yaml or markdown")
	showCmd.Flags().IntVarP(&showDays, "days", "n", report.DefaultPreviewDays, "days shown by the text format (0 for all)")
	rootCmd.AddCommand(showCmd)
}

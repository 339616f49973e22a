// ABOUTME: CLI command for listing saved submissions.
// ABOUTME: Supports filtering by fitness goal and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

var (
	listGoal  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List saved submissions",
	Long: `List saved plan submissions, newest first.

OUTPUT FORMAT:

  Each line shows: ID  CREATED  NAME  GOAL  DIET  CALORIES

  The ID is an 8-character prefix you can use with show, share and delete.

FILTERING:

  Use --goal to filter by fitness goal:
    weight-loss, muscle-gain, maintenance, endurance

EXAMPLES:

  wellness list                       # Show last 20 submissions
  wellness list --goal weight-loss    # Only weight-loss plans
  wellness list -n 50                 # Show last 50 submissions`,
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		var goal *models.FitnessGoal
		if listGoal != "" {
			if !models.IsValidFitnessGoal(listGoal) {
				return fmt.Errorf("unknown fitness goal: %s", listGoal)
			}
			g := models.FitnessGoal(listGoal)
			goal = &g
		}

		subs, err := repo.ListSubmissions(goal, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list submissions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(subs) == 0 {
			fmt.Fprintln(out, "No submissions found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range subs {
			calories := ""
			if s.Plan != nil {
				calories = fmt.Sprintf("%d kcal", s.Plan.Diet.Metrics.DailyCalories)
			}
			fmt.Fprintf(out, "%s %s %s %s %s %s\n",
				faint.Sprint(s.ShortID()),
				faint.Sprint(s.CreatedAt.Local().Format("2006-01-02 15:04")),
				padRight(truncate(s.DisplayName(), 20), 20),
				padRight(string(s.Form.FitnessGoal), 12),
				padRight(string(s.Form.DietaryPreference), 20),
				calories)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVar(&listGoal, "goal", "", "filter by fitness goal")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}

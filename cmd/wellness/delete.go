// ABOUTME: CLI command for deleting saved submissions.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a saved submission",
	Long: `Delete a saved submission and its plan by ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'wellness list' output.

EXAMPLES:

  wellness delete abc12345                    # Delete by 8-char prefix
  wellness delete abc12345-1234-1234-...     # Delete by full UUID
  wellness rm abc1                            # Short prefix (if unique)

CAUTION:

  This permanently deletes the submission. There is no undo.
  If the prefix matches multiple submissions, an error is returned.`,
	Args:        cobra.ExactArgs(1),
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// Look it up first to show what we're deleting
		sub, err := repo.GetSubmission(idOrPrefix)
		if err != nil {
			if errors.Is(err, storage.ErrAmbiguous) {
				return fmt.Errorf("%w; use a longer ID prefix", err)
			}
			return fmt.Errorf("submission not found: %s", idOrPrefix)
		}

		if err := repo.DeleteSubmission(sub.ID.String()); err != nil {
			return fmt.Errorf("failed to delete submission: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.YellowString("✗ Deleted submission for %s", sub.DisplayName()))
		fmt.Fprintf(out, "  %s %s %s\n",
			color.New(color.Faint).Sprint(sub.ShortID()),
			sub.Form.FitnessGoal,
			sub.CreatedAt.Local().Format("2006-01-02 15:04"))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

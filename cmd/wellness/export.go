// ABOUTME: CLI commands for exporting and importing saved submissions.
// ABOUTME: Supports JSON backups, YAML summaries and a Markdown submissions table.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/planner"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

var (
	exportOutput string
	exportGoal   string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export saved submissions",
	Long: `Export saved submissions in various formats.

FORMATS:

  json       Full JSON export with every plan (suitable for backup/restore)
  yaml       YAML summary: forms and seeds, plans regenerate on import
  markdown   Markdown table of submissions (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --goal         Filter by fitness goal (markdown only)
  --since        Only include submissions since this date (YYYY-MM-DD, markdown only)

EXAMPLES:

  wellness export json                         # Export all data as JSON
  wellness export json -o backup.json          # Save to file
  wellness export yaml -o backup.yaml          # Compact YAML summary
  wellness export markdown --goal weight-loss  # Weight-loss submissions
  wellness export markdown --since 2026-01-01  # Submissions from 2026 onward`,
	Args:        cobra.ExactArgs(1),
	ValidArgs:   []string{"json", "yaml", "markdown"},
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = storage.ExportJSON(repo)
		case "yaml", "yml":
			data, err = storage.ExportYAML(repo)
		case "markdown", "md":
			var goal *models.FitnessGoal
			if exportGoal != "" {
				if !models.IsValidFitnessGoal(exportGoal) {
					return fmt.Errorf("unknown fitness goal: %s", exportGoal)
				}
				g := models.FitnessGoal(exportGoal)
				goal = &g
			}
			since, perr := parseSince(exportSince)
			if perr != nil {
				return perr
			}
			var md string
			md, err = storage.ExportMarkdown(repo, goal, since)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓ Exported to %s", exportOutput))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import submissions from a JSON or YAML backup",
	Long: `Import submissions from a file written by 'wellness export json' or
'wellness export yaml'.

JSON backups carry every plan. YAML summaries carry only forms and seeds, so
their plans are regenerated on import; the same form and seed always produce
the same plan. Duplicate entries (same ID) will cause an error.

EXAMPLES:

  wellness import backup.json
  wellness import backup.yaml`,
	Args:        cobra.ExactArgs(1),
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var data *storage.ExportData
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			data, err = storage.ParseYAML(raw)
		default:
			data, err = storage.ParseJSON(raw)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		if data.NeedsPlans() {
			data.FillPlans(regeneratePlan)
		}
		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Imported %d submissions from %s", len(data.Submissions), filename))
		return nil
	},
}

// regeneratePlan rebuilds a stored plan from its form and seed.
func regeneratePlan(form models.FormData, seed uint64) *models.Plan {
	return planner.Generate(form, planner.Options{Seed: seed})
}

// parseSince parses an optional YYYY-MM-DD date in local time.
func parseSince(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", s)
	}
	return &t, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportGoal, "goal", "", "filter by fitness goal (markdown only)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include submissions since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

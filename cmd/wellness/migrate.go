// ABOUTME: CLI command for migrating submissions between storage backends.
// ABOUTME: Copies everything from the configured backend into the other one.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/config"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

var (
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate submissions to another storage backend",
	Long: `Copy every saved submission, plans included, from the configured backend
to another one in the same data directory.

IMPORTANT:

  - The destination must be empty; existing data is never overwritten
  - Run with --dry-run first to see what would be migrated
  - Afterwards set "backend" in ~/.config/wellness/config.json (or
    WELLNESS_BACKEND) to use the new store

USAGE:

  wellness migrate --to badger --dry-run   # Preview the migration
  wellness migrate --to badger             # SQLite to Badger
  wellness --backend badger migrate --to sqlite`,
	Annotations: storageAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		from := cfg.GetBackend()
		if migrateTo == "" {
			return fmt.Errorf("--to is required (%s or %s)", config.BackendSQLite, config.BackendBadger)
		}
		if migrateTo == from {
			return fmt.Errorf("already using the %s backend", from)
		}

		dataDir := cfg.GetDataDir()
		dstPath, err := config.StoragePath(migrateTo, dataDir)
		if err != nil {
			return err
		}
		if err := ensureEmptyDestination(migrateTo, dstPath); err != nil {
			return err
		}

		if migrateDryRun {
			subs, err := repo.ListSubmissions(nil, 0)
			if err != nil {
				return fmt.Errorf("failed to list submissions: %w", err)
			}
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			fmt.Fprintf(out, "Would migrate %d submissions from %s to %s (%s)\n", len(subs), from, migrateTo, dstPath)
			return nil
		}

		dst, err := config.OpenBackend(migrateTo, dataDir)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(repo, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		fmt.Fprintln(out, color.GreenString("✓ Migrated %d submissions (%d with plans) from %s to %s",
			summary.Submissions, summary.WithPlans, from, migrateTo))
		fmt.Fprintf(out, "Set backend to %q in %s to use it.\n", migrateTo, config.GetConfigPath())
		return nil
	},
}

// ensureEmptyDestination refuses to migrate into a store that already has data.
func ensureEmptyDestination(backend, path string) error {
	if backend == config.BackendBadger {
		nonEmpty, err := storage.IsDirNonEmpty(path)
		if err != nil {
			return err
		}
		if nonEmpty {
			return fmt.Errorf("destination %s is not empty", path)
		}
		return nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() > 0 {
		return fmt.Errorf("destination %s already exists", path)
	}
	return nil
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite or badger")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}

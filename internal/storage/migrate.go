// ABOUTME: Data migration between wellness storage backends.
// ABOUTME: Copies every submission, plan included, from source to destination.

package storage

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Submissions int
	WithPlans   int
}

// MigrateData copies all submissions from src to dst storage, oldest first so
// insertion order matches creation order. The destination should be empty
// before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	subs, err := src.ListSubmissions(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list source submissions: %w", err)
	}

	for i := len(subs) - 1; i >= 0; i-- {
		s := subs[i]
		if err := dst.CreateSubmission(s); err != nil {
			return nil, fmt.Errorf("create submission %s: %w", s.ID, err)
		}
		summary.Submissions++
		if s.Plan != nil {
			summary.WithPlans++
		}
	}

	log.WithFields(log.Fields{
		"submissions": summary.Submissions,
		"withPlans":   summary.WithPlans,
	}).Info("migrated submissions")

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}

// ABOUTME: Repository interface for stored form submissions and their plans.
// ABOUTME: Implemented by the SQLite DB and the Badger KVStore.
package storage

import (
	"errors"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// Lookup and insert errors returned (wrapped) by the backends.
var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous prefix")
	ErrExists    = errors.New("already exists")
)

// Repository defines the storage interface for submissions.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	CreateSubmission(s *models.Submission) error
	GetSubmission(idOrPrefix string) (*models.Submission, error)
	// ListSubmissions returns submissions newest first, optionally filtered
	// by fitness goal. A limit of 0 means no limit.
	ListSubmissions(goal *models.FitnessGoal, limit int) ([]*models.Submission, error)
	DeleteSubmission(idOrPrefix string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

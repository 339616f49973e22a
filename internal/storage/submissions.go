// ABOUTME: Submission CRUD operations for SQLite storage.
// ABOUTME: Forms and plans are stored as JSON columns beside indexed summary fields.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

const submissionColumns = `id, form_json, plan_json, created_at`

// timeLayout is fixed-width so created_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateSubmission stores a new submission in the database.
func (d *DB) CreateSubmission(s *models.Submission) error {
	formJSON, err := json.Marshal(s.Form)
	if err != nil {
		return fmt.Errorf("marshal form: %w", err)
	}
	var planJSON sql.NullString
	if s.Plan != nil {
		b, err := json.Marshal(s.Plan)
		if err != nil {
			return fmt.Errorf("marshal plan: %w", err)
		}
		planJSON = sql.NullString{String: string(b), Valid: true}
	}

	query := `
		INSERT INTO submissions (id, name, email, fitness_goal, dietary_preference, form_json, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		s.ID.String(),
		s.Form.Name,
		s.Form.Email,
		string(s.Form.FitnessGoal),
		string(s.Form.DietaryPreference),
		string(formJSON),
		planJSON,
		s.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// GetSubmission retrieves a submission by ID or ID prefix.
func (d *DB) GetSubmission(idOrPrefix string) (*models.Submission, error) {
	id, err := d.resolveSubmissionID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	s, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return s, err
}

// ListSubmissions retrieves submissions with optional filtering by goal.
// Results are sorted by CreatedAt descending (most recent first).
func (d *DB) ListSubmissions(goal *models.FitnessGoal, limit int) ([]*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions`
	var args []interface{}

	if goal != nil {
		query += ` WHERE fitness_goal = ?`
		args = append(args, string(*goal))
	}
	query += ` ORDER BY created_at DESC`

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// DeleteSubmission removes a submission by ID or prefix.
func (d *DB) DeleteSubmission(idOrPrefix string) error {
	id, err := d.resolveSubmissionID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM submissions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete submission: %w: %s", ErrNotFound, idOrPrefix)
	}
	return nil
}

// resolveSubmissionID finds the full ID from a prefix.
func (d *DB) resolveSubmissionID(idOrPrefix string) (string, error) {
	idOrPrefix = strings.ToLower(strings.TrimSpace(idOrPrefix))
	if idOrPrefix == "" {
		return "", fmt.Errorf("%w: empty ID", ErrNotFound)
	}
	if _, err := uuid.Parse(idOrPrefix); err == nil && len(idOrPrefix) == 36 {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(`SELECT id FROM submissions WHERE id LIKE ? || '%'`, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve submission ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan submission ID: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve submission ID: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w %s: matches %d submissions", ErrAmbiguous, idOrPrefix, len(matches))
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var idStr, formJSON, createdAt string
	var planJSON sql.NullString

	if err := row.Scan(&idStr, &formJSON, &planJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan submission: %w", err)
	}

	var s models.Submission
	var err error
	if s.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("parse submission ID %q: %w", idStr, err)
	}
	if err := json.Unmarshal([]byte(formJSON), &s.Form); err != nil {
		return nil, fmt.Errorf("unmarshal form %s: %w", idStr, err)
	}
	if planJSON.Valid && planJSON.String != "" {
		s.Plan = &models.Plan{}
		if err := json.Unmarshal([]byte(planJSON.String), s.Plan); err != nil {
			return nil, fmt.Errorf("unmarshal plan %s: %w", idStr, err)
		}
	}
	s.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return &s, nil
}

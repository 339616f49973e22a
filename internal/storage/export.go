// ABOUTME: Backup export and import of stored submissions.
// ABOUTME: Supports full JSON backups, YAML summaries and a Markdown submissions table.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// ExportVersion is written into every backup.
const ExportVersion = "1.0"

// ExportData represents the full export format for stored submissions.
type ExportData struct {
	Version     string               `json:"version" yaml:"version"`
	ExportedAt  time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool        string               `json:"tool" yaml:"tool"`
	Submissions []*models.Submission `json:"submissions" yaml:"submissions"`
}

// PlanGenerator rebuilds a plan from a form and workout seed.
type PlanGenerator func(form models.FormData, seed uint64) *models.Plan

// NeedsPlans reports whether any submission carries a plan stub without days.
func (e *ExportData) NeedsPlans() bool {
	for _, s := range e.Submissions {
		if s.Plan == nil || len(s.Plan.Diet.Days) == 0 {
			return true
		}
	}
	return false
}

// FillPlans regenerates missing plans. A plan with no days is a stub that
// only carries the seed, as produced by ParseYAML.
func (e *ExportData) FillPlans(gen PlanGenerator) {
	for _, s := range e.Submissions {
		if s.Plan != nil && len(s.Plan.Diet.Days) > 0 {
			continue
		}
		var seed uint64
		if s.Plan != nil {
			seed = s.Plan.Seed
		}
		s.Plan = gen(s.Form, seed)
		s.Plan.GeneratedAt = s.CreatedAt.UTC()
	}
}

// collectAll gathers every submission from r into an export envelope.
func collectAll(r interface {
	ListSubmissions(*models.FitnessGoal, int) ([]*models.Submission, error)
}) (*ExportData, error) {
	subs, err := r.ListSubmissions(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if subs == nil {
		subs = []*models.Submission{}
	}
	return &ExportData{
		Version:     ExportVersion,
		ExportedAt:  time.Now().UTC(),
		Tool:        "wellness",
		Submissions: subs,
	}, nil
}

// importAll creates every submission in data.
func importAll(r interface{ CreateSubmission(*models.Submission) error }, data *ExportData) error {
	for _, s := range data.Submissions {
		if err := r.CreateSubmission(s); err != nil {
			return fmt.Errorf("import submission %s: %w", s.ID, err)
		}
	}
	return nil
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) { return collectAll(d) }

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error { return importAll(d, data) }

// GetAllData retrieves all data for export.
func (k *KVStore) GetAllData() (*ExportData, error) { return collectAll(k) }

// ImportData imports data from an export file.
func (k *KVStore) ImportData(data *ExportData) error { return importAll(k, data) }

// ExportJSON exports all data, plans included, as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

type yamlExport struct {
	Version     string           `yaml:"version"`
	ExportedAt  string           `yaml:"exported_at"`
	Tool        string           `yaml:"tool"`
	Submissions []yamlSubmission `yaml:"submissions"`
}

type yamlSubmission struct {
	ID        string          `yaml:"id"`
	CreatedAt string          `yaml:"created_at"`
	Seed      uint64          `yaml:"seed,omitempty"`
	Calories  int             `yaml:"daily_calories,omitempty"`
	Form      models.FormData `yaml:"form"`
}

// ExportYAML exports a YAML summary: forms and seeds without the plan days.
// Plans regenerate deterministically from these on import.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}

	out := yamlExport{
		Version:     data.Version,
		ExportedAt:  data.ExportedAt.Format(time.RFC3339),
		Tool:        data.Tool,
		Submissions: make([]yamlSubmission, 0, len(data.Submissions)),
	}
	for _, s := range data.Submissions {
		ys := yamlSubmission{
			ID:        s.ID.String(),
			CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
			Form:      s.Form,
		}
		if s.Plan != nil {
			ys.Seed = s.Plan.Seed
			ys.Calories = s.Plan.Diet.Metrics.DailyCalories
		}
		out.Submissions = append(out.Submissions, ys)
	}
	return yaml.Marshal(out)
}

// ParseJSON decodes a JSON backup.
func ParseJSON(b []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &data, nil
}

// ParseYAML decodes a YAML summary. Each submission gets a plan stub that
// carries only its seed; call FillPlans before importing.
func ParseYAML(b []byte) (*ExportData, error) {
	var in yamlExport
	if err := yaml.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}

	data := &ExportData{Version: in.Version, Tool: in.Tool}
	data.ExportedAt, _ = time.Parse(time.RFC3339, in.ExportedAt)
	for _, ys := range in.Submissions {
		s := models.NewSubmission(ys.Form, &models.Plan{Seed: ys.Seed})
		if id, err := uuid.Parse(ys.ID); err == nil {
			s.ID = id
		}
		if t, err := time.Parse(time.RFC3339, ys.CreatedAt); err == nil {
			s.CreatedAt = t
		}
		data.Submissions = append(data.Submissions, s)
	}
	return data, nil
}

// ImportJSON imports a JSON backup into repo.
func ImportJSON(repo Repository, b []byte) error {
	data, err := ParseJSON(b)
	if err != nil {
		return err
	}
	return repo.ImportData(data)
}

// ExportMarkdown renders the stored submissions as a Markdown table,
// optionally filtered by goal and creation time.
func ExportMarkdown(repo Repository, goal *models.FitnessGoal, since *time.Time) (string, error) {
	subs, err := repo.ListSubmissions(goal, 0)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Wellness Submissions - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	if goal != nil {
		sb.WriteString(fmt.Sprintf("## %s\n\n", *goal))
	}
	sb.WriteString("| Date | ID | Name | Goal | Diet | Calories |\n")
	sb.WriteString("|------|----|------|------|------|----------|\n")

	for _, s := range subs {
		if since != nil && s.CreatedAt.Before(*since) {
			continue
		}
		calories := ""
		if s.Plan != nil && s.Plan.Diet.Metrics.DailyCalories > 0 {
			calories = fmt.Sprintf("%d kcal", s.Plan.Diet.Metrics.DailyCalories)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.ShortID(),
			s.DisplayName(),
			s.Form.FitnessGoal,
			s.Form.DietaryPreference,
			calories))
	}

	return sb.String(), nil
}

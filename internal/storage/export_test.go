// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON backups, YAML summaries and the Markdown table.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/planner"
)

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	s := newTestSubmission("meera", models.GoalWeightLoss, fixedTime)
	if err := db.CreateSubmission(s); err != nil {
		t.Fatalf("CreateSubmission failed: %v", err)
	}

	data, err := ExportJSON(db)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if export.Version != ExportVersion {
		t.Errorf("Version = %s, want %s", export.Version, ExportVersion)
	}
	if export.Tool != "wellness" {
		t.Errorf("Tool = %s, want wellness", export.Tool)
	}
	if len(export.Submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(export.Submissions))
	}
	if got := len(export.Submissions[0].Plan.Diet.Days); got != models.PlanDays {
		t.Errorf("exported plan has %d diet days, want %d", got, models.PlanDays)
	}
}

func TestExportJSONEmpty(t *testing.T) {
	data, err := ExportJSON(setupTestKV(t))
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"submissions": []`) {
		t.Errorf("empty export should carry an empty submissions array:\n%s", data)
	}
}

func TestImportJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	want := newTestSubmission("meera", models.GoalMuscleGain, fixedTime)
	if err := src.CreateSubmission(want); err != nil {
		t.Fatalf("CreateSubmission failed: %v", err)
	}
	data, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestKV(t)
	if err := ImportJSON(dst, data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	got, err := dst.GetSubmission(want.ID.String())
	if err != nil {
		t.Fatalf("GetSubmission failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestImportJSONInvalid(t *testing.T) {
	if err := ImportJSON(setupTestDB(t), []byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestExportYAMLSummary(t *testing.T) {
	kv := setupTestKV(t)
	s := newTestSubmission("meera", models.GoalEndurance, fixedTime)
	if err := kv.CreateSubmission(s); err != nil {
		t.Fatalf("CreateSubmission failed: %v", err)
	}

	data, err := ExportYAML(kv)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if parsed["tool"] != "wellness" {
		t.Errorf("tool = %v, want wellness", parsed["tool"])
	}
	out := string(data)
	for _, want := range []string{s.ID.String(), "fitnessGoal: endurance", "seed:"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML export missing %q", want)
		}
	}
	if strings.Contains(out, "breakfast") {
		t.Error("YAML summary should not include plan days")
	}
}

func TestParseYAMLAndFillPlans(t *testing.T) {
	kv := setupTestKV(t)
	want := newTestSubmission("meera", models.GoalWeightLoss, fixedTime)
	if err := kv.CreateSubmission(want); err != nil {
		t.Fatalf("CreateSubmission failed: %v", err)
	}
	data, err := ExportYAML(kv)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	parsed, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if !parsed.NeedsPlans() {
		t.Fatal("parsed YAML should need plans")
	}

	parsed.FillPlans(func(form models.FormData, seed uint64) *models.Plan {
		return planner.Generate(form, planner.Options{Seed: seed})
	})
	if parsed.NeedsPlans() {
		t.Fatal("FillPlans left stubs behind")
	}

	got := parsed.Submissions[0]
	if got.ID != want.ID {
		t.Errorf("ID = %v, want %v", got.ID, want.ID)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if diff := cmp.Diff(want.Plan, got.Plan); diff != "" {
		t.Errorf("regenerated plan differs (-want +got):\n%s", diff)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	if _, err := ParseYAML([]byte("submissions: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	old := newTestSubmission("old", models.GoalWeightLoss, fixedTime.Add(-48*time.Hour))
	recent := newTestSubmission("recent", models.GoalWeightLoss, fixedTime)
	other := newTestSubmission("other", models.GoalMuscleGain, fixedTime)
	for _, s := range []*models.Submission{old, recent, other} {
		if err := db.CreateSubmission(s); err != nil {
			t.Fatalf("CreateSubmission failed: %v", err)
		}
	}

	md, err := ExportMarkdown(db, nil, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	for _, want := range []string{"# Wellness Submissions", "| Date | ID |", "old", "recent", "other", "kcal"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	goal := models.GoalWeightLoss
	since := fixedTime.Add(-time.Hour)
	md, err = ExportMarkdown(db, &goal, &since)
	if err != nil {
		t.Fatalf("ExportMarkdown filtered failed: %v", err)
	}
	if !strings.Contains(md, "## weight-loss") || !strings.Contains(md, "recent") {
		t.Errorf("filtered markdown missing expected rows:\n%s", md)
	}
	if strings.Contains(md, "| old |") || strings.Contains(md, "other") {
		t.Errorf("filtered markdown should exclude old and other rows:\n%s", md)
	}
}

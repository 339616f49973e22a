// ABOUTME: Integration tests for the wellness CLI.
// ABOUTME: Builds the binary and drives a full generate, save, share and export workflow.
package test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	wellnessBinary := filepath.Join(t.TempDir(), "wellness")

	buildCmd := exec.Command("go", "build", "-o", wellnessBinary, "./cmd/wellness")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	// Use temp data and config directories
	dataDir := t.TempDir()
	configHome := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", dataDir}, args...)
		cmd := exec.Command(wellnessBinary, fullArgs...)
		cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+configHome, "NO_COLOR=1",
			"WELLNESS_BACKEND=", "WELLNESS_DATA_DIR=", "WELLNESS_WEBHOOK_URL=")
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	formPath := filepath.Join(t.TempDir(), "meera.yaml")
	form := `name: Meera
email: meera@example.com
mobileNumber: "9812345678"
age: "34"
heightFeet: 5
heightInches: 4
weight: "68"
gender: female
dietaryPreference: sattvic
fitnessGoal: weight-loss
exerciseFrequency: 1-2
region: kerala
wellnessGoals: [better-sleep]
`
	if err := os.WriteFile(formPath, []byte(form), 0600); err != nil {
		t.Fatal(err)
	}

	// Test generating and saving a plan
	output, err := run("generate", "--form", formPath, "--save")
	if err != nil {
		t.Fatalf("Failed to generate: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Saved as") {
		t.Errorf("Expected 'Saved as' in output, got: %s", output)
	}
	if !strings.Contains(output, "Meera") {
		t.Errorf("Expected summary for Meera, got: %s", output)
	}

	// Test listing
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Meera") || !strings.Contains(output, "weight-loss") {
		t.Errorf("Expected Meera's submission in list output, got: %s", output)
	}
	id := strings.Fields(output)[0]

	// Test showing as JSON
	output, err = run("show", id, "-f", "json")
	if err != nil {
		t.Fatalf("Failed to show: %v\n%s", err, output)
	}
	var plan struct {
		Form struct {
			HeightCM float64 `json:"height"`
		} `json:"form"`
		Diet struct {
			Days []json.RawMessage `json:"days"`
		} `json:"diet"`
	}
	if err := json.Unmarshal([]byte(output), &plan); err != nil {
		t.Fatalf("show -f json is not JSON: %v\n%.200s", err, output)
	}
	if len(plan.Diet.Days) != 75 {
		t.Errorf("Expected 75 diet days, got %d", len(plan.Diet.Days))
	}
	if plan.Form.HeightCM != 162.6 {
		t.Errorf("Expected 5'4\" to resolve to 162.6 cm, got %v", plan.Form.HeightCM)
	}

	// Test share links
	output, err = run("share", id)
	if err != nil {
		t.Fatalf("Failed to share: %v\n%s", err, output)
	}
	if !strings.Contains(output, "https://wa.me/919812345678") {
		t.Errorf("Expected WhatsApp link, got: %s", output)
	}

	// Test markdown export
	output, err = run("export", "markdown")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "| Date | ID | Name | Goal | Diet | Calories |") {
		t.Errorf("Expected markdown table header, got: %s", output)
	}

	// Test delete
	output, err = run("delete", id)
	if err != nil {
		t.Fatalf("Failed to delete: %v\n%s", err, output)
	}
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No submissions found.") {
		t.Errorf("Expected empty list after delete, got: %s", output)
	}
}

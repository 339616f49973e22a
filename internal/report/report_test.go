// ABOUTME: Tests for plan rendering in every output format.
// ABOUTME: Checks snack layout keys, Markdown sections and the text preview.
package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/diet"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/planner"
)

func init() {
	color.NoColor = true
}

func samplePlan(layout diet.Layout) *models.Plan {
	form := models.FormData{
		Name:              "Kavya",
		Email:             "kavya@example.com",
		Age:               27,
		WeightKG:          58,
		HeightCM:          160,
		Gender:            models.GenderFemale,
		DietaryPreference: models.DietSattvic,
		FitnessGoal:       models.GoalWeightLoss,
		ExerciseFrequency: models.FrequencyModerate,
		Region:            "karnataka",
		WellnessGoals:     []models.WellnessGoal{models.WellnessGlowingSkin},
	}
	return planner.Generate(form, planner.Options{
		Layout: layout,
		Clock:  func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) },
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"md", FormatMarkdown, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestJSONSnackKeys(t *testing.T) {
	tests := []struct {
		layout  diet.Layout
		present []string
		absent  []string
	}{
		{diet.LayoutSegmented, []string{"midMorningSnack", "eveningSnack"}, []string{"snacks"}},
		{diet.LayoutLegacy, []string{"snacks"}, []string{"midMorningSnack", "eveningSnack"}},
	}
	for _, tt := range tests {
		b, err := JSON(samplePlan(tt.layout))
		if err != nil {
			t.Fatalf("JSON failed: %v", err)
		}
		var wire struct {
			Diet struct {
				Days []map[string]json.RawMessage `json:"days"`
			} `json:"diet"`
		}
		if err := json.Unmarshal(b, &wire); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		for _, day := range wire.Diet.Days {
			for _, k := range tt.present {
				if _, ok := day[k]; !ok {
					t.Fatalf("layout %v: day JSON missing %s", tt.layout, k)
				}
			}
			for _, k := range tt.absent {
				if _, ok := day[k]; ok {
					t.Fatalf("layout %v: day JSON should not contain %s", tt.layout, k)
				}
			}
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p := samplePlan(diet.LayoutSegmented)
	b, err := JSON(p)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var back models.Plan
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(back.Diet.Days) != models.PlanDays {
		t.Fatalf("got %d days back", len(back.Diet.Days))
	}
	if _, ok := back.Diet.Days[0].SnackLayout.(models.SegmentedSnacks); !ok {
		t.Errorf("snack layout = %T, want SegmentedSnacks", back.Diet.Days[0].SnackLayout)
	}
}

func TestYAMLUsesJSONKeys(t *testing.T) {
	b, err := YAML(samplePlan(diet.LayoutSegmented))
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(b, &tree); err != nil {
		t.Fatalf("YAML output does not parse: %v", err)
	}
	dietTree, ok := tree["diet"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing diet key: %v", tree)
	}
	days, ok := dietTree["days"].([]interface{})
	if !ok || len(days) != models.PlanDays {
		t.Fatalf("diet.days has %d entries", len(days))
	}
	day1 := days[0].(map[string]interface{})
	if _, ok := day1["midMorningSnack"]; !ok {
		t.Errorf("day 1 missing midMorningSnack: %v", day1)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(samplePlan(diet.LayoutSegmented))

	for _, want := range []string{
		"# Kavya's 75-Day Wellness Plan",
		"## Profile",
		"## Metrics",
		"## Week 1",
		"## Week 4 (deload)",
		"### Day 1\n",
		"### Day 75\n",
		"- Mid-morning snack:",
		"| Exercise | Reps | How |",
		"_Skin:_",
		"Rest & Recovery",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "- Snacks:") {
		t.Error("segmented plan should not render a legacy snacks line")
	}
}

func TestMarkdownLegacySnacks(t *testing.T) {
	md := Markdown(samplePlan(diet.LayoutLegacy))
	if !strings.Contains(md, "- Snacks:") {
		t.Error("legacy plan should render a snacks line")
	}
	if strings.Contains(md, "- Mid-morning snack:") {
		t.Error("legacy plan should not render segmented snack lines")
	}
}

func TestWriteSummaryPreview(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, samplePlan(diet.LayoutSegmented), 2); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"75-day plan for Kavya", "Daily target:", "Day 1", "Day 2", "73 more days"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Day 3 ") {
		t.Error("summary should stop after the preview days")
	}
}

func TestRenderDispatch(t *testing.T) {
	p := samplePlan(diet.LayoutSegmented)
	tests := []struct {
		format Format
		prefix string
	}{
		{FormatJSON, "{"},
		{FormatMarkdown, "# Kavya"},
		{FormatText, "75-day plan"},
		{FormatYAML, "diet:"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Render(&buf, p, tt.format, 1); err != nil {
			t.Fatalf("Render(%s) failed: %v", tt.format, err)
		}
		if !strings.HasPrefix(buf.String(), tt.prefix) {
			t.Errorf("Render(%s) starts with %q, want prefix %q", tt.format, firstLine(buf.String()), tt.prefix)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// ABOUTME: Tests for diet day JSON encoding and plan helpers.
// ABOUTME: Verifies the snack layout union survives a JSON round trip.
package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDietDaySegmentedJSON(t *testing.T) {
	d := DietDay{
		Day:         3,
		Breakfast:   "Poha",
		SnackLayout: SegmentedSnacks{MidMorning: "Apple", Evening: "Roasted chana"},
		Lunch:       "Dal, rice",
		Dinner:      "Khichdi",
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(data)

	if !strings.Contains(s, `"midMorningSnack":"Apple"`) || !strings.Contains(s, `"eveningSnack":"Roasted chana"`) {
		t.Errorf("expected segmented snack keys, got %s", s)
	}
	if strings.Contains(s, `"snacks"`) {
		t.Errorf("segmented day must not carry legacy snacks key: %s", s)
	}
	if !strings.Contains(s, `"cheatMealInfo":null`) {
		t.Errorf("expected explicit null cheatMealInfo, got %s", s)
	}

	var got DietDay
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDietDayLegacyJSON(t *testing.T) {
	cheat := "Two slices of pizza"
	d := DietDay{
		Day:           10,
		SnackLayout:   LegacySnacks{Snacks: "Fruit chaat, buttermilk"},
		CheatMealInfo: &cheat,
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(data)

	if !strings.Contains(s, `"snacks":"Fruit chaat, buttermilk"`) {
		t.Errorf("expected legacy snacks key, got %s", s)
	}
	if strings.Contains(s, `"midMorningSnack":"`) || strings.Contains(s, `"eveningSnack":"`) {
		t.Errorf("legacy day must not carry segmented keys: %s", s)
	}

	var got DietDay
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !got.IsCheatDay() {
		t.Error("expected IsCheatDay() to be true")
	}
}

func TestSnackTexts(t *testing.T) {
	var layout MealSlotLayout = SegmentedSnacks{MidMorning: "a", Evening: "b"}
	if got := layout.SnackTexts(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SnackTexts() = %v, want [a b]", got)
	}

	layout = LegacySnacks{Snacks: "c"}
	if got := layout.SnackTexts(); len(got) != 1 || got[0] != "c" {
		t.Errorf("SnackTexts() = %v, want [c]", got)
	}
}

func TestMealCaloriesTotal(t *testing.T) {
	m := MealCalories{Breakfast: 500, MidMorningSnack: 200, Lunch: 700, EveningSnack: 200, Dinner: 400}
	if got := m.Total(); got != 2000 {
		t.Errorf("Total() = %d, want 2000", got)
	}
}

func TestWorkoutPlanRestDays(t *testing.T) {
	w := WorkoutPlan{Days: []WorkoutDay{{Day: 1}, {Day: 2, IsRestDay: true}, {Day: 3, IsRestDay: true}}}
	if got := w.RestDays(); got != 2 {
		t.Errorf("RestDays() = %d, want 2", got)
	}
}

func TestNewSubmission(t *testing.T) {
	s := NewSubmission(FormData{Email: "asha@example.com"}, nil)

	if s.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if s.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if len(s.ShortID()) != 8 {
		t.Errorf("ShortID() = %q, want 8 chars", s.ShortID())
	}
	if s.DisplayName() != "asha@example.com" {
		t.Errorf("DisplayName() = %q, want email fallback", s.DisplayName())
	}
}

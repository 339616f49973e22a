// ABOUTME: Tests for BMI, category, BMR and calorie target calculations.
// ABOUTME: Includes the reference 30-year-old male scenario.
package biometrics

import (
	"math"
	"testing"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
		want           float64
	}{
		{70, 170, 24.2},
		{50, 160, 19.5},
		{95, 175, 31.0},
		{0, 170, 0},
		{70, 0, 0},
	}

	for _, tt := range tests {
		if got := BMI(tt.weight, tt.height); got != tt.want {
			t.Errorf("BMI(%v, %v) = %v, want %v", tt.weight, tt.height, got, tt.want)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		bmi      float64
		freq     models.ExerciseFrequency
		muscular bool
		want     string
	}{
		{"underweight", 17.9, models.FrequencySedentary, false, CategoryUnderweight},
		{"lower normal bound", 18.5, models.FrequencySedentary, false, CategoryNormal},
		{"normal", 24.9, models.FrequencyHigh, true, CategoryNormal},
		{"overweight", 27, models.FrequencySedentary, false, CategoryOverweight},
		{"overweight muscular but inactive", 27, models.FrequencyLow, true, CategoryOverweight},
		{"overweight muscular and active", 27, models.FrequencyModerate, true, CategoryAthleticBuild},
		{"high BMI", 31, models.FrequencyLow, false, CategoryHighBMI},
		{"high BMI athletic override", 31, models.FrequencyHigh, true, CategoryAthleticBuild},
		{"high BMI past override ceiling", 33, models.FrequencyHigh, true, CategoryHighBMI},
		{"obese", 36, models.FrequencyHigh, true, CategoryObese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Category(tt.bmi, tt.freq, tt.muscular); got != tt.want {
				t.Errorf("Category(%v) = %q, want %q", tt.bmi, got, tt.want)
			}
		})
	}
}

func TestBMRByGender(t *testing.T) {
	male := BMR(70, 170, 30, models.GenderMale)
	female := BMR(70, 170, 30, models.GenderFemale)
	other := BMR(70, 170, 30, models.GenderOther)

	if male != 1672 {
		t.Errorf("male BMR = %d, want 1672", male)
	}
	if female != 1492 {
		t.Errorf("female BMR = %d, want 1492", female)
	}
	if other <= female || other >= male {
		t.Errorf("other BMR = %d, want between %d and %d", other, female, male)
	}
}

func TestActivityMultiplierFallback(t *testing.T) {
	if got := ActivityMultiplier("unknown"); got != 1.2 {
		t.Errorf("ActivityMultiplier(unknown) = %v, want 1.2", got)
	}
	if got := ActivityMultiplier(models.FrequencyModerate); got != 1.55 {
		t.Errorf("ActivityMultiplier(3-4) = %v, want 1.55", got)
	}
}

func TestGoalFactor(t *testing.T) {
	tests := []struct {
		goal models.FitnessGoal
		want float64
	}{
		{models.GoalWeightLoss, 0.85},
		{models.GoalMuscleGain, 1.1},
		{models.GoalMaintenance, 1.0},
		{models.GoalEndurance, 1.0},
		{"bulk", 1.0},
	}
	for _, tt := range tests {
		if got := GoalFactor(tt.goal); got != tt.want {
			t.Errorf("GoalFactor(%s) = %v, want %v", tt.goal, got, tt.want)
		}
	}
}

func TestCalculateReferenceScenario(t *testing.T) {
	m := Calculate(models.FormData{
		Age:               30,
		WeightKG:          70,
		HeightCM:          170,
		Gender:            models.GenderMale,
		ExerciseFrequency: models.FrequencyModerate,
		FitnessGoal:       models.GoalMaintenance,
		DietaryPreference: models.DietLactoVegetarian,
	})

	if m.BMI != 24.2 {
		t.Errorf("BMI = %v, want 24.2", m.BMI)
	}
	if m.BMICategory != CategoryNormal {
		t.Errorf("BMICategory = %q, want normal", m.BMICategory)
	}
	if m.BMR != BMR(70, 170, 30, models.GenderMale) {
		t.Errorf("BMR = %d, want male formula result", m.BMR)
	}
	want := int(math.Round(float64(m.BMR) * 1.55 * 1.0))
	if m.DailyCalories != want {
		t.Errorf("DailyCalories = %d, want %d", m.DailyCalories, want)
	}
	if m.MaintenanceCalories != m.DailyCalories {
		t.Errorf("maintenance goal: MaintenanceCalories = %d, DailyCalories = %d", m.MaintenanceCalories, m.DailyCalories)
	}
}

func TestCalculateWeightLossLowersTarget(t *testing.T) {
	base := models.FormData{Age: 40, WeightKG: 90, HeightCM: 180, Gender: models.GenderFemale, ExerciseFrequency: models.FrequencyLow}

	maintain := base
	maintain.FitnessGoal = models.GoalMaintenance
	lose := base
	lose.FitnessGoal = models.GoalWeightLoss

	if Calculate(lose).DailyCalories >= Calculate(maintain).DailyCalories {
		t.Error("weight-loss target should be below maintenance")
	}
}

func TestCalculateNeverReturnsNaN(t *testing.T) {
	m := Calculate(models.FormData{WeightKG: math.NaN(), HeightCM: math.Inf(1), Age: -1})

	if math.IsNaN(m.BMI) || m.BMI <= 0 {
		t.Errorf("BMI = %v, want a usable default-based value", m.BMI)
	}
	if m.BMR <= 0 || m.DailyCalories <= 0 {
		t.Errorf("BMR = %d, DailyCalories = %d, want positive", m.BMR, m.DailyCalories)
	}
}

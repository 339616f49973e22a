// ABOUTME: BMI, BMI category, BMR and daily calorie target calculations.
// ABOUTME: Pure functions over a normalized form; never fail.
package biometrics

import (
	"math"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// BMI category labels.
const (
	CategoryUnderweight   = "underweight"
	CategoryNormal        = "normal"
	CategoryAthleticBuild = "athletic build"
	CategoryOverweight    = "overweight"
	CategoryHighBMI       = "high BMI"
	CategoryObese         = "obese"
)

// BMI thresholds.
const (
	UnderweightBelow = 18.5
	NormalBelow      = 25.0
	OverweightBelow  = 30.0
	HighBMIBelow     = 35.0

	// AthleticBuildMaxBMI is the highest BMI the muscular-build override
	// relabels as athletic build.
	AthleticBuildMaxBMI = 32.0
)

// activityMultipliers maps exercise frequency to the BMR multiplier.
var activityMultipliers = map[models.ExerciseFrequency]float64{
	models.FrequencySedentary: 1.2,
	models.FrequencyLow:       1.375,
	models.FrequencyModerate:  1.55,
	models.FrequencyHigh:      1.725,
}

// goalFactors scale maintenance calories toward the fitness goal.
var goalFactors = map[models.FitnessGoal]float64{
	models.GoalWeightLoss:  0.85,
	models.GoalMuscleGain:  1.1,
	models.GoalMaintenance: 1.0,
	models.GoalEndurance:   1.0,
}

// BMI returns weight / height² (meters), rounded to one decimal.
// Returns 0 for non-positive inputs.
func BMI(weightKG, heightCM float64) float64 {
	if weightKG <= 0 || heightCM <= 0 {
		return 0
	}
	m := heightCM / 100
	return math.Round(weightKG/(m*m)*10) / 10
}

// Category labels a BMI. People training 3+ days a week who report a
// muscular build are labelled "athletic build" instead of overweight, and
// instead of high BMI up to AthleticBuildMaxBMI.
func Category(bmi float64, freq models.ExerciseFrequency, muscular bool) string {
	athletic := muscular && (freq == models.FrequencyModerate || freq == models.FrequencyHigh)

	switch {
	case bmi < UnderweightBelow:
		return CategoryUnderweight
	case bmi < NormalBelow:
		return CategoryNormal
	case bmi < OverweightBelow:
		if athletic {
			return CategoryAthleticBuild
		}
		return CategoryOverweight
	case bmi < HighBMIBelow:
		if athletic && bmi < AthleticBuildMaxBMI {
			return CategoryAthleticBuild
		}
		return CategoryHighBMI
	default:
		return CategoryObese
	}
}

// BMR computes basal metabolic rate with the revised Harris-Benedict
// equations. "other" uses the mean of the male and female formulas.
func BMR(weightKG, heightCM float64, age int, gender models.Gender) int {
	male := 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*float64(age)
	female := 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*float64(age)

	var bmr float64
	switch gender {
	case models.GenderMale:
		bmr = male
	case models.GenderFemale:
		bmr = female
	default:
		bmr = (male + female) / 2
	}
	if bmr < 0 {
		return 0
	}
	return int(math.Round(bmr))
}

// ActivityMultiplier returns the BMR multiplier for an exercise frequency,
// defaulting to sedentary.
func ActivityMultiplier(freq models.ExerciseFrequency) float64 {
	if m, ok := activityMultipliers[freq]; ok {
		return m
	}
	return activityMultipliers[models.FrequencySedentary]
}

// GoalFactor returns the calorie factor for a fitness goal, defaulting to 1.
func GoalFactor(goal models.FitnessGoal) float64 {
	if f, ok := goalFactors[goal]; ok {
		return f
	}
	return 1.0
}

// DailyCalories returns BMR × activity multiplier × goal factor, rounded.
func DailyCalories(bmr int, freq models.ExerciseFrequency, goal models.FitnessGoal) int {
	return int(math.Round(float64(bmr) * ActivityMultiplier(freq) * GoalFactor(goal)))
}

// Calculate derives all metrics from a form. The form is normalized first so
// missing or invalid values fall back to defaults.
func Calculate(form models.FormData) models.Metrics {
	f := form.Normalize()

	bmi := BMI(f.WeightKG, f.HeightCM)
	bmr := BMR(f.WeightKG, f.HeightCM, f.Age, f.Gender)

	return models.Metrics{
		BMI:                 bmi,
		BMICategory:         Category(bmi, f.ExerciseFrequency, f.HasMuscularBuild),
		BMR:                 bmr,
		MaintenanceCalories: int(math.Round(float64(bmr) * ActivityMultiplier(f.ExerciseFrequency))),
		DailyCalories:       DailyCalories(bmr, f.ExerciseFrequency, f.FitnessGoal),
	}
}

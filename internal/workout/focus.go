// ABOUTME: Weekly focus-area rotation with gender-specific labels.
// ABOUTME: Rest days always carry the recovery label.
package workout

import "github.com/YJ074/wellness-pathway-generator-sub001/internal/models"

// RestFocus is the focus label of every rest day.
const RestFocus = "Rest & Recovery"

type focusLabel struct {
	Default string
	Female  string
}

// weeklyFocus is indexed by day mod 7; slot 0 is the weekly recovery day.
var weeklyFocus = [DaysPerWeek]focusLabel{
	{RestFocus, RestFocus},
	{"Core & Stability", "Core & Pelvic Floor Strength"},
	{"Mobility & Flexibility", "Mobility & Hip Flexibility"},
	{"Strength Training", "Strength & Bone Density"},
	{"Yoga & Balance", "Yoga & Hormonal Balance"},
	{"Functional Movement", "Functional Strength & Posture"},
	{"HIIT & Endurance", "Low-Impact Cardio & Endurance"},
}

// FocusArea returns the focus label for a day.
func FocusArea(day int, freq models.ExerciseFrequency, gender models.Gender) string {
	if IsRestDay(day, freq) {
		return RestFocus
	}
	f := weeklyFocus[day%DaysPerWeek]
	if gender == models.GenderFemale {
		return f.Female
	}
	return f.Default
}

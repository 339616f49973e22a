// ABOUTME: Recommended meal clock times and daily timing tips.
// ABOUTME: Sattvic and Jain plans use earlier eating windows.
package diet

import (
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/selection"
)

var (
	defaultTimings = models.MealTimings{
		Breakfast:       "8:00 AM",
		MidMorningSnack: "10:30 AM",
		Lunch:           "1:00 PM",
		EveningSnack:    "4:30 PM",
		Dinner:          "7:30 PM",
	}
	sattvicTimings = models.MealTimings{
		Breakfast:       "7:00 AM",
		MidMorningSnack: "10:00 AM",
		Lunch:           "12:00 PM",
		EveningSnack:    "4:00 PM",
		Dinner:          "6:30 PM",
	}
	// Jain dinners finish before sunset.
	jainTimings = models.MealTimings{
		Breakfast:       "7:30 AM",
		MidMorningSnack: "10:00 AM",
		Lunch:           "12:30 PM",
		EveningSnack:    "4:00 PM",
		Dinner:          "6:00 PM (before sunset)",
	}
)

// TimingsFor returns the meal timings for a dietary preference.
func TimingsFor(pref models.DietaryPreference) models.MealTimings {
	switch pref {
	case models.DietSattvic:
		return sattvicTimings
	case models.DietJain, models.DietPureJain:
		return jainTimings
	default:
		return defaultTimings
	}
}

// dailyTips rotate one per day on top of the plan-level tips.
var dailyTips = []string{
	"Drink a glass of water 30 minutes before each main meal.",
	"Eat slowly and stop at about 80% full.",
	"Keep meal times within 30 minutes of the schedule.",
	"Avoid screens during meals.",
	"Take a short walk after your largest meal.",
	"Have your last caffeine before 3 PM.",
	"Prepare tomorrow's breakfast ingredients tonight.",
}

var goalTips = map[models.FitnessGoal]string{
	models.GoalWeightLoss:  "Keep a 12-hour overnight gap between dinner and breakfast.",
	models.GoalMuscleGain:  "Have a protein-rich snack within an hour after training.",
	models.GoalEndurance:   "Eat a carbohydrate-rich meal 2 to 3 hours before longer sessions.",
	models.GoalMaintenance: "Keep portions steady from day to day.",
}

var dietTips = map[models.DietaryPreference]string{
	models.DietSattvic:  "Eat freshly cooked food within three hours of preparation.",
	models.DietJain:     "Finish dinner before sunset.",
	models.DietPureJain: "Finish dinner before sunset.",
}

// planTips returns the tips that apply to every day of the plan.
func planTips(form models.FormData) []string {
	var tips []string
	if t, ok := dietTips[form.DietaryPreference]; ok {
		tips = append(tips, t)
	}
	if t, ok := goalTips[form.FitnessGoal]; ok {
		tips = append(tips, t)
	}
	return tips
}

func (a *assembler) timingTips(dayIndex int) []string {
	tips := make([]string, 0, len(a.planTips)+1)
	tips = append(tips, a.planTips...)
	return append(tips, dailyTips[selection.Index(dayIndex, 0, len(dailyTips))])
}

// ABOUTME: Daily macro split from a calorie target, body weight and goal.
// ABOUTME: Protein is weight-based and capped; the rest splits into fat and carbs.
package portion

import (
	"math"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// Energy density in kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Protein limits.
const (
	MaxProteinPerKG  = 2.2
	MaxProteinGrams  = 170.0
	VeganProteinBump = 1.15
)

// proteinPerKG is the base requirement by exercise frequency.
var proteinPerKG = map[models.ExerciseFrequency]float64{
	models.FrequencySedentary: 0.8,
	models.FrequencyLow:       1.0,
	models.FrequencyModerate:  1.2,
	models.FrequencyHigh:      1.4,
}

var proteinGoalBonus = map[models.FitnessGoal]float64{
	models.GoalWeightLoss:  0.2,
	models.GoalMuscleGain:  0.4,
	models.GoalEndurance:   0.1,
	models.GoalMaintenance: 0,
}

var proteinGenderFactor = map[models.Gender]float64{
	models.GenderMale:   1.0,
	models.GenderFemale: 0.9,
	models.GenderOther:  0.95,
}

// split is the fat share of the calories left after protein; carbs take the rest.
type split struct {
	Fat   float64
	Carbs float64
}

var goalSplits = map[models.FitnessGoal]split{
	models.GoalWeightLoss:  {Fat: 0.40, Carbs: 0.60},
	models.GoalMuscleGain:  {Fat: 0.35, Carbs: 0.65},
	models.GoalMaintenance: {Fat: 0.38, Carbs: 0.62},
	models.GoalEndurance:   {Fat: 0.30, Carbs: 0.70},
}

// MacroInput is what EstimateMacros needs from a form and its metrics.
type MacroInput struct {
	DailyCalories int
	WeightKG      float64
	Goal          models.FitnessGoal
	Gender        models.Gender
	Diet          models.DietaryPreference
	Frequency     models.ExerciseFrequency
}

// ProteinGrams returns the daily protein requirement, floored and capped at
// min(2.2 × weight, 170 g).
func ProteinGrams(in MacroInput) int {
	w := in.WeightKG
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		w = models.DefaultWeightKG
	}

	perKG, ok := proteinPerKG[in.Frequency]
	if !ok {
		perKG = proteinPerKG[models.FrequencySedentary]
	}
	perKG += proteinGoalBonus[in.Goal]

	gender, ok := proteinGenderFactor[in.Gender]
	if !ok {
		gender = proteinGenderFactor[models.GenderOther]
	}

	grams := w * perKG * gender
	if in.Diet == models.DietVegan {
		grams *= VeganProteinBump
	}
	grams = math.Min(grams, math.Min(MaxProteinPerKG*w, MaxProteinGrams))
	return int(math.Floor(grams))
}

// EstimateMacros splits the daily calories into protein, fat and carbohydrate
// grams. Unknown goals use the maintenance split. All values are non-negative.
func EstimateMacros(in MacroInput) models.Macros {
	calories := in.DailyCalories
	if calories < 0 {
		calories = 0
	}

	protein := ProteinGrams(in)
	if protein*KcalPerGramProtein > calories {
		protein = calories / KcalPerGramProtein
	}
	remaining := float64(calories - protein*KcalPerGramProtein)

	s, ok := goalSplits[in.Goal]
	if !ok {
		s = goalSplits[models.GoalMaintenance]
	}

	return models.Macros{
		Calories: calories,
		ProteinG: protein,
		FatG:     int(math.Floor(remaining * s.Fat / KcalPerGramFat)),
		CarbsG:   int(math.Floor(remaining * s.Carbs / KcalPerGramCarbs)),
	}
}

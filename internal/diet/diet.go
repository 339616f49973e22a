// ABOUTME: Assembles the 75-day diet plan from pools, rotation and portion rules.
// ABOUTME: Generation is a pure function of the request and never fails.
package diet

import (
	"fmt"
	"math"
	"strings"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/biometrics"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/pools"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/portion"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/selection"
)

// Layout selects how snacks are laid out on every day of a plan.
type Layout int

const (
	// LayoutSegmented emits separate mid-morning and evening snacks.
	LayoutSegmented Layout = iota
	// LayoutLegacy emits a single snacks line.
	LayoutLegacy
)

// Meal shares of the daily calorie target.
const (
	BreakfastShare  = 0.25
	MidMorningShare = 0.10
	LunchShare      = 0.35
	EveningShare    = 0.10
	DinnerShare     = 0.20
)

// Water target rules.
const (
	WaterMLPerKG  = 35.0
	MinWaterLitre = 2.0
	MaxWaterLitre = 4.5
)

var waterGoalBonus = map[models.FitnessGoal]float64{
	models.GoalWeightLoss: 0.3,
	models.GoalMuscleGain: 0.3,
	models.GoalEndurance:  0.5,
}

// Cheat meal cadence in days.
const (
	CheatMealInterval           = 10
	WeightLossCheatMealInterval = 15
)

// Request holds the inputs for a diet plan.
type Request struct {
	Form   models.FormData
	Layout Layout
}

// assembler carries the per-plan values resolved once before the day loop.
type assembler struct {
	form         models.FormData
	layout       Layout
	daily        int
	meals        pools.Meals
	ingredients  pools.Ingredients
	cheats       []string
	regionalNote string
	timings      models.MealTimings
	planTips     []string
}

// Generate builds the diet plan for days 1..75.
func Generate(req Request) models.DietPlan {
	form := req.Form.Normalize()
	metrics := biometrics.Calculate(form)
	region, _ := pools.ResolveRegion(form.Region)
	tier := pools.TierFor(form.DietaryPreference)

	a := assembler{
		form:         form,
		layout:       req.Layout,
		daily:        metrics.DailyCalories,
		meals:        pools.MealPools(region, tier),
		ingredients:  pools.IngredientsFor(tier),
		cheats:       pools.CheatMeals(tier),
		regionalNote: pools.RegionalNote(form.Region),
		timings:      TimingsFor(form.DietaryPreference),
		planTips:     planTips(form),
	}

	days := make([]models.DietDay, 0, models.PlanDays)
	for day := 1; day <= models.PlanDays; day++ {
		days = append(days, a.day(day))
	}

	return models.DietPlan{
		Metrics: metrics,
		Macros: portion.EstimateMacros(portion.MacroInput{
			DailyCalories: metrics.DailyCalories,
			WeightKG:      form.WeightKG,
			Goal:          form.FitnessGoal,
			Gender:        form.Gender,
			Diet:          form.DietaryPreference,
			Frequency:     form.ExerciseFrequency,
		}),
		Days: days,
	}
}

func (a *assembler) day(day int) models.DietDay {
	i := day - 1
	cycle := selection.Cycle(i)
	goal, gender := a.form.FitnessGoal, a.form.Gender

	breakfast := selection.Pick(a.meals.Breakfast, i, selection.SlotBreakfast)

	fruit := selection.Pick(a.ingredients.Fruits, i, selection.SlotMidMorning)
	mid := fruit + " with " + selection.Pick(a.meals.MidMorning, i, selection.SlotMidMorning)

	lunch := selection.Pick(a.meals.Lunch, i, selection.SlotLunch)
	dinner := selection.PickDistinct(a.meals.Dinner, i, selection.SlotDinner, lunch)
	evening := selection.PickDistinct(a.meals.Evening, i, selection.SlotEvening, breakfast, lunch, dinner)

	switch goal {
	case models.GoalMuscleGain:
		lunchProtein := selection.Pick(a.ingredients.Proteins, i, selection.SlotLunch)
		dinnerProtein := selection.PickDistinct(a.ingredients.Proteins, i, selection.SlotDinner, lunchProtein)
		lunch += ", plus " + lunchProtein
		dinner += ", plus " + dinnerProtein
	case models.GoalWeightLoss:
		dinner += ", side of " + selection.Pick(a.ingredients.Vegetables, i, selection.SlotDinner)
	}

	d := models.DietDay{
		Day:          day,
		Breakfast:    portion.Annotate(breakfast, selection.SlotBreakfast, goal, gender, cycle),
		Lunch:        portion.Annotate(lunch, selection.SlotLunch, goal, gender, cycle),
		Dinner:       portion.Annotate(dinner, selection.SlotDinner, goal, gender, cycle),
		Calories:     a.daily,
		MealCalories: SplitCalories(a.daily),
		Water:        WaterLitres(a.form.WeightKG, goal),
		RegionalNote: a.regionalNote,
	}

	mid = portion.Annotate(mid, selection.SlotMidMorning, goal, gender, cycle)
	evening = portion.Annotate(evening, selection.SlotEvening, goal, gender, cycle)
	switch a.layout {
	case LayoutLegacy:
		d.SnackLayout = models.LegacySnacks{Snacks: mid + "; " + evening}
	default:
		d.SnackLayout = models.SegmentedSnacks{MidMorning: mid, Evening: evening}
	}

	a.applyWellnessNotes(&d, i)

	if info, ok := a.cheatMeal(day); ok {
		d.CheatMealInfo = &info
	}

	timings := a.timings
	d.MealTimings = &timings
	d.TimingTips = a.timingTips(i)

	return d
}

// applyWellnessNotes fills the annotation fields for the selected wellness goals.
func (a *assembler) applyWellnessNotes(d *models.DietDay, dayIndex int) {
	var herbal []string
	for k, goal := range a.form.WellnessGoals {
		notes := pools.WellnessNotes(goal)
		if len(notes) == 0 {
			continue
		}
		note := notes[selection.Index(dayIndex, k, len(notes))]
		switch goal {
		case models.WellnessHairGrowth:
			d.HairNutrients = note
		case models.WellnessGlowingSkin:
			d.SkinNutrients = note
		case models.WellnessFatLoss:
			d.FatLossNotes = note
		default:
			herbal = append(herbal, note)
		}
	}
	d.HerbalRecommendations = strings.Join(herbal, " ")
}

// cheatMeal returns the cheat meal text for designated days.
func (a *assembler) cheatMeal(day int) (string, bool) {
	interval := CheatMealIntervalFor(a.form.FitnessGoal)
	if day%interval != 0 || len(a.cheats) == 0 {
		return "", false
	}
	meal := a.cheats[selection.Index(day/interval-1, 0, len(a.cheats))]
	return fmt.Sprintf("Cheat meal day: enjoy %s in place of dinner. Keep the other meals light and drink an extra glass of water.",
		lowerFirst(meal)), true
}

// CheatMealIntervalFor returns how many days apart cheat meals fall.
func CheatMealIntervalFor(goal models.FitnessGoal) int {
	if goal == models.GoalWeightLoss {
		return WeightLossCheatMealInterval
	}
	return CheatMealInterval
}

// SplitCalories divides the daily target across the five meal slots.
func SplitCalories(daily int) models.MealCalories {
	share := func(p float64) int { return int(math.Round(p * float64(daily))) }
	return models.MealCalories{
		Breakfast:       share(BreakfastShare),
		MidMorningSnack: share(MidMorningShare),
		Lunch:           share(LunchShare),
		EveningSnack:    share(EveningShare),
		Dinner:          share(DinnerShare),
	}
}

// WaterLitres returns the daily water target: 35 ml per kg plus a goal bonus,
// clamped to 2.0-4.5 litres and rounded to 0.1.
func WaterLitres(weightKG float64, goal models.FitnessGoal) float64 {
	if weightKG <= 0 || math.IsNaN(weightKG) || math.IsInf(weightKG, 0) {
		weightKG = models.DefaultWeightKG
	}
	l := weightKG*WaterMLPerKG/1000 + waterGoalBonus[goal]
	l = math.Max(MinWaterLitre, math.Min(MaxWaterLitre, l))
	return math.Round(l*10) / 10
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

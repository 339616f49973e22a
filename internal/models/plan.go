// ABOUTME: Diet and workout plan models produced by the generators.
// ABOUTME: Plans are immutable snapshots handed to export and sharing code.
package models

import (
	"encoding/json"
	"time"
)

// PlanDays is the length of every generated plan.
const PlanDays = 75

// Metrics are the biometrics derived from a form submission.
type Metrics struct {
	BMI                 float64 `json:"bmi"`
	BMICategory         string  `json:"bmiCategory"`
	BMR                 int     `json:"bmr"`
	MaintenanceCalories int     `json:"maintenanceCalories"`
	DailyCalories       int     `json:"dailyCalories"`
}

// Macros is the daily grams allocation across protein, fat and carbohydrate.
type Macros struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein"`
	FatG     int `json:"fat"`
	CarbsG   int `json:"carbs"`
}

// MealCalories holds the per-meal calorie estimate for a diet day.
type MealCalories struct {
	Breakfast       int `json:"breakfast"`
	MidMorningSnack int `json:"midMorningSnack"`
	Lunch           int `json:"lunch"`
	EveningSnack    int `json:"eveningSnack"`
	Dinner          int `json:"dinner"`
}

// Total sums all five meal slots.
func (m MealCalories) Total() int {
	return m.Breakfast + m.MidMorningSnack + m.Lunch + m.EveningSnack + m.Dinner
}

// MealTimings are recommended clock times for each meal slot.
type MealTimings struct {
	Breakfast       string `json:"breakfast"`
	MidMorningSnack string `json:"midMorningSnack"`
	Lunch           string `json:"lunch"`
	EveningSnack    string `json:"eveningSnack"`
	Dinner          string `json:"dinner"`
}

// MealSlotLayout is how snacks are laid out on a diet day: either a single
// legacy snacks line or separate mid-morning and evening snacks.
type MealSlotLayout interface {
	isMealSlotLayout()
	// SnackTexts returns the snack lines in serving order.
	SnackTexts() []string
}

// LegacySnacks is the single-line snack layout of the first plan version.
type LegacySnacks struct {
	Snacks string
}

func (LegacySnacks) isMealSlotLayout() {}

// SnackTexts implements MealSlotLayout.
func (l LegacySnacks) SnackTexts() []string { return []string{l.Snacks} }

// SegmentedSnacks splits snacks into mid-morning and evening slots.
type SegmentedSnacks struct {
	MidMorning string
	Evening    string
}

func (SegmentedSnacks) isMealSlotLayout() {}

// SnackTexts implements MealSlotLayout.
func (s SegmentedSnacks) SnackTexts() []string { return []string{s.MidMorning, s.Evening} }

// DietDay is one day of a diet plan.
type DietDay struct {
	Day                   int            `json:"day"`
	Breakfast             string         `json:"breakfast"`
	SnackLayout           MealSlotLayout `json:"-"`
	Lunch                 string         `json:"lunch"`
	Dinner                string         `json:"dinner"`
	Calories              int            `json:"calories"`
	MealCalories          MealCalories   `json:"mealCalories"`
	Water                 float64        `json:"water"`
	HairNutrients         string         `json:"hairNutrients,omitempty"`
	SkinNutrients         string         `json:"skinNutrients,omitempty"`
	FatLossNotes          string         `json:"fatLossNotes,omitempty"`
	HerbalRecommendations string         `json:"herbalRecommendations,omitempty"`
	RegionalNote          string         `json:"regionalNote,omitempty"`
	MealTimings           *MealTimings   `json:"mealTimings,omitempty"`
	CheatMealInfo         *string        `json:"cheatMealInfo"`
	TimingTips            []string       `json:"timingTips,omitempty"`
}

type dietDayAlias DietDay

// dietDayJSON flattens the snack layout into its wire keys.
type dietDayJSON struct {
	dietDayAlias
	Snacks          *string `json:"snacks,omitempty"`
	MidMorningSnack *string `json:"midMorningSnack,omitempty"`
	EveningSnack    *string `json:"eveningSnack,omitempty"`
}

// MarshalJSON writes either "snacks" or the "midMorningSnack"/"eveningSnack"
// pair depending on the layout, never both.
func (d DietDay) MarshalJSON() ([]byte, error) {
	aux := dietDayJSON{dietDayAlias: dietDayAlias(d)}
	switch l := d.SnackLayout.(type) {
	case LegacySnacks:
		aux.Snacks = &l.Snacks
	case SegmentedSnacks:
		aux.MidMorningSnack = &l.MidMorning
		aux.EveningSnack = &l.Evening
	}
	return json.Marshal(aux)
}

// UnmarshalJSON rebuilds the snack layout from whichever keys are present.
func (d *DietDay) UnmarshalJSON(data []byte) error {
	var aux dietDayJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*d = DietDay(aux.dietDayAlias)
	switch {
	case aux.Snacks != nil:
		d.SnackLayout = LegacySnacks{Snacks: *aux.Snacks}
	case aux.MidMorningSnack != nil || aux.EveningSnack != nil:
		seg := SegmentedSnacks{}
		if aux.MidMorningSnack != nil {
			seg.MidMorning = *aux.MidMorningSnack
		}
		if aux.EveningSnack != nil {
			seg.Evening = *aux.EveningSnack
		}
		d.SnackLayout = seg
	}
	return nil
}

// IsCheatDay reports whether the day carries a cheat meal allowance.
func (d DietDay) IsCheatDay() bool {
	return d.CheatMealInfo != nil
}

// DietPlan is the 75-day diet with the metrics it was computed from.
type DietPlan struct {
	Metrics Metrics   `json:"metrics"`
	Macros  Macros    `json:"macros"`
	Days    []DietDay `json:"days"`
}

// Exercise is a single movement within a workout day.
type Exercise struct {
	Name        string `json:"name"`
	Reps        string `json:"reps"`
	Description string `json:"description"`
	MediaURL    string `json:"mediaUrl,omitempty"`
}

// Difficulty is the exercise tier a workout day draws from.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// WorkoutDay is one day of a workout schedule.
type WorkoutDay struct {
	Day            int        `json:"day"`
	WeekNumber     int        `json:"weekNumber"`
	IsRestDay      bool       `json:"isRestDay"`
	IsDeloadWeek   bool       `json:"isDeloadWeek"`
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	FocusArea      string     `json:"focusArea,omitempty"`
	Warmup         []string   `json:"warmup"`
	Exercises      []Exercise `json:"exercises"`
	Cooldown       []string   `json:"cooldown"`
	CaloriesBurned int        `json:"caloriesBurned"`
	Progression    string     `json:"progression,omitempty"`
}

// WorkoutPlan is the 75-day workout schedule.
type WorkoutPlan struct {
	Days []WorkoutDay `json:"days"`
}

// RestDays counts the rest days in the schedule.
func (w WorkoutPlan) RestDays() int {
	n := 0
	for _, d := range w.Days {
		if d.IsRestDay {
			n++
		}
	}
	return n
}

// Plan is everything generated for one form submission.
type Plan struct {
	Form        FormData    `json:"form"`
	Diet        DietPlan    `json:"diet"`
	Workout     WorkoutPlan `json:"workout"`
	Seed        uint64      `json:"seed"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// Metrics returns the biometrics the plan was computed from.
func (p *Plan) Metrics() Metrics {
	return p.Diet.Metrics
}

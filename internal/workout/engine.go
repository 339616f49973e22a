// ABOUTME: Workout periodization engine producing a 75-day schedule.
// ABOUTME: Exercise draws use a per-day PCG stream derived from the engine seed.
package workout

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/pools"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/selection"
)

// Periodization constants.
const (
	DaysPerWeek          = 7
	DeloadEvery          = 4
	ExercisesPerDay      = 4
	WarmupsPerDay        = 3
	CooldownsPerDay      = 3
	BeginnerPromoteAfter = 8  // weeks
	AdvancedPromoteAfter = 10 // weeks

	RestDayBaseCalories = 100
)

var restDaysByFrequency = map[models.ExerciseFrequency][]int{
	models.FrequencyHigh:      {0},
	models.FrequencyModerate:  {0, 4},
	models.FrequencyLow:       {0, 3, 5},
	models.FrequencySedentary: {0, 3, 5},
}

var baseCalories = map[models.ExerciseFrequency]float64{
	models.FrequencySedentary: 200,
	models.FrequencyLow:       200,
	models.FrequencyModerate:  280,
	models.FrequencyHigh:      350,
}

var genderCalorieMultipliers = map[models.Gender]float64{
	models.GenderMale:   1.15,
	models.GenderFemale: 0.9,
}

var startingDifficulty = map[models.ExerciseFrequency]models.Difficulty{
	models.FrequencySedentary: models.DifficultyBeginner,
	models.FrequencyLow:       models.DifficultyBeginner,
	models.FrequencyModerate:  models.DifficultyIntermediate,
	models.FrequencyHigh:      models.DifficultyAdvanced,
}

// Request holds the inputs for a workout schedule.
type Request struct {
	Frequency models.ExerciseFrequency
	Goal      models.FitnessGoal
	Gender    models.Gender
	Age       int
}

// Engine generates workout schedules. Two engines with the same seed produce
// identical schedules for identical requests.
type Engine struct {
	seed uint64
}

// NewEngine creates an Engine whose exercise draws derive from seed.
func NewEngine(seed uint64) *Engine {
	return &Engine{seed: seed}
}

// Seed returns the engine seed.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// Generate builds the workout schedule for days 1..75.
func (e *Engine) Generate(req Request) models.WorkoutPlan {
	req = req.normalize()
	days := make([]models.WorkoutDay, 0, models.PlanDays)
	for day := 1; day <= models.PlanDays; day++ {
		days = append(days, e.day(req, day))
	}
	return models.WorkoutPlan{Days: days}
}

// Day builds a single workout day. The result depends only on the request,
// the day number and the engine seed.
func (e *Engine) Day(req Request, day int) models.WorkoutDay {
	return e.day(req.normalize(), day)
}

func (e *Engine) day(req Request, day int) models.WorkoutDay {
	week := WeekNumber(day)
	w := models.WorkoutDay{
		Day:            day,
		WeekNumber:     week,
		IsRestDay:      IsRestDay(day, req.Frequency),
		IsDeloadWeek:   IsDeloadWeek(week),
		FocusArea:      FocusArea(day, req.Frequency, req.Gender),
		CaloriesBurned: CaloriesBurned(day, req),
	}

	if w.IsRestDay {
		w.Warmup = []string{}
		w.Exercises = []models.Exercise{}
		w.Cooldown = append([]string{}, pools.RestDayRecovery...)
		w.Progression = "Active recovery: light movement only."
		return w
	}

	w.Difficulty = DifficultyFor(req.Frequency, week)
	w.Warmup = rotate(pools.Warmups(), day-1, WarmupsPerDay)
	w.Cooldown = rotate(pools.Cooldowns(), day-1, CooldownsPerDay)
	w.Exercises = e.pickExercises(w.Difficulty, day, req.Goal)
	w.Progression = progressionNote(req.Frequency, week, w.Difficulty)
	return w
}

// pickExercises draws ExercisesPerDay distinct exercises from the tier pool.
func (e *Engine) pickExercises(d models.Difficulty, day int, goal models.FitnessGoal) []models.Exercise {
	pool := pools.Exercises(d)
	rng := rand.New(rand.NewPCG(e.seed, uint64(day)))
	perm := rng.Perm(len(pool))

	n := min(ExercisesPerDay, len(pool))
	out := make([]models.Exercise, 0, n)
	for _, idx := range perm[:n] {
		ex := pool[idx]
		ex.Reps = ScaleReps(ex.Reps, goal)
		out = append(out, ex)
	}
	return out
}

// IsRestDay reports whether day is a rest day for the exercise frequency.
func IsRestDay(day int, freq models.ExerciseFrequency) bool {
	rest, ok := restDaysByFrequency[freq]
	if !ok {
		rest = restDaysByFrequency[models.FrequencySedentary]
	}
	dow := day % DaysPerWeek
	for _, r := range rest {
		if dow == r {
			return true
		}
	}
	return false
}

// WeekNumber returns the 1-based week a day falls in.
func WeekNumber(day int) int {
	if day < 1 {
		return 1
	}
	return (day-1)/DaysPerWeek + 1
}

// IsDeloadWeek reports whether week is a lighter deload week.
func IsDeloadWeek(week int) bool {
	return week > 0 && week%DeloadEvery == 0
}

// DifficultyFor returns the exercise tier for a frequency at a given week.
// Beginners move to intermediate after week 8 and intermediates to advanced
// after week 10; promotion is based on the starting tier only.
func DifficultyFor(freq models.ExerciseFrequency, week int) models.Difficulty {
	start, ok := startingDifficulty[freq]
	if !ok {
		start = models.DifficultyBeginner
	}
	switch {
	case start == models.DifficultyBeginner && week > BeginnerPromoteAfter:
		return models.DifficultyIntermediate
	case start == models.DifficultyIntermediate && week > AdvancedPromoteAfter:
		return models.DifficultyAdvanced
	default:
		return start
	}
}

// CaloriesBurned estimates the calories burned on a day.
func CaloriesBurned(day int, req Request) int {
	req = req.normalize()

	base := baseCalories[req.Frequency]
	if IsRestDay(day, req.Frequency) {
		base = RestDayBaseCalories
	}

	gender, ok := genderCalorieMultipliers[req.Gender]
	if !ok {
		gender = 1.0
	}

	rate, ceiling := progressionLimits(req.Age)
	progression := math.Min(1+float64(WeekNumber(day)/2)*rate, ceiling)

	return int(math.Round(base * AgeMultiplier(req.Age) * gender * progression))
}

// AgeMultiplier scales calorie burn by age band.
func AgeMultiplier(age int) float64 {
	switch {
	case age >= 60:
		return 0.75
	case age >= 50:
		return 0.85
	case age >= 40:
		return 0.95
	case age < 25:
		return 1.1
	default:
		return 1.0
	}
}

// progressionLimits returns the per-two-week progression rate and its ceiling.
// Younger people progress faster and further.
func progressionLimits(age int) (rate, ceiling float64) {
	switch {
	case age < 30:
		return 0.05, 1.5
	case age < 45:
		return 0.04, 1.4
	case age < 60:
		return 0.03, 1.3
	default:
		return 0.02, 1.2
	}
}

func progressionNote(freq models.ExerciseFrequency, week int, d models.Difficulty) string {
	switch {
	case IsDeloadWeek(week):
		return "Deload week: drop one set per exercise and keep effort around 60-70%."
	case d != DifficultyFor(freq, 1):
		return fmt.Sprintf("Stepped up to %s exercises: keep form strict before adding volume.", d)
	case week <= 2:
		return "Foundation phase: learn the movements and keep two reps in reserve."
	default:
		return "Add one rep or five seconds per set compared with last week."
	}
}

// rotate returns n consecutive entries of pool starting at the day's position.
func rotate(pool []string, dayIndex, n int) []string {
	n = min(n, len(pool))
	out := make([]string, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, pool[selection.Index(dayIndex, k, len(pool))])
	}
	return out
}

func (r Request) normalize() Request {
	if !models.IsValidExerciseFrequency(string(r.Frequency)) {
		r.Frequency = models.FrequencySedentary
	}
	if r.Age <= 0 {
		r.Age = models.DefaultAgeYears
	}
	return r
}

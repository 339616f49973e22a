// ABOUTME: Orchestrates a full plan: metrics, macros, diet and workout schedule.
// ABOUTME: The workout seed derives from the user's identity unless overridden.
package planner

import (
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	log "github.com/sirupsen/logrus"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/diet"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/workout"
)

// Options tune plan generation.
type Options struct {
	// Layout is the snack layout for the diet plan.
	Layout diet.Layout
	// Seed overrides the identity-derived workout seed when non-zero.
	Seed uint64
	// Clock supplies GeneratedAt; time.Now when nil.
	Clock func() time.Time
}

// SeedFor hashes the user's identity into a workout seed: the email, else the
// mobile number, else the name, all trimmed and lowercased.
func SeedFor(form models.FormData) uint64 {
	identity := form.Email
	if strings.TrimSpace(identity) == "" {
		identity = form.MobileNumber
	}
	if strings.TrimSpace(identity) == "" {
		identity = form.Name
	}
	return xxhash.Sum64String(strings.ToLower(strings.TrimSpace(identity)))
}

// Generate builds the diet and workout plans for a form.
func Generate(form models.FormData, opts Options) *models.Plan {
	f := form.Normalize()

	seed := opts.Seed
	if seed == 0 {
		seed = SeedFor(f)
	}
	now := time.Now
	if opts.Clock != nil {
		now = opts.Clock
	}

	dietPlan := diet.Generate(diet.Request{Form: f, Layout: opts.Layout})
	workoutPlan := workout.NewEngine(seed).Generate(workout.Request{
		Frequency: f.ExerciseFrequency,
		Goal:      f.FitnessGoal,
		Gender:    f.Gender,
		Age:       f.Age,
	})

	log.WithFields(log.Fields{
		"diet":      f.DietaryPreference,
		"goal":      f.FitnessGoal,
		"frequency": f.ExerciseFrequency,
		"region":    f.Region,
		"calories":  dietPlan.Metrics.DailyCalories,
		"restDays":  workoutPlan.RestDays(),
		"seed":      seed,
	}).Debug("generated plan")

	return &models.Plan{
		Form:        f,
		Diet:        dietPlan,
		Workout:     workoutPlan,
		Seed:        seed,
		GeneratedAt: now().UTC(),
	}
}

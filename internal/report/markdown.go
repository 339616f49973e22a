// ABOUTME: Markdown rendering of a full 75-day plan.
// ABOUTME: The document collaborators print or convert to PDF.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// Markdown renders the whole plan as a Markdown document.
func Markdown(p *models.Plan) string {
	var sb strings.Builder

	title := "Your 75-Day Wellness Plan"
	if p.Form.Name != "" {
		title = fmt.Sprintf("%s's 75-Day Wellness Plan", p.Form.Name)
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", p.GeneratedAt.Format(time.RFC3339)))

	writeProfile(&sb, p)
	writeDays(&sb, p)

	return sb.String()
}

func writeProfile(sb *strings.Builder, p *models.Plan) {
	f := p.Form
	m := p.Diet.Metrics
	mac := p.Diet.Macros

	sb.WriteString("## Profile\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Age | %d |\n", f.Age))
	sb.WriteString(fmt.Sprintf("| Height | %.1f cm |\n", f.HeightCM))
	sb.WriteString(fmt.Sprintf("| Weight | %.1f kg |\n", f.WeightKG))
	sb.WriteString(fmt.Sprintf("| Gender | %s |\n", f.Gender))
	sb.WriteString(fmt.Sprintf("| Diet | %s |\n", f.DietaryPreference))
	sb.WriteString(fmt.Sprintf("| Goal | %s |\n", f.FitnessGoal))
	sb.WriteString(fmt.Sprintf("| Exercise | %s |\n", f.ExerciseFrequency))
	if f.Region != "" {
		sb.WriteString(fmt.Sprintf("| Region | %s |\n", f.Region))
	}
	sb.WriteString("\n")

	sb.WriteString("## Metrics\n\n")
	sb.WriteString(fmt.Sprintf("- BMI: %.1f (%s)\n", m.BMI, m.BMICategory))
	sb.WriteString(fmt.Sprintf("- BMR: %d kcal\n", m.BMR))
	sb.WriteString(fmt.Sprintf("- Maintenance: %d kcal\n", m.MaintenanceCalories))
	sb.WriteString(fmt.Sprintf("- Daily target: %d kcal\n", m.DailyCalories))
	sb.WriteString(fmt.Sprintf("- Macros: %dg protein, %dg fat, %dg carbs\n\n", mac.ProteinG, mac.FatG, mac.CarbsG))
}

func writeDays(sb *strings.Builder, p *models.Plan) {
	workouts := make(map[int]models.WorkoutDay, len(p.Workout.Days))
	for _, w := range p.Workout.Days {
		workouts[w.Day] = w
	}

	week := 0
	for _, d := range p.Diet.Days {
		w, hasWorkout := workouts[d.Day]
		if hasWorkout && w.WeekNumber != week {
			week = w.WeekNumber
			heading := fmt.Sprintf("## Week %d", week)
			if w.IsDeloadWeek {
				heading += " (deload)"
			}
			sb.WriteString(heading + "\n\n")
		}

		sb.WriteString(fmt.Sprintf("### Day %d\n\n", d.Day))
		writeMeals(sb, d)
		if hasWorkout {
			writeWorkout(sb, w)
		}
	}
}

func writeMeals(sb *strings.Builder, d models.DietDay) {
	sb.WriteString(fmt.Sprintf("**Diet** (%d kcal, %.1f L water)\n\n", d.Calories, d.Water))
	sb.WriteString(fmt.Sprintf("- Breakfast: %s\n", d.Breakfast))
	switch l := d.SnackLayout.(type) {
	case models.SegmentedSnacks:
		sb.WriteString(fmt.Sprintf("- Mid-morning snack: %s\n", l.MidMorning))
		sb.WriteString(fmt.Sprintf("- Lunch: %s\n", d.Lunch))
		sb.WriteString(fmt.Sprintf("- Evening snack: %s\n", l.Evening))
	case models.LegacySnacks:
		sb.WriteString(fmt.Sprintf("- Lunch: %s\n", d.Lunch))
		sb.WriteString(fmt.Sprintf("- Snacks: %s\n", l.Snacks))
	default:
		sb.WriteString(fmt.Sprintf("- Lunch: %s\n", d.Lunch))
	}
	sb.WriteString(fmt.Sprintf("- Dinner: %s\n", d.Dinner))

	if d.CheatMealInfo != nil {
		sb.WriteString(fmt.Sprintf("\n> %s\n", *d.CheatMealInfo))
	}

	notes := []struct{ label, text string }{
		{"Hair", d.HairNutrients},
		{"Skin", d.SkinNutrients},
		{"Fat loss", d.FatLossNotes},
		{"Herbal", d.HerbalRecommendations},
		{"Regional", d.RegionalNote},
	}
	wrote := false
	for _, n := range notes {
		if n.text == "" {
			continue
		}
		if !wrote {
			sb.WriteString("\n")
			wrote = true
		}
		sb.WriteString(fmt.Sprintf("- _%s:_ %s\n", n.label, n.text))
	}
	if d.MealTimings != nil {
		t := d.MealTimings
		sb.WriteString(fmt.Sprintf("\nTimings: breakfast %s, snack %s, lunch %s, snack %s, dinner %s\n",
			t.Breakfast, t.MidMorningSnack, t.Lunch, t.EveningSnack, t.Dinner))
	}
	sb.WriteString("\n")
}

func writeWorkout(sb *strings.Builder, w models.WorkoutDay) {
	if w.IsRestDay {
		sb.WriteString(fmt.Sprintf("**Workout**: %s (~%d kcal)\n\n", w.FocusArea, w.CaloriesBurned))
		for _, c := range w.Cooldown {
			sb.WriteString(fmt.Sprintf("- %s\n", c))
		}
		sb.WriteString("\n")
		return
	}

	sb.WriteString(fmt.Sprintf("**Workout**: %s, %s (~%d kcal)\n\n", w.FocusArea, w.Difficulty, w.CaloriesBurned))
	if len(w.Warmup) > 0 {
		sb.WriteString(fmt.Sprintf("Warm-up: %s\n\n", strings.Join(w.Warmup, "; ")))
	}
	sb.WriteString("| Exercise | Reps | How |\n")
	sb.WriteString("|----------|------|-----|\n")
	for _, e := range w.Exercises {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", e.Name, e.Reps, e.Description))
	}
	sb.WriteString("\n")
	if len(w.Cooldown) > 0 {
		sb.WriteString(fmt.Sprintf("Cool-down: %s\n\n", strings.Join(w.Cooldown, "; ")))
	}
	if w.Progression != "" {
		sb.WriteString(fmt.Sprintf("_%s_\n\n", w.Progression))
	}
}

// ABOUTME: Colored terminal summary of a plan for the CLI.
// ABOUTME: Shows metrics, macros and a preview of the first days.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// DefaultPreviewDays is how many days the text summary shows by default.
const DefaultPreviewDays = 3

// WriteSummary writes metrics, macros and the first previewDays days.
// A previewDays of zero or less shows the full plan.
func WriteSummary(w io.Writer, p *models.Plan, previewDays int) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	m := p.Diet.Metrics
	mac := p.Diet.Macros

	var sb strings.Builder
	name := p.Form.Name
	if name == "" {
		name = "you"
	}
	sb.WriteString(bold.Sprintf("75-day plan for %s\n", name))
	sb.WriteString(faint.Sprintf("%s · %s · %s · seed %d\n\n",
		p.Form.DietaryPreference, p.Form.FitnessGoal, p.Form.ExerciseFrequency, p.Seed))

	sb.WriteString(fmt.Sprintf("%s %.1f (%s)\n", padLabel("BMI"), m.BMI, m.BMICategory))
	sb.WriteString(fmt.Sprintf("%s %d kcal\n", padLabel("BMR"), m.BMR))
	sb.WriteString(fmt.Sprintf("%s %d kcal\n", padLabel("Maintenance"), m.MaintenanceCalories))
	sb.WriteString(fmt.Sprintf("%s %s\n", padLabel("Daily target"), green.Sprintf("%d kcal", m.DailyCalories)))
	sb.WriteString(fmt.Sprintf("%s %dg protein · %dg fat · %dg carbs\n", padLabel("Macros"), mac.ProteinG, mac.FatG, mac.CarbsG))
	sb.WriteString(fmt.Sprintf("%s %d of %d\n\n", padLabel("Rest days"), p.Workout.RestDays(), len(p.Workout.Days)))

	days := len(p.Diet.Days)
	if previewDays > 0 && previewDays < days {
		days = previewDays
	}
	for i := 0; i < days; i++ {
		d := p.Diet.Days[i]
		sb.WriteString(bold.Sprintf("Day %d", d.Day))
		sb.WriteString(faint.Sprintf("  %d kcal · %.1f L water\n", d.Calories, d.Water))
		sb.WriteString(fmt.Sprintf("  %s %s\n", padLabel("Breakfast"), d.Breakfast))
		snacks := d.SnackLayout
		if snacks != nil {
			texts := snacks.SnackTexts()
			if len(texts) > 0 {
				sb.WriteString(fmt.Sprintf("  %s %s\n", padLabel("Snack"), texts[0]))
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", padLabel("Lunch"), d.Lunch))
			if len(texts) > 1 {
				for _, t := range texts[1:] {
					sb.WriteString(fmt.Sprintf("  %s %s\n", padLabel("Snack"), t))
				}
			}
		} else {
			sb.WriteString(fmt.Sprintf("  %s %s\n", padLabel("Lunch"), d.Lunch))
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", padLabel("Dinner"), d.Dinner))
		if d.CheatMealInfo != nil {
			sb.WriteString("  " + yellow.Sprint(*d.CheatMealInfo) + "\n")
		}
		if i < len(p.Workout.Days) {
			sb.WriteString(fmt.Sprintf("  %s %s\n", padLabel("Workout"), workoutLine(p.Workout.Days[i])))
		}
		sb.WriteString("\n")
	}
	if days < len(p.Diet.Days) {
		sb.WriteString(faint.Sprintf("... %d more days (use --days 0 or --format markdown for the full plan)\n", len(p.Diet.Days)-days))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func workoutLine(w models.WorkoutDay) string {
	if w.IsRestDay {
		return w.FocusArea
	}
	names := make([]string, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		names = append(names, e.Name)
	}
	return fmt.Sprintf("%s (%s): %s", w.FocusArea, w.Difficulty, strings.Join(names, ", "))
}

func padLabel(s string) string {
	const width = 13
	s += ":"
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

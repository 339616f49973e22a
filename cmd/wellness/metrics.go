// ABOUTME: CLI commands for body metrics and macro targets without a full plan.
// ABOUTME: Prints BMI, BMR and calorie targets, or daily macro grams and water.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/biometrics"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/diet"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/portion"
)

var (
	metricsPerson personFlags
	metricsJSON   bool

	macrosPerson personFlags
	macrosJSON   bool
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Calculate BMI, BMR and calorie targets",
	Long: `Calculate body metrics for a person without generating a plan.

OUTPUT:

  BMI          weight / height², one decimal
  Category     underweight, normal, overweight, athletic build, high BMI, obese
  BMR          revised Harris-Benedict basal metabolic rate (kcal)
  Maintenance  BMR × activity multiplier
  Daily        maintenance × goal factor (the plan's calorie target)

EXAMPLES:

  wellness metrics --age 30 --height 175 --weight 70 --gender male
  wellness metrics --form asha.yaml --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := metricsPerson.form(cmd)
		if err != nil {
			return err
		}
		f := form.Normalize()
		m := biometrics.Calculate(f)

		if metricsJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"metrics":            m,
				"activityMultiplier": biometrics.ActivityMultiplier(f.ExerciseFrequency),
				"goalFactor":         biometrics.GoalFactor(f.FitnessGoal),
			})
		}

		out := cmd.OutOrStdout()
		writeMetrics(out, m)
		faint := color.New(color.Faint)
		fmt.Fprintf(out, "%s\n", faint.Sprintf("activity ×%.3g (%s), goal ×%.2g (%s)",
			biometrics.ActivityMultiplier(f.ExerciseFrequency), f.ExerciseFrequency,
			biometrics.GoalFactor(f.FitnessGoal), f.FitnessGoal))
		return nil
	},
}

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Estimate daily macros and water intake",
	Long: `Estimate daily protein, fat and carbohydrate grams and water intake for a
person's calorie target.

Protein scales with body weight, goal and training frequency; fat takes a
share of calories; carbohydrates fill the rest. Water is 35 ml per kg plus a
goal bonus, kept between 2 and 4.5 litres.

EXAMPLES:

  wellness macros --form asha.yaml
  wellness macros --weight 80 --goal muscle-gain --frequency 5+ --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := macrosPerson.form(cmd)
		if err != nil {
			return err
		}
		f := form.Normalize()
		m := biometrics.Calculate(f)
		mac := portion.EstimateMacros(portion.MacroInput{
			DailyCalories: m.DailyCalories,
			WeightKG:      f.WeightKG,
			Goal:          f.FitnessGoal,
			Gender:        f.Gender,
			Diet:          f.DietaryPreference,
			Frequency:     f.ExerciseFrequency,
		})
		water := diet.WaterLitres(f.WeightKG, f.FitnessGoal)

		if macrosJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"metrics":     m,
				"macros":      mac,
				"waterLitres": water,
			})
		}

		out := cmd.OutOrStdout()
		color.New(color.Bold).Fprintf(out, "%d kcal/day\n", mac.Calories)
		fmt.Fprintf(out, "  %s %dg\n", padRight("Protein", 9), mac.ProteinG)
		fmt.Fprintf(out, "  %s %dg\n", padRight("Fat", 9), mac.FatG)
		fmt.Fprintf(out, "  %s %dg\n", padRight("Carbs", 9), mac.CarbsG)
		fmt.Fprintf(out, "  %s %.1f L\n", padRight("Water", 9), water)
		return nil
	},
}

func writeMetrics(w io.Writer, m models.Metrics) {
	fmt.Fprintf(w, "%s %.1f (%s)\n", padRight("BMI", 12), m.BMI, m.BMICategory)
	fmt.Fprintf(w, "%s %d kcal\n", padRight("BMR", 12), m.BMR)
	fmt.Fprintf(w, "%s %d kcal\n", padRight("Maintenance", 12), m.MaintenanceCalories)
	fmt.Fprintf(w, "%s %s\n", padRight("Daily", 12), color.GreenString("%d kcal", m.DailyCalories))
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func init() {
	metricsPerson.bind(metricsCmd)
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "output JSON")
	rootCmd.AddCommand(metricsCmd)

	macrosPerson.bind(macrosCmd)
	macrosCmd.Flags().BoolVar(&macrosJSON, "json", false, "output JSON")
	rootCmd.AddCommand(macrosCmd)
}

// ABOUTME: Goal-based scaling of rep and duration numbers inside exercise text.
// ABOUTME: Set counts are left alone; only numbers followed by a unit change.
package workout

import (
	"math"
	"regexp"
	"strconv"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

var repMultipliers = map[models.FitnessGoal]float64{
	models.GoalEndurance:  1.5,
	models.GoalMuscleGain: 1.2,
}

var repPattern = regexp.MustCompile(`(\d+)(\s*)(reps?|seconds?|secs?|minutes?|mins?)\b`)

// RepMultiplier returns the rep scaling factor for a goal.
func RepMultiplier(goal models.FitnessGoal) float64 {
	if m, ok := repMultipliers[goal]; ok {
		return m
	}
	return 1.0
}

// ScaleReps multiplies every number followed by a rep or time unit by the
// goal multiplier, rounding to the nearest whole number.
func ScaleReps(reps string, goal models.FitnessGoal) string {
	m := RepMultiplier(goal)
	if m == 1.0 {
		return reps
	}
	return repPattern.ReplaceAllStringFunc(reps, func(match string) string {
		parts := repPattern.FindStringSubmatch(match)
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return match
		}
		scaled := int(math.Round(float64(n) * m))
		return strconv.Itoa(scaled) + parts[2] + parts[3]
	})
}

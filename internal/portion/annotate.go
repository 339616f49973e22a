// ABOUTME: Goal- and gender-aware portion qualifiers appended to meal text.
// ABOUTME: Qualifiers also vary with the rotation cycle to avoid verbatim repeats.
package portion

import (
	"strings"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/pools"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/selection"
)

// preparationVariations are added from the second rotation cycle onward.
var preparationVariations = []string{
	"steamed or grilled preparation",
	"cooked with minimal oil",
	"add a seasonal green",
	"garnish with fresh herbs and seeds",
}

// Annotate returns meal with portion qualifiers for the goal and gender plus a
// preparation variation for the cycle. Weight-loss plans also swap white rice
// for a whole grain that rotates per cycle. An empty meal stays empty.
func Annotate(meal string, slot selection.Slot, goal models.FitnessGoal, gender models.Gender, cycle int) string {
	if meal == "" {
		return ""
	}
	if cycle < 0 {
		cycle = 0
	}

	text := meal
	var quals []string

	switch goal {
	case models.GoalWeightLoss:
		text = strings.ReplaceAll(text, "white rice", pools.WholeGrains[cycle%len(pools.WholeGrains)])
		if slot.IsSnack() {
			quals = append(quals, "small portion")
		} else {
			quals = append(quals, "smaller portions", "extra vegetables")
		}
	case models.GoalMuscleGain:
		switch {
		case slot.IsSnack():
			quals = append(quals, "add a protein source")
		case slot == selection.SlotBreakfast:
			quals = append(quals, "extra protein")
		default:
			quals = append(quals, "extra protein", "less rice")
		}
	case models.GoalEndurance:
		if slot == selection.SlotBreakfast || slot == selection.SlotLunch {
			quals = append(quals, "extra complex carbohydrates")
		}
	}

	if gender == models.GenderMale && goal != models.GoalWeightLoss && !slot.IsSnack() {
		quals = append(quals, "larger portions")
	}

	if cycle > 0 {
		quals = append(quals, preparationVariations[(cycle-1+int(slot))%len(preparationVariations)])
	}

	if len(quals) == 0 {
		return text
	}
	return text + " (" + strings.Join(quals, ", ") + ")"
}

// ABOUTME: Note templates attached to diet days for selected wellness goals.
// ABOUTME: Each goal has a short rotation so consecutive days read differently.
package pools

import "github.com/YJ074/wellness-pathway-generator-sub001/internal/models"

var wellnessNotes = map[models.WellnessGoal][]string{
	models.WellnessHairGrowth: {
		"Biotin and protein from eggs, paneer or dal support hair growth.",
		"Iron from spinach and jaggery helps carry oxygen to hair follicles.",
		"Zinc from pumpkin seeds and chana supports hair tissue repair.",
		"Omega-3 fats from walnuts and flaxseed keep the scalp healthy.",
	},
	models.WellnessGlowingSkin: {
		"Vitamin C from amla, guava and citrus supports collagen formation.",
		"Vitamin E from almonds and sunflower seeds protects skin cells.",
		"Beta-carotene from carrots and papaya supports skin renewal.",
		"Hydration and cucumber-based sides keep skin supple.",
	},
	models.WellnessFatLoss: {
		"Fill half your plate with vegetables before adding grains.",
		"Prefer steamed, grilled or roasted preparations over fried ones.",
		"A 15-minute walk after lunch helps manage blood sugar.",
		"Keep sugary drinks out; use lemon water or buttermilk instead.",
	},
	models.WellnessImmunity: {
		"Turmeric milk or haldi water at night supports immunity.",
		"Tulsi and ginger tea once a day is a traditional immunity aid.",
		"Amla or citrus daily provides vitamin C.",
	},
	models.WellnessDigestion: {
		"Jeera or ajwain water after meals aids digestion.",
		"Fermented foods like curd or idli batter support gut health.",
		"Fennel seeds after meals reduce bloating.",
	},
	models.WellnessBetterSleep: {
		"Chamomile tea an hour before bed supports sleep.",
		"Warm milk with nutmeg is a traditional sleep aid.",
		"Finish dinner at least two hours before bed.",
	},
	models.WellnessStressRelief: {
		"Ashwagandha with warm milk is a traditional adaptogen; check with your doctor first.",
		"Brahmi tea supports calm focus.",
		"Five minutes of slow breathing before meals helps you unwind.",
	},
	models.WellnessEnergy: {
		"Soaked raisins or dates in the morning give a steady energy lift.",
		"Pair carbohydrates with protein to avoid mid-afternoon slumps.",
		"Coconut water after workouts restores electrolytes.",
	},
}

// WellnessNotes returns the note rotation for a wellness goal, or nil for an
// unknown goal.
func WellnessNotes(goal models.WellnessGoal) []string {
	return wellnessNotes[goal]
}

// ABOUTME: Assembles per-slot meal pools for a cuisine zone and diet tier.
// ABOUTME: Every combination resolves to non-empty lists through fallbacks.
package pools

import "strings"

// Meals holds the candidate lists for the five daily meal slots. The lists
// are shared; callers must not modify them.
type Meals struct {
	Breakfast  []string
	MidMorning []string
	Lunch      []string
	Evening    []string
	Dinner     []string
}

var veganSwaps = strings.NewReplacer(
	"Paneer", "Tofu",
	"paneer", "tofu",
	"Chhena", "Tofu",
	"chhena", "tofu",
	"Kadhi", "Besan-coconut kadhi",
	"kadhi", "besan-coconut kadhi",
	"buttermilk", "plant-based buttermilk",
	"Curd rice", "Coconut yogurt rice",
	"curd", "coconut yogurt",
	"raita", "vegan raita",
	"ghee", "cold-pressed oil",
	"milk", "soy milk",
)

var glutenFreeSwaps = strings.NewReplacer(
	"whole wheat toast", "millet toast",
	"Wheat dosa", "Rice dosa",
	"Jowar roti", "Jowar roti",
	"jowar roti", "jowar roti",
	"roti", "jowar roti",
	"rotli", "bajra rotli",
	"chapati", "ragi chapati",
	"Chapati", "Ragi chapati",
	"paratha", "millet paratha",
	"Dalia", "Millet dalia",
	"dalia", "millet dalia",
	"daliya", "millet daliya",
	"Rava", "Millet",
	"Suji", "Millet",
	"semiya", "rice vermicelli",
	"thepla", "jowar thepla",
	"pav", "millet bread",
	"khakhra", "jowar khakhra",
	"thenthuk", "rice noodle soup",
	"thukpa", "rice noodle thukpa",
	"momos", "rice-flour momos",
	"bafla", "jowar bafla",
	"dhokli", "jowar dhokli",
)

// MealPools returns the meal candidates for a zone and diet tier. Unknown
// zones fall back to DefaultRegion and unknown tiers to DefaultTier.
func MealPools(region Region, tier Tier) Meals {
	d, ok := vegetarianByRegion[region]
	if !ok {
		region = DefaultRegion
		d = vegetarianByRegion[region]
	}

	m := Meals{
		Breakfast:  d.Breakfast,
		MidMorning: lookup(midMorningPairings, tier),
		Lunch:      d.Lunch,
		Evening:    lookup(eveningSnacks, tier),
		Dinner:     d.Dinner,
	}

	switch tier {
	case TierEggitarian:
		m.Breakfast = interleave(eggBreakfasts, d.Breakfast)
		m.Lunch = append(append([]string{}, d.Lunch...), eggMains...)
		m.Dinner = interleave(d.Dinner, eggMains)
	case TierVegan:
		m.Breakfast = swapAll(veganSwaps, d.Breakfast)
		m.Lunch = swapAll(veganSwaps, d.Lunch)
		m.Dinner = swapAll(veganSwaps, d.Dinner)
	case TierJain:
		m.Breakfast, m.Lunch, m.Dinner = jainDishes.Breakfast, jainDishes.Lunch, jainDishes.Dinner
	case TierSattvic:
		m.Breakfast, m.Lunch, m.Dinner = sattvicDishes.Breakfast, sattvicDishes.Lunch, sattvicDishes.Dinner
	case TierKeto:
		m.Breakfast, m.Lunch, m.Dinner = ketoDishes.Breakfast, ketoDishes.Lunch, ketoDishes.Dinner
	case TierNonVegetarian:
		nv, ok := nonVegetarianByRegion[region]
		if !ok {
			nv = nonVegetarianByRegion[DefaultRegion]
		}
		m.Breakfast = interleave(d.Breakfast, eggBreakfasts)
		m.Lunch = nv.Lunch
		m.Dinner = nv.Dinner
	case TierPescatarian:
		m.Lunch = interleave(coastalFish, d.Lunch)
		m.Dinner = interleave(d.Dinner, coastalFish)
	case TierGlutenFree:
		m.Breakfast = swapAll(glutenFreeSwaps, d.Breakfast)
		m.Lunch = swapAll(glutenFreeSwaps, d.Lunch)
		m.Dinner = swapAll(glutenFreeSwaps, d.Dinner)
		m.Evening = swapAll(glutenFreeSwaps, m.Evening)
	}

	return m
}

// IngredientsFor returns the composite building blocks for a diet tier.
func IngredientsFor(tier Tier) Ingredients {
	ing := Ingredients{
		Proteins:   lookup(proteinsByTier, tier),
		Vegetables: vegetableSides,
		Fruits:     fruits,
	}
	switch tier {
	case TierJain:
		ing.Vegetables = jainVegetableSides
	case TierKeto:
		ing.Fruits = ketoFruits
	}
	return ing
}

// CheatMeals returns the cheat meal catalog for a diet tier.
func CheatMeals(tier Tier) []string {
	return lookup(cheatMeals, tier)
}

// Warmups returns the warmup movement catalog.
func Warmups() []string { return warmups }

// Cooldowns returns the cooldown stretch catalog.
func Cooldowns() []string { return cooldowns }

func lookup(m map[Tier][]string, tier Tier) []string {
	if v, ok := m[tier]; ok && len(v) > 0 {
		return v
	}
	return m[DefaultTier]
}

func swapAll(r *strings.Replacer, in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = r.Replace(s)
	}
	return out
}

// interleave alternates entries of a and b, then appends whatever is left.
func interleave(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			out = append(out, a[i])
		}
		if i < len(b) {
			out = append(out, b[i])
		}
	}
	return out
}

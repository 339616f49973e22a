// ABOUTME: Diet tiers that group dietary preferences onto shared food catalogs.
// ABOUTME: TierFor maps form preferences; unknown values fall back to vegetarian.
package pools

import "github.com/YJ074/wellness-pathway-generator-sub001/internal/models"

// Tier is a family of dietary preferences that share meal catalogs.
type Tier string

const (
	TierVegetarian    Tier = "vegetarian"
	TierEggitarian    Tier = "eggitarian"
	TierVegan         Tier = "vegan"
	TierJain          Tier = "jain"
	TierSattvic       Tier = "sattvic"
	TierNonVegetarian Tier = "non-vegetarian"
	TierPescatarian   Tier = "pescatarian"
	TierKeto          Tier = "keto"
	TierGlutenFree    Tier = "gluten-free"
)

// DefaultTier is used for unrecognized dietary preferences.
const DefaultTier = TierVegetarian

// AllTiers returns all diet tiers.
var AllTiers = []Tier{
	TierVegetarian, TierEggitarian, TierVegan, TierJain, TierSattvic,
	TierNonVegetarian, TierPescatarian, TierKeto, TierGlutenFree,
}

var preferenceTiers = map[models.DietaryPreference]Tier{
	models.DietLactoVegetarian:    TierVegetarian,
	models.DietPureVegetarian:     TierVegetarian,
	models.DietLactoOvoVegetarian: TierEggitarian,
	models.DietEggitarian:         TierEggitarian,
	models.DietJain:               TierJain,
	models.DietPureJain:           TierJain,
	models.DietSattvic:            TierSattvic,
	models.DietNonVegetarian:      TierNonVegetarian,
	models.DietVegan:              TierVegan,
	models.DietPescatarian:        TierPescatarian,
	models.DietKeto:               TierKeto,
	models.DietGlutenFree:         TierGlutenFree,
}

// TierFor returns the diet tier for a dietary preference.
func TierFor(pref models.DietaryPreference) Tier {
	if t, ok := preferenceTiers[pref]; ok {
		return t
	}
	return DefaultTier
}

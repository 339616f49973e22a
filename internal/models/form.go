// ABOUTME: FormData input model and the categorical enums it carries.
// ABOUTME: Normalize resolves height and replaces invalid values with defaults.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Gender of the person the plan is generated for.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AllGenders returns all valid genders.
var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther}

// DietaryPreference constrains which food pools a plan draws from.
type DietaryPreference string

const (
	// Form preferences
	DietLactoVegetarian    DietaryPreference = "lacto-vegetarian"
	DietLactoOvoVegetarian DietaryPreference = "lacto-ovo-vegetarian"
	DietPureVegetarian     DietaryPreference = "pure-vegetarian"
	DietJain               DietaryPreference = "jain"
	DietPureJain           DietaryPreference = "pure-jain"
	DietSattvic            DietaryPreference = "sattvic"
	DietNonVegetarian      DietaryPreference = "non-vegetarian"

	// Additional catalog tiers
	DietVegan       DietaryPreference = "vegan"
	DietEggitarian  DietaryPreference = "eggitarian"
	DietPescatarian DietaryPreference = "pescatarian"
	DietKeto        DietaryPreference = "keto"
	DietGlutenFree  DietaryPreference = "gluten-free"
)

// AllDietaryPreferences returns all valid dietary preferences.
var AllDietaryPreferences = []DietaryPreference{
	DietLactoVegetarian, DietLactoOvoVegetarian, DietPureVegetarian,
	DietJain, DietPureJain, DietSattvic, DietNonVegetarian,
	DietVegan, DietEggitarian, DietPescatarian, DietKeto, DietGlutenFree,
}

// FitnessGoal drives calorie, macro and rep scaling.
type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "weight-loss"
	GoalMuscleGain  FitnessGoal = "muscle-gain"
	GoalMaintenance FitnessGoal = "maintenance"
	GoalEndurance   FitnessGoal = "endurance"
)

// AllFitnessGoals returns all valid fitness goals.
var AllFitnessGoals = []FitnessGoal{GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalEndurance}

// ExerciseFrequency is how many days per week the person already trains.
type ExerciseFrequency string

const (
	FrequencySedentary ExerciseFrequency = "sedentary"
	FrequencyLow       ExerciseFrequency = "1-2"
	FrequencyModerate  ExerciseFrequency = "3-4"
	FrequencyHigh      ExerciseFrequency = "5+"
)

// AllExerciseFrequencies returns all valid exercise frequencies.
var AllExerciseFrequencies = []ExerciseFrequency{FrequencySedentary, FrequencyLow, FrequencyModerate, FrequencyHigh}

// WellnessGoal is an optional tag that adds nutrient notes to diet days.
type WellnessGoal string

const (
	WellnessHairGrowth   WellnessGoal = "hair-growth"
	WellnessGlowingSkin  WellnessGoal = "glowing-skin"
	WellnessFatLoss      WellnessGoal = "fat-loss"
	WellnessImmunity     WellnessGoal = "immunity"
	WellnessDigestion    WellnessGoal = "digestion"
	WellnessBetterSleep  WellnessGoal = "better-sleep"
	WellnessStressRelief WellnessGoal = "stress-relief"
	WellnessEnergy       WellnessGoal = "energy"
)

// AllWellnessGoals returns all valid wellness goal tags.
var AllWellnessGoals = []WellnessGoal{
	WellnessHairGrowth, WellnessGlowingSkin, WellnessFatLoss, WellnessImmunity,
	WellnessDigestion, WellnessBetterSleep, WellnessStressRelief, WellnessEnergy,
}

// NoRegionPreference is the region code meaning "no regional cuisine".
const NoRegionPreference = "no-preference"

// Defaults applied by Normalize when an input is missing or invalid.
const (
	DefaultAgeYears = 30
	DefaultWeightKG = 70.0
	DefaultHeightCM = 170.0

	cmPerFoot = 30.48
	cmPerInch = 2.54
)

// IsValidGender checks if a string is a valid gender.
func IsValidGender(s string) bool {
	for _, g := range AllGenders {
		if string(g) == s {
			return true
		}
	}
	return false
}

// IsValidDietaryPreference checks if a string is a valid dietary preference.
func IsValidDietaryPreference(s string) bool {
	for _, d := range AllDietaryPreferences {
		if string(d) == s {
			return true
		}
	}
	return false
}

// IsValidFitnessGoal checks if a string is a valid fitness goal.
func IsValidFitnessGoal(s string) bool {
	for _, g := range AllFitnessGoals {
		if string(g) == s {
			return true
		}
	}
	return false
}

// IsValidExerciseFrequency checks if a string is a valid exercise frequency.
func IsValidExerciseFrequency(s string) bool {
	for _, f := range AllExerciseFrequencies {
		if string(f) == s {
			return true
		}
	}
	return false
}

// IsValidWellnessGoal checks if a string is a valid wellness goal tag.
func IsValidWellnessGoal(s string) bool {
	for _, w := range AllWellnessGoals {
		if string(w) == s {
			return true
		}
	}
	return false
}

// FormData is what the person submits through the multi-step form.
type FormData struct {
	Name              string            `json:"name" yaml:"name"`
	Email             string            `json:"email" yaml:"email"`
	Age               int               `json:"age" yaml:"age"`
	HeightCM          float64           `json:"height,omitempty" yaml:"height,omitempty"`
	HeightFeet        int               `json:"heightFeet,omitempty" yaml:"heightFeet,omitempty"`
	HeightInches      int               `json:"heightInches,omitempty" yaml:"heightInches,omitempty"`
	WeightKG          float64           `json:"weight" yaml:"weight"`
	MobileNumber      string            `json:"mobileNumber,omitempty" yaml:"mobileNumber,omitempty"`
	Gender            Gender            `json:"gender" yaml:"gender"`
	DietaryPreference DietaryPreference `json:"dietaryPreference" yaml:"dietaryPreference"`
	FitnessGoal       FitnessGoal       `json:"fitnessGoal" yaml:"fitnessGoal"`
	ExerciseFrequency ExerciseFrequency `json:"exerciseFrequency" yaml:"exerciseFrequency"`
	Region            string            `json:"region,omitempty" yaml:"region,omitempty"`
	WellnessGoals     []WellnessGoal    `json:"wellnessGoals,omitempty" yaml:"wellnessGoals,omitempty"`
	HasMuscularBuild  bool              `json:"hasMuscularBuild,omitempty" yaml:"hasMuscularBuild,omitempty"`
}

// HeightInCM resolves the height to centimeters, preferring the direct value
// and falling back to feet/inches. Returns 0 when neither is usable.
func (f FormData) HeightInCM() float64 {
	if f.HeightCM > 0 && !math.IsNaN(f.HeightCM) && !math.IsInf(f.HeightCM, 0) {
		return f.HeightCM
	}
	if f.HeightFeet > 0 || f.HeightInches > 0 {
		cm := float64(f.HeightFeet)*cmPerFoot + float64(f.HeightInches)*cmPerInch
		return math.Round(cm*10) / 10
	}
	return 0
}

// Normalize returns a copy of the form where every value the generators read
// is usable: height resolved to centimeters, numbers positive, enums valid.
// Unknown wellness goals are dropped and duplicates removed.
func (f FormData) Normalize() FormData {
	n := f
	n.Name = strings.TrimSpace(f.Name)
	n.Email = strings.TrimSpace(f.Email)
	n.Region = strings.ToLower(strings.TrimSpace(f.Region))

	if n.Age <= 0 || n.Age > 120 {
		n.Age = DefaultAgeYears
	}
	if f.WeightKG <= 0 || math.IsNaN(f.WeightKG) || math.IsInf(f.WeightKG, 0) {
		n.WeightKG = DefaultWeightKG
	}
	if h := f.HeightInCM(); h > 0 {
		n.HeightCM = h
	} else {
		n.HeightCM = DefaultHeightCM
	}

	if !IsValidGender(string(n.Gender)) {
		n.Gender = GenderOther
	}
	if !IsValidDietaryPreference(string(n.DietaryPreference)) {
		n.DietaryPreference = DietLactoVegetarian
	}
	if !IsValidFitnessGoal(string(n.FitnessGoal)) {
		n.FitnessGoal = GoalMaintenance
	}
	if !IsValidExerciseFrequency(string(n.ExerciseFrequency)) {
		n.ExerciseFrequency = FrequencySedentary
	}

	n.WellnessGoals = nil
	seen := make(map[WellnessGoal]bool, len(f.WellnessGoals))
	for _, g := range f.WellnessGoals {
		if !IsValidWellnessGoal(string(g)) || seen[g] {
			continue
		}
		seen[g] = true
		n.WellnessGoals = append(n.WellnessGoals, g)
	}

	return n
}

// ParseNumber parses a numeric form value, returning fallback for anything
// that is empty, malformed, non-finite or not positive.
func ParseNumber(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}

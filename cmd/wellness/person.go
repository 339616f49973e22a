// ABOUTME: Person flags and form files shared by generate, metrics and macros.
// ABOUTME: Form files are JSON or YAML; numeric fields may be numbers or strings.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// personFlags collects a person's details from flags and an optional form file.
type personFlags struct {
	formFile string

	name      string
	email     string
	mobile    string
	age       string
	height    string
	feet      int
	inches    int
	weight    string
	gender    string
	diet      string
	goal      string
	frequency string
	region    string
	wellness  []string
	muscular  bool
}

func (p *personFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&p.formFile, "form", "", "JSON or YAML form file (flags override its values)")
	f.StringVar(&p.name, "name", "", "person's name")
	f.StringVar(&p.email, "email", "", "email address (seeds the workout selection)")
	f.StringVar(&p.mobile, "mobile", "", "mobile number")
	f.StringVar(&p.age, "age", "", "age in years")
	f.StringVar(&p.height, "height", "", "height in centimeters")
	f.IntVar(&p.feet, "height-feet", 0, "height feet (when --height is not given)")
	f.IntVar(&p.inches, "height-inches", 0, "height inches (with --height-feet)")
	f.StringVar(&p.weight, "weight", "", "weight in kilograms")
	f.StringVarP(&p.gender, "gender", "g", "", "male, female or other")
	f.StringVarP(&p.diet, "diet", "d", "", "dietary preference, e.g. jain, vegan, non-vegetarian")
	f.StringVar(&p.goal, "goal", "", "weight-loss, muscle-gain, maintenance or endurance")
	f.StringVar(&p.frequency, "frequency", "", "exercise days per week: sedentary, 1-2, 3-4 or 5+")
	f.StringVar(&p.region, "region", "", "Indian state or zone for regional dishes")
	f.StringSliceVar(&p.wellness, "wellness", nil, "wellness goals, e.g. immunity,better-sleep")
	f.BoolVar(&p.muscular, "muscular", false, "person has a muscular build")
}

// form builds the submitted form: the form file first, then any flags the
// user set on top. Values are not normalized here; invalid ones are logged
// and later fall back to defaults.
func (p *personFlags) form(cmd *cobra.Command) (models.FormData, error) {
	var f models.FormData
	if p.formFile != "" {
		var err error
		f, err = loadFormFile(p.formFile)
		if err != nil {
			return models.FormData{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("name") {
		f.Name = p.name
	}
	if changed("email") {
		f.Email = p.email
	}
	if changed("mobile") {
		f.MobileNumber = p.mobile
	}
	if changed("age") {
		f.Age = int(models.ParseNumber(p.age, 0))
	}
	if changed("height") {
		f.HeightCM = models.ParseNumber(p.height, 0)
	}
	if changed("height-feet") {
		f.HeightFeet = p.feet
	}
	if changed("height-inches") {
		f.HeightInches = p.inches
	}
	if changed("weight") {
		f.WeightKG = models.ParseNumber(p.weight, 0)
	}
	if changed("gender") {
		f.Gender = models.Gender(strings.ToLower(p.gender))
	}
	if changed("diet") {
		f.DietaryPreference = models.DietaryPreference(strings.ToLower(p.diet))
	}
	if changed("goal") {
		f.FitnessGoal = models.FitnessGoal(strings.ToLower(p.goal))
	}
	if changed("frequency") {
		f.ExerciseFrequency = models.ExerciseFrequency(strings.ToLower(p.frequency))
	}
	if changed("region") {
		f.Region = p.region
	}
	if changed("wellness") {
		f.WellnessGoals = nil
		for _, g := range p.wellness {
			f.WellnessGoals = append(f.WellnessGoals, models.WellnessGoal(strings.ToLower(strings.TrimSpace(g))))
		}
	}
	if changed("muscular") {
		f.HasMuscularBuild = p.muscular
	}

	warnInvalid(f)
	return f, nil
}

// warnInvalid logs values that normalization will replace with defaults.
func warnInvalid(f models.FormData) {
	check := func(field, value string, valid func(string) bool) {
		if value != "" && !valid(value) {
			log.WithField(field, value).Warn("unknown value, using default")
		}
	}
	check("gender", string(f.Gender), models.IsValidGender)
	check("dietaryPreference", string(f.DietaryPreference), models.IsValidDietaryPreference)
	check("fitnessGoal", string(f.FitnessGoal), models.IsValidFitnessGoal)
	check("exerciseFrequency", string(f.ExerciseFrequency), models.IsValidExerciseFrequency)
	for _, g := range f.WellnessGoals {
		check("wellnessGoal", string(g), models.IsValidWellnessGoal)
	}
}

// flexNumber accepts a JSON or YAML number or numeric string, the way web
// forms submit them.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	*n = flexNumber(strings.Trim(s, `"`))
	return nil
}

func (n *flexNumber) UnmarshalYAML(value *yaml.Node) error {
	*n = flexNumber(value.Value)
	return nil
}

func (n flexNumber) float() float64 { return models.ParseNumber(string(n), 0) }

// formFile mirrors the form's wire keys with lenient numeric fields.
type formFile struct {
	Name              string     `json:"name" yaml:"name"`
	Email             string     `json:"email" yaml:"email"`
	MobileNumber      string     `json:"mobileNumber" yaml:"mobileNumber"`
	Age               flexNumber `json:"age" yaml:"age"`
	Height            flexNumber `json:"height" yaml:"height"`
	HeightFeet        flexNumber `json:"heightFeet" yaml:"heightFeet"`
	HeightInches      flexNumber `json:"heightInches" yaml:"heightInches"`
	Weight            flexNumber `json:"weight" yaml:"weight"`
	Gender            string     `json:"gender" yaml:"gender"`
	DietaryPreference string     `json:"dietaryPreference" yaml:"dietaryPreference"`
	FitnessGoal       string     `json:"fitnessGoal" yaml:"fitnessGoal"`
	ExerciseFrequency string     `json:"exerciseFrequency" yaml:"exerciseFrequency"`
	Region            string     `json:"region" yaml:"region"`
	WellnessGoals     []string   `json:"wellnessGoals" yaml:"wellnessGoals"`
	HasMuscularBuild  bool       `json:"hasMuscularBuild" yaml:"hasMuscularBuild"`
}

func (ff formFile) toForm() models.FormData {
	f := models.FormData{
		Name:              ff.Name,
		Email:             ff.Email,
		MobileNumber:      ff.MobileNumber,
		Age:               int(ff.Age.float()),
		HeightCM:          ff.Height.float(),
		HeightFeet:        int(ff.HeightFeet.float()),
		HeightInches:      int(ff.HeightInches.float()),
		WeightKG:          ff.Weight.float(),
		Gender:            models.Gender(strings.ToLower(ff.Gender)),
		DietaryPreference: models.DietaryPreference(strings.ToLower(ff.DietaryPreference)),
		FitnessGoal:       models.FitnessGoal(strings.ToLower(ff.FitnessGoal)),
		ExerciseFrequency: models.ExerciseFrequency(strings.ToLower(ff.ExerciseFrequency)),
		Region:            ff.Region,
		HasMuscularBuild:  ff.HasMuscularBuild,
	}
	for _, g := range ff.WellnessGoals {
		f.WellnessGoals = append(f.WellnessGoals, models.WellnessGoal(strings.ToLower(g)))
	}
	return f
}

// loadFormFile reads a form from path; .yaml and .yml files are YAML,
// everything else JSON.
func loadFormFile(path string) (models.FormData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.FormData{}, fmt.Errorf("failed to read form: %w", err)
	}

	var ff formFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ff)
	default:
		err = json.Unmarshal(data, &ff)
	}
	if err != nil {
		return models.FormData{}, fmt.Errorf("failed to parse form %s: %w", path, err)
	}
	return ff.toForm(), nil
}

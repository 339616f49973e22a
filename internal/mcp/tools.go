// ABOUTME: MCP tool implementations for plan generation and stored submissions.
// ABOUTME: Generates plans, computes metrics and macros, and manages submissions.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/biometrics"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/diet"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/planner"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/portion"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/report"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/storage"
)

// DefaultPreviewDays is how many plan days generate_plan returns by default.
const DefaultPreviewDays = 7

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_plan",
		Description: "Generate a deterministic 75-day diet and workout plan from a person's details",
	}, s.handleGeneratePlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_metrics",
		Description: "Calculate BMI, BMI category, BMR and daily calorie targets",
	}, s.handleCalculateMetrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "estimate_macros",
		Description: "Estimate daily protein, fat and carbohydrate grams and water intake",
	}, s.handleEstimateMacros)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_submissions",
		Description: "List saved plan submissions, newest first, optionally filtered by fitness goal",
	}, s.handleListSubmissions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_submission",
		Description: "Get a saved submission and its plan by ID or ID prefix",
	}, s.handleGetSubmission)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_submission",
		Description: "Delete a saved submission by ID or ID prefix",
	}, s.handleDeleteSubmission)
}

// Tool input/output types

type formInput struct {
	Name              string   `json:"name,omitempty" jsonschema:"Person's name"`
	Email             string   `json:"email,omitempty" jsonschema:"Email address; also seeds the workout selection"`
	MobileNumber      string   `json:"mobile_number,omitempty" jsonschema:"Mobile number"`
	Age               int      `json:"age,omitempty" jsonschema:"Age in years (default 30)"`
	HeightCM          float64  `json:"height_cm,omitempty" jsonschema:"Height in centimeters"`
	HeightFeet        int      `json:"height_feet,omitempty" jsonschema:"Height feet, used when height_cm is not given"`
	HeightInches      int      `json:"height_inches,omitempty" jsonschema:"Height inches, used with height_feet"`
	WeightKG          float64  `json:"weight_kg,omitempty" jsonschema:"Weight in kilograms (default 70)"`
	Gender            string   `json:"gender,omitempty" jsonschema:"male, female or other"`
	DietaryPreference string   `json:"dietary_preference,omitempty" jsonschema:"lacto-vegetarian, lacto-ovo-vegetarian, pure-vegetarian, jain, pure-jain, sattvic, non-vegetarian, vegan, eggitarian, pescatarian, keto or gluten-free"`
	FitnessGoal       string   `json:"fitness_goal,omitempty" jsonschema:"weight-loss, muscle-gain, maintenance or endurance"`
	ExerciseFrequency string   `json:"exercise_frequency,omitempty" jsonschema:"sedentary, 1-2, 3-4 or 5+ days per week"`
	Region            string   `json:"region,omitempty" jsonschema:"Indian state or zone for regional dishes, e.g. kerala or south"`
	WellnessGoals     []string `json:"wellness_goals,omitempty" jsonschema:"Optional tags: hair-growth, glowing-skin, fat-loss, immunity, digestion, better-sleep, stress-relief, energy"`
	MuscularBuild     bool     `json:"muscular_build,omitempty" jsonschema:"Whether the person has a muscular build"`
}

func (in formInput) toForm() models.FormData {
	f := models.FormData{
		Name:              in.Name,
		Email:             in.Email,
		MobileNumber:      in.MobileNumber,
		Age:               in.Age,
		HeightCM:          in.HeightCM,
		HeightFeet:        in.HeightFeet,
		HeightInches:      in.HeightInches,
		WeightKG:          in.WeightKG,
		Gender:            models.Gender(in.Gender),
		DietaryPreference: models.DietaryPreference(in.DietaryPreference),
		FitnessGoal:       models.FitnessGoal(in.FitnessGoal),
		ExerciseFrequency: models.ExerciseFrequency(in.ExerciseFrequency),
		Region:            in.Region,
		HasMuscularBuild:  in.MuscularBuild,
	}
	for _, g := range in.WellnessGoals {
		f.WellnessGoals = append(f.WellnessGoals, models.WellnessGoal(g))
	}
	return f.Normalize()
}

type generatePlanInput struct {
	Person       formInput `json:"person" jsonschema:"The person's details; missing or invalid values fall back to defaults"`
	Save         bool      `json:"save,omitempty" jsonschema:"Save the submission so it can be listed later"`
	LegacySnacks bool      `json:"legacy_snacks,omitempty" jsonschema:"Use a single snacks line instead of mid-morning and evening snacks"`
	Days         int       `json:"days,omitempty" jsonschema:"Number of plan days to return (default 7, max 75)"`
	Markdown     bool      `json:"markdown,omitempty" jsonschema:"Also return the whole plan as a Markdown document"`
}

type planOutput struct {
	ID          string              `json:"id,omitempty"`
	Seed        uint64              `json:"seed"`
	Metrics     models.Metrics      `json:"metrics"`
	Macros      models.Macros       `json:"macros"`
	RestDays    int                 `json:"rest_days"`
	DietDays    []models.DietDay    `json:"diet_days"`
	WorkoutDays []models.WorkoutDay `json:"workout_days"`
	Markdown    string              `json:"markdown,omitempty"`
	Message     string              `json:"message"`
}

type metricsOutput struct {
	Metrics            models.Metrics `json:"metrics"`
	ActivityMultiplier float64        `json:"activityMultiplier"`
	GoalFactor         float64        `json:"goalFactor"`
}

type macrosOutput struct {
	Metrics     models.Metrics `json:"metrics"`
	Macros      models.Macros  `json:"macros"`
	WaterLitres float64        `json:"waterLitres"`
}

type listSubmissionsInput struct {
	FitnessGoal string `json:"fitness_goal,omitempty" jsonschema:"Filter by fitness goal"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type submissionSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	FitnessGoal       string `json:"fitness_goal"`
	DietaryPreference string `json:"dietary_preference"`
	DailyCalories     int    `json:"daily_calories,omitempty"`
	CreatedAt         string `json:"created_at"`
}

type getSubmissionInput struct {
	ID     string `json:"id" jsonschema:"Submission ID or prefix"`
	Format string `json:"format,omitempty" jsonschema:"json (default) or markdown"`
}

type deleteSubmissionInput struct {
	ID string `json:"id" jsonschema:"Submission ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleGeneratePlan(ctx context.Context, req *mcp.CallToolRequest, input generatePlanInput) (*mcp.CallToolResult, any, error) {
	layout := diet.LayoutSegmented
	if input.LegacySnacks {
		layout = diet.LayoutLegacy
	}
	p := planner.Generate(input.Person.toForm(), planner.Options{Layout: layout, Clock: s.now})

	days := input.Days
	if days <= 0 {
		days = DefaultPreviewDays
	}
	if days > len(p.Diet.Days) {
		days = len(p.Diet.Days)
	}

	out := planOutput{
		Seed:        p.Seed,
		Metrics:     p.Diet.Metrics,
		Macros:      p.Diet.Macros,
		RestDays:    p.Workout.RestDays(),
		DietDays:    p.Diet.Days[:days],
		WorkoutDays: p.Workout.Days[:days],
		Message:     fmt.Sprintf("Generated a %d-day plan at %d kcal/day (showing %d days)", len(p.Diet.Days), p.Diet.Metrics.DailyCalories, days),
	}
	if input.Markdown {
		out.Markdown = report.Markdown(p)
	}

	if input.Save {
		sub := models.NewSubmission(p.Form, p).WithCreatedAt(p.GeneratedAt)
		if err := s.repo.CreateSubmission(sub); err != nil {
			return nil, nil, fmt.Errorf("failed to save submission: %w", err)
		}
		out.ID = sub.ShortID()
		out.Message += fmt.Sprintf(", saved as %s", sub.ShortID())
	}

	return nil, out, nil
}

func (s *Server) handleCalculateMetrics(ctx context.Context, req *mcp.CallToolRequest, input formInput) (*mcp.CallToolResult, metricsOutput, error) {
	f := input.toForm()
	return nil, metricsOutput{
		Metrics:            biometrics.Calculate(f),
		ActivityMultiplier: biometrics.ActivityMultiplier(f.ExerciseFrequency),
		GoalFactor:         biometrics.GoalFactor(f.FitnessGoal),
	}, nil
}

func (s *Server) handleEstimateMacros(ctx context.Context, req *mcp.CallToolRequest, input formInput) (*mcp.CallToolResult, macrosOutput, error) {
	f := input.toForm()
	m := biometrics.Calculate(f)
	return nil, macrosOutput{
		Metrics: m,
		Macros: portion.EstimateMacros(portion.MacroInput{
			DailyCalories: m.DailyCalories,
			WeightKG:      f.WeightKG,
			Goal:          f.FitnessGoal,
			Gender:        f.Gender,
			Diet:          f.DietaryPreference,
			Frequency:     f.ExerciseFrequency,
		}),
		WaterLitres: diet.WaterLitres(f.WeightKG, f.FitnessGoal),
	}, nil
}

func (s *Server) handleListSubmissions(ctx context.Context, req *mcp.CallToolRequest, input listSubmissionsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var goal *models.FitnessGoal
	if input.FitnessGoal != "" {
		if !models.IsValidFitnessGoal(input.FitnessGoal) {
			return nil, nil, fmt.Errorf("unknown fitness goal: %s", input.FitnessGoal)
		}
		g := models.FitnessGoal(input.FitnessGoal)
		goal = &g
	}

	subs, err := s.repo.ListSubmissions(goal, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	if len(subs) == 0 {
		return nil, map[string]interface{}{"message": "No submissions found."}, nil
	}

	return nil, map[string]interface{}{"submissions": summarize(subs)}, nil
}

func (s *Server) handleGetSubmission(ctx context.Context, req *mcp.CallToolRequest, input getSubmissionInput) (*mcp.CallToolResult, any, error) {
	sub, err := s.repo.GetSubmission(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get submission: %w", err)
	}

	format, err := report.ParseFormat(input.Format)
	if err != nil {
		return nil, nil, err
	}
	if format == report.FormatMarkdown {
		if sub.Plan == nil {
			return nil, nil, fmt.Errorf("submission %s has no plan", sub.ShortID())
		}
		return nil, map[string]interface{}{
			"id":       sub.ID.String(),
			"markdown": report.Markdown(sub.Plan),
		}, nil
	}

	return nil, sub, nil
}

func (s *Server) handleDeleteSubmission(ctx context.Context, req *mcp.CallToolRequest, input deleteSubmissionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteSubmission(input.ID); err != nil {
		if errors.Is(err, storage.ErrAmbiguous) {
			return nil, simpleOutput{}, fmt.Errorf("%w; use a longer ID prefix", err)
		}
		return nil, simpleOutput{}, fmt.Errorf("failed to delete submission: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted submission: %s", input.ID),
	}, nil
}

func summarize(subs []*models.Submission) []submissionSummary {
	out := make([]submissionSummary, 0, len(subs))
	for _, sub := range subs {
		sum := submissionSummary{
			ID:                sub.ShortID(),
			Name:              sub.DisplayName(),
			FitnessGoal:       string(sub.Form.FitnessGoal),
			DietaryPreference: string(sub.Form.DietaryPreference),
			CreatedAt:         sub.CreatedAt.Format(time.RFC3339),
		}
		if sub.Plan != nil {
			sum.DailyCalories = sub.Plan.Diet.Metrics.DailyCalories
		}
		out = append(out, sum)
	}
	return out
}

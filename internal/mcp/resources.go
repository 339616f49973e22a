// ABOUTME: MCP resource implementations for the wellness plan generator.
// ABOUTME: Provides wellness://recent and wellness://catalog resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/pools"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/report"
)

const (
	recentURI  = "wellness://recent"
	catalogURI = "wellness://catalog"

	recentLimit = 10
)

func (s *Server) registerResources() {
	// wellness://recent - Last 10 saved submissions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Submissions",
		Description: "Last 10 saved plan submissions with their calorie targets",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// wellness://catalog - Accepted input values
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         catalogURI,
		Name:        "Input Catalog",
		Description: "Accepted genders, dietary preferences, goals, frequencies, wellness tags and regions",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	subs, err := s.repo.ListSubmissions(nil, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	result := map[string]interface{}{
		"submissions": summarize(subs),
		"count":       len(subs),
	}
	return jsonResource(recentURI, result)
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"genders":              models.AllGenders,
		"dietary_preferences":  models.AllDietaryPreferences,
		"fitness_goals":        models.AllFitnessGoals,
		"exercise_frequencies": models.AllExerciseFrequencies,
		"wellness_goals":       models.AllWellnessGoals,
		"regions":              pools.AllRegions,
		"diet_tiers":           pools.AllTiers,
		"formats":              report.AllFormats,
		"plan_days":            models.PlanDays,
	}
	return jsonResource(catalogURI, result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

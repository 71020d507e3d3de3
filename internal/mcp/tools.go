// ABOUTME: MCP tool implementations mirroring the chat command surface.
// ABOUTME: set_profile takes all five answers at once; the tools share the bot's ledger.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/hydrocal/hydrocal/internal/models"
	"github.com/hydrocal/hydrocal/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Configure a user's profile and derive daily water and calorie goals",
	}, s.handleSetProfile)

	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Log water intake in milliliters",
	}, s.handleLogWater)

	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a meal by food name and eaten weight in grams",
	}, s.handleLogFood)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout by type and duration in minutes",
	}, s.handleLogWorkout)

	// check_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_progress",
		Description: "Get today's water and calorie standing against the goals",
	}, s.handleCheckProgress)
}

// Tool input/output types

type setProfileInput struct {
	UserID          int64   `json:"user_id" jsonschema:"User identifier"`
	WeightKG        float64 `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	HeightCM        float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	AgeYears        int     `json:"age_years" jsonschema:"Age in years"`
	ActivityMinutes int     `json:"activity_minutes" jsonschema:"Daily activity in minutes"`
	City            string  `json:"city" jsonschema:"City used for the weather-based water bonus"`
}

type setProfileOutput struct {
	WaterGoalML     int    `json:"water_goal_ml"`
	CalorieGoalKcal int    `json:"calorie_goal_kcal"`
	Message         string `json:"message"`
}

type logWaterInput struct {
	UserID   int64 `json:"user_id" jsonschema:"User identifier"`
	AmountML int   `json:"amount_ml" jsonschema:"Water amount in milliliters"`
}

type logWaterOutput struct {
	TotalML     int    `json:"total_ml"`
	GoalML      int    `json:"goal_ml"`
	RemainingML int    `json:"remaining_ml"`
	Message     string `json:"message"`
}

type logFoodInput struct {
	UserID  int64   `json:"user_id" jsonschema:"User identifier"`
	Name    string  `json:"name" jsonschema:"Free-text food name"`
	WeightG float64 `json:"weight_g" jsonschema:"Eaten weight in grams"`
}

type logFoodOutput struct {
	Name      string  `json:"name"`
	Kcal      float64 `json:"kcal"`
	TotalKcal float64 `json:"total_kcal"`
	Message   string  `json:"message"`
}

type logWorkoutInput struct {
	UserID          int64  `json:"user_id" jsonschema:"User identifier"`
	WorkoutType     string `json:"workout_type" jsonschema:"Free-text workout type"`
	DurationMinutes int    `json:"duration_minutes" jsonschema:"Duration in minutes"`
}

type logWorkoutOutput struct {
	BurnedKcal  int    `json:"burned_kcal"`
	WaterNeedML int    `json:"water_need_ml"`
	Message     string `json:"message"`
}

type checkProgressInput struct {
	UserID int64 `json:"user_id" jsonschema:"User identifier"`
}

// Tool handlers

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, setProfileOutput, error) {
	if input.WeightKG <= 0 || input.HeightCM <= 0 {
		return nil, setProfileOutput{}, fmt.Errorf("weight and height must be positive")
	}
	if input.AgeYears < 0 || input.ActivityMinutes < 0 {
		return nil, setProfileOutput{}, fmt.Errorf("age and activity must be non-negative")
	}
	if input.City == "" {
		return nil, setProfileOutput{}, fmt.Errorf("city is required")
	}

	rec := s.tracker.CompleteOnboarding(ctx, input.UserID, models.Profile{
		WeightKG:        input.WeightKG,
		HeightCM:        input.HeightCM,
		AgeYears:        input.AgeYears,
		ActivityMinutes: input.ActivityMinutes,
		City:            input.City,
	})

	return nil, setProfileOutput{
		WaterGoalML:     rec.WaterGoalML,
		CalorieGoalKcal: rec.CalorieGoalKcal,
		Message: fmt.Sprintf("Profile configured: %d ml water, %d kcal daily goals",
			rec.WaterGoalML, rec.CalorieGoalKcal),
	}, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, logWaterOutput, error) {
	e, err := s.tracker.LogWater(input.UserID, input.AmountML)
	if err != nil {
		return nil, logWaterOutput{}, toolError(err)
	}

	return nil, logWaterOutput{
		TotalML:     e.TotalML,
		GoalML:      e.GoalML,
		RemainingML: e.RemainingML,
		Message:     fmt.Sprintf("Logged %d ml; %d of %d ml today", e.AmountML, e.TotalML, e.GoalML),
	}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, logFoodOutput, error) {
	e, err := s.tracker.LogFood(ctx, input.UserID, input.Name, input.WeightG)
	if err != nil {
		return nil, logFoodOutput{}, toolError(err)
	}

	return nil, logFoodOutput{
		Name:      e.Name,
		Kcal:      e.Kcal,
		TotalKcal: e.TotalKcal,
		Message:   fmt.Sprintf("Logged %s: %.1f kcal (%.0f g)", e.Name, e.Kcal, e.WeightG),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	e, err := s.tracker.LogWorkout(input.UserID, input.WorkoutType, input.DurationMinutes)
	if err != nil {
		return nil, logWorkoutOutput{}, toolError(err)
	}

	msg := fmt.Sprintf("Logged %s for %d min: %d kcal burned", e.Kind, e.Minutes, e.BurnedKcal)
	if e.WaterNeedML > 0 {
		msg += fmt.Sprintf("; drink an extra %d ml of water", e.WaterNeedML)
	}
	return nil, logWorkoutOutput{
		BurnedKcal:  e.BurnedKcal,
		WaterNeedML: e.WaterNeedML,
		Message:     msg,
	}, nil
}

func (s *Server) handleCheckProgress(ctx context.Context, req *mcp.CallToolRequest, input checkProgressInput) (*mcp.CallToolResult, any, error) {
	p, err := s.tracker.Progress(input.UserID)
	if err != nil {
		return nil, nil, toolError(err)
	}
	return nil, p, nil
}

// toolError maps internal errors to messages an MCP client can act on.
func toolError(err error) error {
	if errors.Is(err, tracker.ErrNotOnboarded) {
		return fmt.Errorf("user has no profile yet; call set_profile first")
	}
	return err
}

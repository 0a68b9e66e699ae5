/*
Package planner turns a structured request into prompts, asks the language
model for a plan, and maps the coerced reply back into a typed result. The
Render and Map functions are pure; Service only sequences them around one
gateway call.
*/
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"healthcube/internal/llmservice"
	"healthcube/internal/models"
)

// FoodMatcher finds reference table rows that a free-text description mentions.
type FoodMatcher interface {
	Match(query string, limit int) []models.FoodKnowledgeItem
}

// UpstreamError wraps a gateway or parse failure for the operation that hit it.
// The underlying *llmservice.GatewayError or *llmservice.ParseError is reachable
// through errors.As.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

type Service struct {
	gateway llmservice.Gateway
	matcher FoodMatcher
}

// NewService wires the planner to a gateway. matcher may be nil, in which case
// food prompts carry only the reference table.
func NewService(gateway llmservice.Gateway, matcher FoodMatcher) *Service {
	return &Service{gateway: gateway, matcher: matcher}
}

func (s *Service) MealPlan(ctx context.Context, req models.MealPlanRequest) (models.MealPlanResult, error) {
	system, user := RenderMealPlanPrompts(req)
	raw, err := s.ask(ctx, "meal plan", system, user)
	if err != nil {
		return models.MealPlanResult{}, err
	}
	return MapMealPlan(raw, req.Preferences), nil
}

func (s *Service) WorkoutPlan(ctx context.Context, req models.WorkoutPlanRequest) (models.WorkoutPlanResult, error) {
	system, user := RenderWorkoutPlanPrompts(req)
	raw, err := s.ask(ctx, "workout plan", system, user)
	if err != nil {
		return models.WorkoutPlanResult{}, err
	}
	return MapWorkoutPlan(raw, req.Preferences), nil
}

func (s *Service) FoodCalorie(ctx context.Context, q models.FoodCalorieQuery) (models.FoodCalorieResult, error) {
	var hints []models.FoodKnowledgeItem
	if s.matcher != nil {
		hints = s.matcher.Match(q.Query, maxHintItems)
	}

	system, user := RenderFoodCaloriePrompts(q, hints)
	raw, err := s.ask(ctx, "food calorie", system, user)
	if err != nil {
		return models.FoodCalorieResult{}, err
	}
	return MapFoodCalorie(raw), nil
}

// ask performs exactly one gateway call and coerces the reply. There is no
// retry and no caching.
func (s *Service) ask(ctx context.Context, op, system, user string) (map[string]any, error) {
	log := zerolog.Ctx(ctx)
	start := time.Now()

	reply, err := s.gateway.Invoke(ctx, system, user, llmservice.DefaultTemperature)
	if err != nil {
		log.Error().Err(err).Str("op", op).Dur("elapsed", time.Since(start)).Msg("model call failed")
		return nil, &UpstreamError{Op: op, Err: err}
	}

	raw, err := llmservice.Coerce(reply)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Int("reply_len", len(reply)).Msg("model reply could not be parsed")
		return nil, &UpstreamError{Op: op, Err: err}
	}

	log.Debug().Str("op", op).Dur("elapsed", time.Since(start)).Msg("model reply parsed")
	return raw, nil
}

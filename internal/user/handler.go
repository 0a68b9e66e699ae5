/*
Package user holds the HTTP handlers for the AI planning endpoints and the
body-measurement history.
*/
package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"healthcube/internal/database"
	"healthcube/internal/llmservice"
	"healthcube/internal/models"
	"healthcube/internal/utility"
)

// Planner is the slice of planner.Service the handlers call.
type Planner interface {
	MealPlan(ctx context.Context, req models.MealPlanRequest) (models.MealPlanResult, error)
	WorkoutPlan(ctx context.Context, req models.WorkoutPlanRequest) (models.WorkoutPlanResult, error)
	FoodCalorie(ctx context.Context, q models.FoodCalorieQuery) (models.FoodCalorieResult, error)
}

type Handler struct {
	planner Planner
	store   database.Service
}

func NewHandler(p Planner, store database.Service) *Handler {
	return &Handler{planner: p, store: store}
}

// bindAndValidate decodes the JSON body into req and runs the registered
// validator. Both failures come back as a 422 *echo.HTTPError.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).SetInternal(err)
	}
	return nil
}

// upstreamFailure logs which side of the model call failed and answers 500.
func upstreamFailure(c echo.Context, op string, err error) error {
	logger := utility.GetLogger(c)

	var gwErr *llmservice.GatewayError
	var parseErr *llmservice.ParseError
	switch {
	case errors.As(err, &gwErr):
		logger.Error().Err(err).Str("op", op).Int("status", gwErr.StatusCode).Msg("AI provider call failed")
	case errors.As(err, &parseErr):
		logger.Error().Err(err).Str("op", op).Msg("AI reply was not valid JSON")
	default:
		logger.Error().Err(err).Str("op", op).Msg("AI request failed")
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error":  "AI service call failed",
		"detail": err.Error(),
	})
}

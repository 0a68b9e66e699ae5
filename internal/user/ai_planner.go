package user

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthcube/internal/fooddata"
	"healthcube/internal/models"
)

/* =================================================================================
								AI PLANNER HANDLERS
=================================================================================*/

// MealPlanHandler handles POST /api/ai/meal-plan.
func (h *Handler) MealPlanHandler(c echo.Context) error {
	var req models.MealPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plan, err := h.planner.MealPlan(c.Request().Context(), req)
	if err != nil {
		return upstreamFailure(c, "meal plan", err)
	}

	return c.JSON(http.StatusOK, plan)
}

// WorkoutPlanHandler handles POST /api/ai/workout-plan.
func (h *Handler) WorkoutPlanHandler(c echo.Context) error {
	var req models.WorkoutPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	plan, err := h.planner.WorkoutPlan(c.Request().Context(), req)
	if err != nil {
		return upstreamFailure(c, "workout plan", err)
	}

	return c.JSON(http.StatusOK, plan)
}

// FoodCalorieHandler handles POST /api/ai/food-calorie.
func (h *Handler) FoodCalorieHandler(c echo.Context) error {
	var req models.FoodCalorieQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.planner.FoodCalorie(c.Request().Context(), req)
	if err != nil {
		return upstreamFailure(c, "food calorie", err)
	}

	return c.JSON(http.StatusOK, result)
}

// FoodTableHandler handles GET /api/ai/food-table and returns the static
// nutrition reference the calorie estimates are grounded on.
func (h *Handler) FoodTableHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": fooddata.Items()})
}

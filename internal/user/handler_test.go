package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcube/internal/database"
	"healthcube/internal/llmservice"
	"healthcube/internal/models"
	"healthcube/internal/planner"
	"healthcube/internal/utility"
)

type fakePlanner struct {
	meal    models.MealPlanResult
	workout models.WorkoutPlanResult
	food    models.FoodCalorieResult
	err     error

	gotMeal models.MealPlanRequest
	gotFood models.FoodCalorieQuery
}

func (f *fakePlanner) MealPlan(_ context.Context, req models.MealPlanRequest) (models.MealPlanResult, error) {
	f.gotMeal = req
	return f.meal, f.err
}

func (f *fakePlanner) WorkoutPlan(_ context.Context, _ models.WorkoutPlanRequest) (models.WorkoutPlanResult, error) {
	return f.workout, f.err
}

func (f *fakePlanner) FoodCalorie(_ context.Context, q models.FoodCalorieQuery) (models.FoodCalorieResult, error) {
	f.gotFood = q
	return f.food, f.err
}

func newTestEcho(t *testing.T, p Planner) *echo.Echo {
	t.Helper()

	store := database.NewService(filepath.Join(t.TempDir(), "body.json"))
	h := NewHandler(p, store)

	e := echo.New()
	e.Validator = utility.NewRequestValidator()
	e.HTTPErrorHandler = utility.HTTPErrorHandler

	e.POST("/api/ai/meal-plan", h.MealPlanHandler)
	e.POST("/api/ai/workout-plan", h.WorkoutPlanHandler)
	e.POST("/api/ai/food-calorie", h.FoodCalorieHandler)
	e.GET("/api/ai/food-table", h.FoodTableHandler)
	e.POST("/api/user/body-data", h.CreateBodyRecordHandler)
	e.GET("/api/user/body-data/history", h.GetBodyRecordsHandler)
	e.DELETE("/api/user/body-data/:id", h.DeleteBodyRecordHandler)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const mealBody = `{
	"profile": {"gender": "female", "age": 28, "height": 165, "weight": 58},
	"preferences": {"goal": "lose", "calories_budget": 1600}
}`

/* =================================================================================
								AI PLANNER
=================================================================================*/

func TestMealPlanHandler(t *testing.T) {
	p := &fakePlanner{meal: models.MealPlanResult{DailyCalorieTarget: 1600, Goal: "lose", Meals: []models.MealItem{}}}
	e := newTestEcho(t, p)

	rec := do(e, http.MethodPost, "/api/ai/meal-plan", mealBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily_calorie_target":1600,"goal":"lose","meals":[]}`, rec.Body.String())
	assert.Equal(t, 1600, p.gotMeal.Preferences.CaloriesBudget)
	assert.Nil(t, p.gotMeal.Profile.BMI)
}

func TestMealPlanHandler_ValidationFailures(t *testing.T) {
	e := newTestEcho(t, &fakePlanner{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"profile":`},
		{"missing profile", `{"preferences": {"goal": "lose", "calories_budget": 1600}}`},
		{"bad gender", strings.Replace(mealBody, `"female"`, `"robot"`, 1)},
		{"bad goal", strings.Replace(mealBody, `"lose"`, `"bulk"`, 1)},
		{"non-positive budget", strings.Replace(mealBody, `1600`, `0`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/ai/meal-plan", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestWorkoutPlanHandler(t *testing.T) {
	p := &fakePlanner{workout: models.WorkoutPlanResult{Day: "today", Goal: "health", TotalDuration: 30, Sessions: []models.WorkoutSession{}}}
	e := newTestEcho(t, p)

	rec := do(e, http.MethodPost, "/api/ai/workout-plan", `{
		"profile": {"gender": "male", "age": 40, "height": 180, "weight": 82, "activity_level": "light"},
		"preferences": {"goal": "health", "available_minutes": 30, "frequency_per_week": 3, "limitations": ["knee_pain"]}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"day":"today","goal":"health","total_duration":30,"sessions":[]}`, rec.Body.String())
}

func TestFoodCalorieHandler(t *testing.T) {
	p := &fakePlanner{food: models.FoodCalorieResult{Name: "rice", Calories: 174, HealthScore: 3, Advice: "ok"}}
	e := newTestEcho(t, p)

	rec := do(e, http.MethodPost, "/api/ai/food-calorie", `{"query": "一碗米饭"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "一碗米饭", p.gotFood.Query)

	rec = do(e, http.MethodPost, "/api/ai/food-calorie", `{"query": "   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAIHandlers_UpstreamFailureIs500(t *testing.T) {
	failures := map[string]error{
		"gateway": &planner.UpstreamError{Op: "food calorie", Err: &llmservice.GatewayError{Provider: "openai", StatusCode: 401, Err: errors.New("bad key")}},
		"parse":   &planner.UpstreamError{Op: "food calorie", Err: &llmservice.ParseError{Raw: "nope", Err: errors.New("invalid character")}},
	}

	for name, failure := range failures {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho(t, &fakePlanner{err: failure})

			rec := do(e, http.MethodPost, "/api/ai/food-calorie", `{"query": "apple"}`)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "AI service call failed", body["error"])
			assert.Equal(t, failure.Error(), body["detail"])
		})
	}
}

func TestFoodTableHandler(t *testing.T) {
	e := newTestEcho(t, &fakePlanner{})

	rec := do(e, http.MethodGet, "/api/ai/food-table", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []models.FoodKnowledgeItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Items)
}

/* =================================================================================
								BODY DATA
=================================================================================*/

func TestBodyData_Lifecycle(t *testing.T) {
	e := newTestEcho(t, &fakePlanner{})

	rec := do(e, http.MethodGet, "/api/user/body-data/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"records":[]}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/user/body-data", `{"weight": 70, "height": 175.5, "waist": 80, "hip": 95, "gender": "male", "age": 30}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.BodyRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 22.7, created.BMI)
	if assert.NotNil(t, created.WHR) {
		assert.Equal(t, 0.84, *created.WHR)
	}

	rec = do(e, http.MethodGet, "/api/user/body-data/history", "")
	var history models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Len(t, history.Records, 1)

	rec = do(e, http.MethodDelete, "/api/user/body-data/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = do(e, http.MethodDelete, "/api/user/body-data/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodDelete, "/api/user/body-data/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateBodyRecordHandler_Validation(t *testing.T) {
	e := newTestEcho(t, &fakePlanner{})

	rec := do(e, http.MethodPost, "/api/user/body-data", `{"weight": 70, "height": 175, "gender": "male"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(e, http.MethodPost, "/api/user/body-data", `not json`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

package models

/* =================================================================================
								MEAL PLAN
=================================================================================*/

type DietGoal string

const (
	DietGoalLose     DietGoal = "lose"
	DietGoalGain     DietGoal = "gain"
	DietGoalMaintain DietGoal = "maintain"
)

var DietGoals = []DietGoal{DietGoalLose, DietGoalGain, DietGoalMaintain}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the meal slots in the order a day is planned.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

type DietPreferences struct {
	Goal           DietGoal `json:"goal" validate:"required,oneof=lose gain maintain"`
	CaloriesBudget int      `json:"calories_budget" validate:"required,gt=0"`
	DietType       string   `json:"diet_type"` // none / vegetarian / vegan / low-carb ...
	Restrictions   []string `json:"restrictions"`
	Tastes         []string `json:"tastes"`
}

type MealPlanRequest struct {
	Profile     BodyProfile     `json:"profile"`
	Preferences DietPreferences `json:"preferences"`
}

type MealItem struct {
	MealType    MealType `json:"meal_type"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
}

type MealPlanResult struct {
	DailyCalorieTarget int        `json:"daily_calorie_target"`
	Goal               string     `json:"goal"`
	Meals              []MealItem `json:"meals"`
}

/* =================================================================================
								WORKOUT PLAN
=================================================================================*/

type WorkoutGoal string

const (
	WorkoutGoalLose     WorkoutGoal = "lose"
	WorkoutGoalGain     WorkoutGoal = "gain"
	WorkoutGoalMaintain WorkoutGoal = "maintain"
	WorkoutGoalHealth   WorkoutGoal = "health"
)

var WorkoutGoals = []WorkoutGoal{WorkoutGoalLose, WorkoutGoalGain, WorkoutGoalMaintain, WorkoutGoalHealth}

type SessionType string

const (
	SessionCardio   SessionType = "cardio"
	SessionStrength SessionType = "strength"
	SessionHIIT     SessionType = "hiit"
	SessionYoga     SessionType = "yoga"
	SessionMobility SessionType = "mobility"
)

var SessionTypes = []SessionType{SessionCardio, SessionStrength, SessionHIIT, SessionYoga, SessionMobility}

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

var Intensities = []Intensity{IntensityLow, IntensityMedium, IntensityHigh}

type WorkoutPreferences struct {
	Goal             WorkoutGoal `json:"goal" validate:"required,oneof=lose gain maintain health"`
	AvailableMinutes int         `json:"available_minutes" validate:"required,gt=0"`
	FrequencyPerWeek int         `json:"frequency_per_week" validate:"required,gt=0"`
	Equipment        []string    `json:"equipment"`
	Limitations      []string    `json:"limitations"` // e.g. ["knee_pain"]
}

type WorkoutPlanRequest struct {
	Profile     BodyProfile        `json:"profile"`
	Preferences WorkoutPreferences `json:"preferences"`
}

type WorkoutSession struct {
	Name            string      `json:"name"`
	Type            SessionType `json:"type"`
	DurationMinutes int         `json:"duration_minutes"`
	Intensity       Intensity   `json:"intensity"`
	TargetHeartRate *string     `json:"target_heart_rate"` // e.g. "120-140 bpm"
	Description     string      `json:"description"`
	Exercises       []string    `json:"exercises"`
	Tips            string      `json:"tips"`
}

type WorkoutPlanResult struct {
	Day           string           `json:"day"`
	Goal          string           `json:"goal"`
	TotalDuration int              `json:"total_duration"`
	Sessions      []WorkoutSession `json:"sessions"`
}

/* =================================================================================
								FOOD CALORIE
=================================================================================*/

type FoodCalorieQuery struct {
	Query string `json:"query" validate:"required,notblank"`
}

type FoodCalorieResult struct {
	Name             string `json:"name"`
	Calories         int    `json:"calories"`
	HealthScore      int    `json:"health_score"` // 1-5
	Advice           string `json:"advice"`
	MatchedFromTable bool   `json:"matched_from_table"`
}

// FoodKnowledgeItem is one row of the static nutrition reference table.
type FoodKnowledgeItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	EnglishName     string   `json:"en_name"`
	Aliases         []string `json:"aliases"`
	Category        string   `json:"category"`
	Unit            string   `json:"unit"` // g or ml
	KcalPer100g     float64  `json:"kcal_per_100g"`
	ProteinPer100g  *float64 `json:"protein_per_100g,omitempty"`
	FatPer100g      *float64 `json:"fat_per_100g,omitempty"`
	CarbPer100g     *float64 `json:"carb_per_100g,omitempty"`
	TypicalPortionG float64  `json:"typical_portion_g"`
}

package planner

import (
	"fmt"
	"strings"

	"healthcube/internal/fooddata"
	"healthcube/internal/models"
)

const defaultMealName = "healthy meal"

// mealTypeAliases maps the Chinese meal labels some models fall back to.
var mealTypeAliases = map[string]models.MealType{
	"早餐": models.MealBreakfast,
	"午餐": models.MealLunch,
	"晚餐": models.MealDinner,
	"加餐": models.MealSnack,
}

// renderProfile renders the labeled body-profile block shared by both plans.
// withShape adds waist, hip and WHR, which only the meal planner uses.
func renderProfile(p models.BodyProfile, withShape bool) string {
	activity := string(p.ActivityLevel)
	if activity == "" {
		activity = placeholderActivity
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- Gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "- Age: %d\n", p.Age)
	fmt.Fprintf(&b, "- Height: %s cm\n", formatNumber(p.Height))
	fmt.Fprintf(&b, "- Weight: %s kg\n", formatNumber(p.Weight))
	fmt.Fprintf(&b, "- BMI: %s\n", optionalNumber(p.BMI))
	fmt.Fprintf(&b, "- Body fat: %s %%\n", optionalNumber(p.BodyFat))
	if withShape {
		fmt.Fprintf(&b, "- Waist: %s cm\n", optionalNumber(p.Waist))
		fmt.Fprintf(&b, "- Hip: %s cm\n", optionalNumber(p.Hip))
		fmt.Fprintf(&b, "- Waist-to-hip ratio: %s\n", optionalNumber(p.WHR))
	}
	fmt.Fprintf(&b, "- Daily activity level: %s\n", activity)
	return b.String()
}

// RenderMealPlanPrompts builds the system and user prompts for a one-day meal plan.
func RenderMealPlanPrompts(req models.MealPlanRequest) (string, string) {
	prefs := req.Preferences

	dietType := strings.TrimSpace(prefs.DietType)
	if dietType == "" {
		dietType = placeholderNone
	}

	userPrompt := fmt.Sprintf(
		MealPlanUserPromptTemplate,
		renderProfile(req.Profile, true),
		prefs.Goal,
		prefs.CaloriesBudget,
		dietType,
		joinOr(prefs.Restrictions, placeholderNone),
		joinOr(prefs.Tastes, placeholderNone),
		fooddata.RenderBulletTable(fooddata.MealReferenceTable()),
	)

	return MealPlanSystemPrompt, userPrompt
}

// MapMealPlan turns a coerced model reply into a MealPlanResult. It never fails.
func MapMealPlan(raw map[string]any, prefs models.DietPreferences) models.MealPlanResult {
	perMeal := prefs.CaloriesBudget / 4

	meals := make([]models.MealItem, 0, 4)
	for _, m := range objectSlice(raw, "meals") {
		meals = append(meals, models.MealItem{
			MealType:    enumOr(m, "meal_type", models.MealTypes, mealTypeAliases, models.MealBreakfast),
			Name:        stringOr(m, "name", defaultMealName),
			Calories:    nonNegativeIntOr(m, "calories", perMeal),
			Tags:        stringSlice(m, "tags"),
			Description: stringOr(m, "description", ""),
			Suggestion:  stringOr(m, "suggestion", ""),
		})
	}

	return models.MealPlanResult{
		DailyCalorieTarget: nonNegativeIntOr(raw, "daily_calorie_target", prefs.CaloriesBudget),
		Goal:               string(enumOr(raw, "goal", models.DietGoals, nil, prefs.Goal)),
		Meals:              meals,
	}
}

package planner

import (
	"fmt"
	"strings"

	"healthcube/internal/fooddata"
	"healthcube/internal/models"
)

const (
	defaultFoodName    = "unrecognized food"
	defaultFoodCalorie = 300
	defaultHealthScore = 3
	defaultFoodAdvice  = "Watch your total calories and added fats."

	// maxHintItems caps the locally matched table rows listed in the prompt.
	maxHintItems = 5
)

// RenderFoodCaloriePrompts builds the prompts for a calorie estimate. hints are
// table rows already matched against the query; they are listed with macros
// and a typical portion so the model can scale the estimate.
func RenderFoodCaloriePrompts(q models.FoodCalorieQuery, hints []models.FoodKnowledgeItem) (string, string) {
	userPrompt := fmt.Sprintf(
		FoodCalorieUserPromptTemplate,
		strings.TrimSpace(q.Query),
		fooddata.RenderBulletTable(fooddata.CalorieTable()),
		renderHints(hints),
	)
	return FoodCalorieSystemPrompt, userPrompt
}

func renderHints(hints []models.FoodKnowledgeItem) string {
	if len(hints) == 0 {
		return ""
	}
	if len(hints) > maxHintItems {
		hints = hints[:maxHintItems]
	}

	var b strings.Builder
	b.WriteString("\nClosest table entries for this description:\n")
	for _, h := range hints {
		fmt.Fprintf(&b, "- %s (%s): %s kcal per 100%s, protein %s g, fat %s g, carbs %s g, typical portion %s %s\n",
			h.Name, h.EnglishName,
			formatNumber(h.KcalPer100g), h.Unit,
			macro(h.ProteinPer100g), macro(h.FatPer100g), macro(h.CarbPer100g),
			formatNumber(h.TypicalPortionG), h.Unit,
		)
	}
	return b.String()
}

// macro differs from optionalNumber: 0 g fat is a real value here.
func macro(v *float64) string {
	if v == nil {
		return placeholderValue
	}
	return formatNumber(*v)
}

// MapFoodCalorie turns a coerced model reply into a FoodCalorieResult. It never fails.
func MapFoodCalorie(raw map[string]any) models.FoodCalorieResult {
	return models.FoodCalorieResult{
		Name:             stringOr(raw, "name", defaultFoodName),
		Calories:         nonNegativeIntOr(raw, "calories", defaultFoodCalorie),
		HealthScore:      clamp(intOr(raw, "health_score", defaultHealthScore), 1, 5),
		Advice:           stringOr(raw, "advice", defaultFoodAdvice),
		MatchedFromTable: boolOr(raw, "matched_from_table", false),
	}
}

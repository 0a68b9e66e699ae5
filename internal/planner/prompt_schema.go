package planner

/* =================================================================================
						PROMPT ENGINEERING & OUTPUT CONTRACTS
	Each system prompt fixes the persona and the exact JSON shape the reply
	must take. User prompt templates are filled with fmt.Sprintf at runtime.
=================================================================================*/

// Placeholders rendered for absent optional input. Zero is never used, since
// the model would read it as a real measurement.
const (
	placeholderValue    = "-"
	placeholderActivity = "unspecified"
	placeholderNone     = "none"
	placeholderNoGear   = "none (bodyweight only)"
)

const MealPlanSystemPrompt = `You are a professional sports nutritionist. Plan one full day of eating for the user: breakfast, lunch, dinner and one snack.

RESPONSE FORMAT (CRITICAL):
Return ONE JSON object with exactly these keys: daily_calorie_target, goal, meals.
- daily_calorie_target: integer kcal
- goal: echo the user's goal (lose / gain / maintain)
- meals: array; every element has meal_type, name, calories, tags, description, suggestion
  - meal_type MUST be one of "breakfast", "lunch", "dinner", "snack"
  - calories MUST be an integer number of kcal
  - tags is an array of short strings
The output must be parseable by a strict JSON parser: pure JSON, no markdown, no explanations, no text before or after the object.`

const MealPlanUserPromptTemplate = `
=== USER BODY PROFILE ===
%s
=== DIET GOAL & PREFERENCES ===
- Goal: %s (lose = fat loss, gain = muscle gain, maintain = maintenance)
- Daily calorie budget: %d kcal
- Diet type: %s
- Dietary restrictions: %s
- Taste preferences: %s

REQUIREMENTS:
1. The plan MUST include all four meal types: breakfast, lunch, dinner, snack.
2. Keep the total calories as close as possible to the daily budget.
3. Prefer the common ingredients in the reference table below so the user can estimate portions:

%s
4. Avoid every dietary restriction and respect the diet type (vegetarian etc.).`

const WorkoutPlanSystemPrompt = `You are a senior strength and conditioning coach. Plan ONE training workout for the user for today.
The workout consists of 2-4 sessions, for example: warm-up, main block, accessory block, cool-down stretch.

RESPONSE FORMAT (CRITICAL):
Return ONE JSON object with exactly these keys: day, goal, total_duration, sessions.
- total_duration: integer minutes
- sessions: array; every element has name, type, duration_minutes, intensity, target_heart_rate, description, exercises, tips
  - type MUST be one of "cardio", "strength", "hiit", "yoga", "mobility"
  - intensity MUST be one of "low", "medium", "high"
  - duration_minutes MUST be an integer
  - exercises is an array of exercise names
The output must be pure JSON with no markdown and no surrounding prose.`

const WorkoutPlanUserPromptTemplate = `
=== USER BODY PROFILE ===
%s
=== TRAINING GOAL & LIMITATIONS ===
- Training goal: %s
- Planned training days per week: %d
- Time available today: %d minutes
- Available equipment: %s
- Physical limitations / injuries: %s

REQUIREMENTS:
1. The total workout duration MUST NOT exceed %d minutes.
2. If there is any injury or limitation (knee, lower back, etc.), avoid high-impact movements and mention the caution in tips.
3. Give 3-6 concrete exercise names for every session.
4. Express target_heart_rate as a range string, for example "120-140 bpm".`

const FoodCalorieSystemPrompt = `You are a professional dietitian who estimates calories from a description of food.
First look for the closest foods in the reference calorie table, then scale by the described portion to estimate the total.

RESPONSE FORMAT (CRITICAL):
Answer with ONE JSON object:
{"name": "<food name>", "calories": <estimated total kcal as an integer>, "health_score": <integer 1-5>, "advice": "<one sentence of advice>", "matched_from_table": <true|false>}
matched_from_table is true only when the estimate is based on an entry of the reference table.
Do not output any explanatory text.`

const FoodCalorieUserPromptTemplate = `
Food described by the user: %s

Reference calorie table (per 100 g / 100 ml, or per serving):
%s%s`

package planner

import (
	"fmt"

	"healthcube/internal/models"
)

const (
	defaultSessionName = "training block"
	defaultDay         = "today"
)

// RenderWorkoutPlanPrompts builds the system and user prompts for today's workout.
func RenderWorkoutPlanPrompts(req models.WorkoutPlanRequest) (string, string) {
	prefs := req.Preferences

	userPrompt := fmt.Sprintf(
		WorkoutPlanUserPromptTemplate,
		renderProfile(req.Profile, false),
		prefs.Goal,
		prefs.FrequencyPerWeek,
		prefs.AvailableMinutes,
		joinOr(prefs.Equipment, placeholderNoGear),
		joinOr(prefs.Limitations, placeholderNone),
		prefs.AvailableMinutes,
	)

	return WorkoutPlanSystemPrompt, userPrompt
}

// MapWorkoutPlan turns a coerced model reply into a WorkoutPlanResult. When the
// reply has no usable total_duration, the sum of the mapped sessions is used.
func MapWorkoutPlan(raw map[string]any, prefs models.WorkoutPreferences) models.WorkoutPlanResult {
	perSession := prefs.AvailableMinutes / 3

	total := 0
	sessions := make([]models.WorkoutSession, 0, 4)
	for _, s := range objectSlice(raw, "sessions") {
		duration := nonNegativeIntOr(s, "duration_minutes", perSession)
		total += duration

		sessions = append(sessions, models.WorkoutSession{
			Name:            stringOr(s, "name", defaultSessionName),
			Type:            enumOr(s, "type", models.SessionTypes, nil, models.SessionCardio),
			DurationMinutes: duration,
			Intensity:       enumOr(s, "intensity", models.Intensities, nil, models.IntensityMedium),
			TargetHeartRate: optionalString(s, "target_heart_rate"),
			Description:     stringOr(s, "description", ""),
			Exercises:       stringSlice(s, "exercises"),
			Tips:            stringOr(s, "tips", ""),
		})
	}

	return models.WorkoutPlanResult{
		Day:           stringOr(raw, "day", defaultDay),
		Goal:          string(enumOr(raw, "goal", models.WorkoutGoals, nil, prefs.Goal)),
		TotalDuration: nonNegativeIntOr(raw, "total_duration", total),
		Sessions:      sessions,
	}
}

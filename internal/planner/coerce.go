package planner

import (
	"math"
	"strconv"
	"strings"
)

/*=================================================================================
						RESPONSE FIELD COERCION
	The model reply is untrusted. Every reader below takes a fallback and
	returns it whenever the key is missing or holds the wrong type, so mapping
	a reply can never fail.
=================================================================================*/

// intOr truncates a JSON number to int. Strings, booleans, NaN and values
// outside the int range yield the fallback.
func intOr(raw map[string]any, key string, fallback int) int {
	f, ok := raw[key].(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return fallback
	}
	return int(f)
}

// nonNegativeIntOr is intOr for counts such as calories and minutes.
func nonNegativeIntOr(raw map[string]any, key string, fallback int) int {
	v := intOr(raw, key, fallback)
	if v < 0 {
		return fallback
	}
	return v
}

func stringOr(raw map[string]any, key, fallback string) string {
	s, ok := raw[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func boolOr(raw map[string]any, key string, fallback bool) bool {
	b, ok := raw[key].(bool)
	if !ok {
		return fallback
	}
	return b
}

// optionalString returns nil unless the key holds a non-blank string.
func optionalString(raw map[string]any, key string) *string {
	s, ok := raw[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// stringSlice keeps the string elements of a JSON array. Anything else yields
// an empty, non-nil slice so the field serialises as [].
func stringSlice(raw map[string]any, key string) []string {
	arr, _ := raw[key].([]any)
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// objectSlice keeps the object elements of a JSON array.
func objectSlice(raw map[string]any, key string) []map[string]any {
	arr, _ := raw[key].([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if obj, ok := v.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// enumOr accepts a case-insensitive member of allowed, or an alias, and
// otherwise returns the fallback.
func enumOr[T ~string](raw map[string]any, key string, allowed []T, aliases map[string]T, fallback T) T {
	s, ok := raw[key].(string)
	if !ok {
		return fallback
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range allowed {
		if string(a) == s {
			return a
		}
	}
	if v, ok := aliases[s]; ok {
		return v
	}
	return fallback
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// formatNumber renders a float in its shortest decimal form ("170", "65.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// optionalNumber renders an absent (nil or zero) measurement as the placeholder.
func optionalNumber(v *float64) string {
	if v == nil || *v == 0 {
		return placeholderValue
	}
	return formatNumber(*v)
}

// joinOr joins non-blank tags, or returns fallback when there are none.
func joinOr(tags []string, fallback string) string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return fallback
	}
	return strings.Join(kept, ", ")
}

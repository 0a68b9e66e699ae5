package fooddata

import (
	"fmt"
	"strconv"
	"strings"
)

// TableEntry is one "name: kcal" line of a reference table. Kcal is text so
// that composite dishes can carry a range.
type TableEntry struct {
	Name string
	Kcal string
}

// mealReference is the short list the meal planner grounds portions on
// (per 100 g, or per serving for the composite dishes).
var mealReference = []TableEntry{
	{"rolled oats", "389"},
	{"chicken breast", "165"},
	{"salmon", "208"},
	{"egg", "155"},
	{"avocado", "160"},
	{"broccoli", "34"},
	{"tomato", "18"},
	{"brown rice (cooked)", "111"},
	{"apple", "52"},
	{"banana", "89"},
	{"greek yogurt", "59"},
	{"tofu", "76"},
	{"shrimp", "99"},
	{"potato", "77"},
	{"stir-fried broccoli with chicken breast (one home-style serving)", "260-320"},
	{"skinless chicken breast salad (one serving)", "250-350"},
}

func MealReferenceTable() []TableEntry {
	out := make([]TableEntry, len(mealReference))
	copy(out, mealReference)
	return out
}

// CalorieTable flattens the knowledge items into name → kcal per 100 g,
// keeping the table order.
func CalorieTable() []TableEntry {
	out := make([]TableEntry, 0, len(items))
	for _, it := range items {
		out = append(out, TableEntry{
			Name: fmt.Sprintf("%s (%s)", it.Name, it.EnglishName),
			Kcal: strconv.FormatFloat(it.KcalPer100g, 'f', -1, 64),
		})
	}
	return out
}

// RenderBulletTable renders entries as "- name: kcal kcal" lines.
func RenderBulletTable(entries []TableEntry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %s kcal\n", e.Name, e.Kcal)
	}
	return b.String()
}

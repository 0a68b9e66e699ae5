package fooddata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems_AreWellFormed(t *testing.T) {
	all := Items()
	require.Len(t, all, 28)

	seen := map[string]bool{}
	for _, it := range all {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true

		assert.NotEmpty(t, it.Name)
		assert.NotEmpty(t, it.EnglishName)
		assert.Contains(t, []string{"g", "ml"}, it.Unit)
		assert.Greater(t, it.KcalPer100g, 0.0)
		assert.Greater(t, it.TypicalPortionG, 0.0)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	a := Items()
	a[0].Name = "changed"
	assert.Equal(t, "米饭", Items()[0].Name)
}

func TestCalorieTable_FollowsItems(t *testing.T) {
	table := CalorieTable()
	require.Len(t, table, len(Items()))
	assert.Equal(t, TableEntry{Name: "米饭 (plain rice)", Kcal: "116"}, table[0])
}

func TestRenderBulletTable(t *testing.T) {
	out := RenderBulletTable([]TableEntry{{"apple", "52"}, {"salad", "250-350"}})
	assert.Equal(t, "- apple: 52 kcal\n- salad: 250-350 kcal\n", out)
}

func TestMealReferenceTable_HasCompositeRanges(t *testing.T) {
	rendered := RenderBulletTable(MealReferenceTable())
	assert.Contains(t, rendered, "- chicken breast: 165 kcal")
	assert.Contains(t, rendered, "250-350 kcal")
	assert.Equal(t, 16, strings.Count(rendered, "\n"))
}

func TestMatcher_Match(t *testing.T) {
	m, err := NewMatcher(8)
	require.NoError(t, err)

	hits := m.Match("中午吃了三个炸鸡翅和米饭", 0)
	require.Len(t, hits, 2)
	assert.Equal(t, "chicken_wing_fried", hits[0].ID)
	assert.Equal(t, "rice_plain", hits[1].ID)

	english := m.Match("Grilled  CHICKEN BREAST with Broccoli", 1)
	require.Len(t, english, 1)
	assert.Equal(t, "chicken_breast", english[0].ID)

	assert.Empty(t, m.Match("   ", 5))
	assert.Empty(t, m.Match("quinoa bowl", 5))
}

func TestMatcher_CachesByNormalisedQuery(t *testing.T) {
	m, err := NewMatcher(0)
	require.NoError(t, err)

	first := m.Match("Banana", 0)
	require.Equal(t, 1, m.cache.Len())

	second := m.Match("  banana ", 0)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.cache.Len())
}

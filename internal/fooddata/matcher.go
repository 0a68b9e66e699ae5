package fooddata

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"healthcube/internal/models"
)

const defaultMatcherCacheSize = 256

// Matcher finds knowledge items mentioned in a free-text food description.
// Results depend only on the static table, so they are memoised per query.
type Matcher struct {
	items []models.FoodKnowledgeItem
	cache *lru.Cache[string, []models.FoodKnowledgeItem]
}

func NewMatcher(size int) (*Matcher, error) {
	if size <= 0 {
		size = defaultMatcherCacheSize
	}
	cache, err := lru.New[string, []models.FoodKnowledgeItem](size)
	if err != nil {
		return nil, err
	}
	return &Matcher{items: Items(), cache: cache}, nil
}

// Match returns up to limit items whose name, English name or alias occurs in
// the query. Longer hits rank first so "炸鸡翅" beats "鸡翅".
func (m *Matcher) Match(query string, limit int) []models.FoodKnowledgeItem {
	key := normalize(query)
	if key == "" {
		return nil
	}

	matches, ok := m.cache.Get(key)
	if !ok {
		matches = m.scan(key)
		m.cache.Add(key, matches)
	}

	if limit > 0 && len(matches) > limit {
		return matches[:limit]
	}
	return matches
}

func (m *Matcher) scan(query string) []models.FoodKnowledgeItem {
	type hit struct {
		item  models.FoodKnowledgeItem
		score int
		order int
	}

	var hits []hit
	for i, it := range m.items {
		best := 0
		for _, term := range append([]string{it.Name, it.EnglishName}, it.Aliases...) {
			t := normalize(term)
			if t != "" && strings.Contains(query, t) && len([]rune(t)) > best {
				best = len([]rune(t))
			}
		}
		if best > 0 {
			hits = append(hits, hit{item: it, score: best, order: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].order < hits[j].order
	})

	out := make([]models.FoodKnowledgeItem, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.item)
	}
	return out
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

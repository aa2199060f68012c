package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"chuckle-chow/internal/core/catalog"
	"chuckle-chow/internal/pkg/common"
)

// matchThreshold scales with the request size: a candidate must score at
// least this fraction of the user's ingredient count to win.
const matchThreshold = 0.8

// Matcher picks the best predefined recipe for a set of user ingredients.
type Matcher struct {
	store   CorpusStore
	catalog *catalog.Catalog
	scorer  *Scorer
}

func NewMatcher(store CorpusStore, cat *catalog.Catalog) *Matcher {
	return &Matcher{
		store:   store,
		catalog: cat,
		scorer:  NewScorer(cat),
	}
}

// Match returns the highest-scoring predefined recipe, or nil when no
// candidate clears the threshold. Recipes containing any blocked
// ingredient never match, whatever their score. An empty request matches
// nothing.
func (m *Matcher) Match(ctx context.Context, user []string, lang Language) (*Recipe, error) {
	if len(user) == 0 {
		return nil, nil
	}

	recipes, err := m.store.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		common.LogWarn("recipe corpus is empty, skipping match")
		return nil, nil
	}

	var (
		best      *StoredRecipe
		bestScore float64
	)
	for i := range recipes {
		r := &recipes[i]
		if m.hasBlocked(r.Ingredients) {
			continue
		}
		score := m.scorer.Score(r.Ingredients, user)
		if score > bestScore {
			best, bestScore = r, score
		}
	}

	threshold := matchThreshold * float64(len(user))
	if best == nil || bestScore < threshold {
		common.LogDebug("no predefined recipe cleared threshold",
			zap.Float64("best_score", bestScore),
			zap.Float64("threshold", threshold))
		return nil, nil
	}

	common.LogInfo("matched predefined recipe",
		zap.String("title", best.TitleEN),
		zap.Float64("score", bestScore))
	return m.build(best, lang), nil
}

func (m *Matcher) hasBlocked(ingredients []string) bool {
	for _, ing := range ingredients {
		if m.catalog.Undesirable(ing) {
			return true
		}
	}
	return false
}

// build formats a stored row into a transient recipe. Spanish text falls
// back to English when the row carries none.
func (m *Matcher) build(r *StoredRecipe, lang Language) *Recipe {
	title := r.TitleEN
	steps := r.StepsEN
	if lang == Spanish {
		if r.TitleES != "" {
			title = r.TitleES
		}
		if len(r.StepsES) > 0 {
			steps = r.StepsES
		}
	}

	lines := make([]string, 0, len(r.Ingredients))
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		lines = append(lines, displayLine(m.catalog, ing))
		names = append(names, strings.ToLower(strings.TrimSpace(ing)))
	}

	return &Recipe{
		ID:          r.ID,
		Title:       title,
		Ingredients: lines,
		Steps:       append([]string(nil), steps...),
		Equipment:   []string{"skillet"},
		Nutrition:   r.Nutrition,
		CookingTime: r.CookingTime,
		Difficulty:  r.Difficulty,
		Servings:    2,
		Tips:        "Season to taste!",
		names:       names,
		source:      sourcePredefined,
	}
}

// displayLine renders one ingredient with its canonical measurement, e.g.
// "1 lb chicken, cut into strips".
func displayLine(cat *catalog.Catalog, name string) string {
	m := cat.Measurement(name)
	line := m.Quantity + " " + strings.ToLower(strings.TrimSpace(name))
	if m.Preparation != "" {
		line += ", " + m.Preparation
	}
	return line
}

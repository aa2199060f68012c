package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chuckle-chow/internal/core/catalog"
	"chuckle-chow/internal/pkg/common"
)

// Service runs the full generation pipeline: random draw or corpus match,
// synthesis fallback, then enrichment. It never returns nil; every
// failure path degrades to the error recipe.
type Service struct {
	catalog     *catalog.Catalog
	matcher     *Matcher
	synthesizer *Synthesizer
	enricher    *Enricher
}

func NewService(cat *catalog.Catalog, store CorpusStore) *Service {
	return NewServiceWithRand(cat, store, NewLockedRand(time.Now().UnixNano()))
}

// NewServiceWithRand wires an explicit randomness source, mainly for
// deterministic tests.
func NewServiceWithRand(cat *catalog.Catalog, store CorpusStore, r Rand) *Service {
	return &Service{
		catalog:     cat,
		matcher:     NewMatcher(store, cat),
		synthesizer: NewSynthesizer(cat, r),
		enricher:    NewEnricher(cat, r),
	}
}

// Generate produces one recipe. Random mode skips the corpus entirely;
// otherwise a predefined match wins over synthesis. Corpus errors are
// logged and treated as "no match" so the caller always gets a recipe.
func (s *Service) Generate(ctx context.Context, ingredients []string, prefs Preferences) *Recipe {
	var (
		rec *Recipe
		err error
	)

	switch {
	case prefs.IsRandom:
		rec, err = s.synthesizer.Random(prefs)
		if err != nil {
			common.LogError("random draw failed", zap.Error(err))
		}
	case len(ingredients) > 0:
		rec, err = s.matcher.Match(ctx, ingredients, ParseLanguage(prefs.Language))
		if err != nil {
			common.LogError("corpus match failed, falling back to synthesis", zap.Error(err))
			rec = nil
		}
	}

	if rec == nil {
		rec, err = s.synthesizer.Synthesize(ingredients, prefs)
		if err != nil {
			common.LogError("recipe synthesis failed", zap.Error(err))
			return errorRecipe()
		}
	}

	return s.enricher.Enrich(rec, ingredients, prefs)
}

// Ingredients exposes the taxonomy grouped by category, for the pantry
// endpoint.
func (s *Service) Ingredients() map[string][]string {
	out := make(map[string][]string, len(s.catalog.Categories()))
	for _, cat := range s.catalog.Categories() {
		out[string(cat)] = append([]string(nil), s.catalog.IngredientsIn(cat)...)
	}
	return out
}

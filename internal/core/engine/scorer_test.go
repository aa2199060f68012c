package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chuckle-chow/internal/core/catalog"
)

func TestScorerExactMatch(t *testing.T) {
	s := NewScorer(catalog.Default())

	score := s.Score([]string{"chicken", "rice"}, []string{"chicken"})
	// exact hit plus the chicken/rice pairing bonus
	assert.InDelta(t, 1.2, score, 0.0001)
}

func TestScorerFuzzyStaysBelowExact(t *testing.T) {
	s := NewScorer(catalog.Default())

	exact := s.Score([]string{"tomato"}, []string{"tomato"})
	fuzzy := s.Score([]string{"tomato"}, []string{"tomatoe"})

	assert.Equal(t, 1.0, exact)
	assert.Greater(t, fuzzy, 0.0)
	assert.LessOrEqual(t, fuzzy, 0.1)
}

func TestScorerDeterministic(t *testing.T) {
	s := NewScorer(catalog.Default())
	candidate := []string{"shrimp", "avocado", "tequila"}
	user := []string{"tequila", "shrimp"}

	first := s.Score(candidate, user)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(candidate, user))
	}
}

func TestScorerMonotonicOnAddedOverlap(t *testing.T) {
	s := NewScorer(catalog.Default())
	candidate := []string{"chicken", "lemon", "rice"}

	one := s.Score(candidate, []string{"chicken"})
	two := s.Score(candidate, []string{"chicken", "lemon"})

	assert.Greater(t, two, one)
}

func TestScorerCaseInsensitive(t *testing.T) {
	s := NewScorer(catalog.Default())

	lower := s.Score([]string{"chicken"}, []string{"chicken"})
	upper := s.Score([]string{"CHICKEN"}, []string{"Chicken"})

	assert.Equal(t, lower, upper)
}

func TestScorerEmptyUser(t *testing.T) {
	s := NewScorer(catalog.Default())
	assert.Equal(t, 0.0, s.Score([]string{"chicken"}, nil))
}

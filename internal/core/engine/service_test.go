package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chuckle-chow/internal/core/catalog"
)

func newTestService(store CorpusStore) *Service {
	return NewServiceWithRand(catalog.Default(), store, firstRand{})
}

func seededStore() *fakeStore {
	return &fakeStore{recipes: []StoredRecipe{
		chickenRow(),
		{
			ID:          2,
			TitleEN:     "Shrimp Avocado Tequila Grill",
			StepsEN:     []string{"Grill the shrimp.", "Dice the avocado.", "Pour the tequila."},
			Ingredients: []string{"shrimp", "avocado", "tequila"},
			Nutrition:   Nutrition{Calories: 400, Protein: 28, Fat: 18},
			CookingTime: 20,
			Difficulty:  "easy",
		},
	}}
}

func TestGenerateSingleIngredientGetsComedicTitle(t *testing.T) {
	svc := newTestService(seededStore())

	rec := svc.Generate(context.Background(), []string{"chicken"}, Preferences{})
	require.NotNil(t, rec)
	assert.Equal(t, "Redneck Grill Chicken Fry", rec.Title)
	assert.GreaterOrEqual(t, len(rec.Steps), 3)
	assert.GreaterOrEqual(t, rec.Nutrition.Calories, 100)
	assert.NotEmpty(t, rec.Links)
	assert.NotEmpty(t, rec.ShareText)
}

func TestGenerateEmptyInputReturnsCannedUntouched(t *testing.T) {
	svc := newTestService(seededStore())

	rec := svc.Generate(context.Background(), nil, Preferences{})
	require.NotNil(t, rec)
	assert.Equal(t, "No Ingredients", rec.Title)
	assert.Equal(t, Nutrition{}, rec.Nutrition)
	assert.Empty(t, rec.Links)
}

func TestGenerateUnknownIngredientsFallBack(t *testing.T) {
	svc := newTestService(seededStore())

	rec := svc.Generate(context.Background(), []string{"unicorn"}, Preferences{})
	require.NotNil(t, rec)
	assert.Equal(t, "Invalid Ingredients", rec.Title)
}

func TestGenerateCajunTequilaShrimp(t *testing.T) {
	svc := newTestService(seededStore())

	rec := svc.Generate(context.Background(), []string{"tequila", "shrimp"},
		Preferences{Style: "cajun"})
	require.NotNil(t, rec)

	// predefined match rebuilt with the tequila Grill override and the
	// requested style
	assert.True(t, strings.HasPrefix(rec.Title, "Cajun "))
	assert.Contains(t, rec.Title, "Grill")
	assert.Contains(t, strings.Join(rec.Steps, "\n"), "1 tsp Cajun seasoning")
	assert.Len(t, rec.Links, 3)
}

func TestGenerateRandomModeSkipsCorpus(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	rec := svc.Generate(context.Background(), nil, Preferences{IsRandom: true})
	require.NotNil(t, rec)
	assert.NotEqual(t, "No Ingredients", rec.Title)
	assert.NotEmpty(t, rec.Ingredients)
	assert.NotEmpty(t, rec.Links)
}

func TestGenerateSurvivesStoreFailure(t *testing.T) {
	svc := newTestService(&fakeStore{err: errors.New("corpus unavailable")})

	rec := svc.Generate(context.Background(), []string{"chicken"}, Preferences{})
	require.NotNil(t, rec)
	// synthesis fallback still produces a full recipe
	assert.Contains(t, rec.Title, "Chicken")
	assert.NotEmpty(t, rec.Steps)
}

func TestGenerateNeverEmitsBlockedIngredients(t *testing.T) {
	svc := newTestService(seededStore())

	rec := svc.Generate(context.Background(), []string{"squirrel", "chicken"}, Preferences{})
	require.NotNil(t, rec)
	for _, line := range rec.Ingredients {
		assert.NotContains(t, line, "squirrel")
	}
	for _, link := range rec.Links {
		assert.NotEqual(t, "squirrel", link.Name)
	}
}

func TestServiceIngredientsGroupedByCategory(t *testing.T) {
	svc := newTestService(seededStore())

	groups := svc.Ingredients()
	require.Len(t, groups, 7)
	assert.Contains(t, groups["meat"], "chicken")
	assert.Contains(t, groups["devil_water"], "tequila")
	for _, names := range groups {
		assert.NotContains(t, names, "squirrel")
	}
}

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chuckle-chow/internal/core/catalog"
)

type fakeStore struct {
	recipes []StoredRecipe
	err     error
}

func (f *fakeStore) GetAllRecipes(ctx context.Context) ([]StoredRecipe, error) {
	return f.recipes, f.err
}

func chickenRow() StoredRecipe {
	return StoredRecipe{
		ID:          1,
		TitleEN:     "Moonshine Chicken Skillet",
		TitleES:     "Pollo al Aguardiente",
		StepsEN:     []string{"Brown the chicken.", "Splash in moonshine.", "Simmer and serve."},
		Ingredients: []string{"chicken", "moonshine", "onion"},
		Nutrition:   Nutrition{Calories: 450, Protein: 30, Fat: 20},
		CookingTime: 30,
		Difficulty:  "easy",
	}
}

func TestMatcherEmptyRequestMatchesNothing(t *testing.T) {
	m := NewMatcher(&fakeStore{recipes: []StoredRecipe{chickenRow()}}, catalog.Default())

	rec, err := m.Match(context.Background(), nil, English)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMatcherPropagatesStoreError(t *testing.T) {
	m := NewMatcher(&fakeStore{err: errors.New("db gone")}, catalog.Default())

	rec, err := m.Match(context.Background(), []string{"chicken"}, English)
	assert.Error(t, err)
	assert.Nil(t, rec)
}

func TestMatcherEmptyCorpus(t *testing.T) {
	m := NewMatcher(&fakeStore{}, catalog.Default())

	rec, err := m.Match(context.Background(), []string{"chicken"}, English)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMatcherFindsBestRecipe(t *testing.T) {
	m := NewMatcher(&fakeStore{recipes: []StoredRecipe{chickenRow()}}, catalog.Default())

	rec, err := m.Match(context.Background(), []string{"chicken"}, English)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Moonshine Chicken Skillet", rec.Title)
	assert.Len(t, rec.Ingredients, 3)
	// measurement rule formatting
	assert.Contains(t, rec.Ingredients, "1 lb chicken, cut into strips")
	assert.Contains(t, rec.Ingredients, "1/4 cup moonshine")
	assert.Equal(t, 450, rec.Nutrition.Calories)
}

func TestMatcherRejectsBelowThreshold(t *testing.T) {
	row := StoredRecipe{
		TitleEN:     "Buttered Carrots",
		Ingredients: []string{"carrot", "butter"},
	}
	m := NewMatcher(&fakeStore{recipes: []StoredRecipe{row}}, catalog.Default())

	// best score is fuzzy-only, far under 0.8 per requested ingredient
	rec, err := m.Match(context.Background(), []string{"lobster"}, English)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMatcherExcludesBlockedIngredients(t *testing.T) {
	row := StoredRecipe{
		TitleEN:     "Squirrel Gravy Surprise",
		Ingredients: []string{"squirrel", "onion"},
	}
	m := NewMatcher(&fakeStore{recipes: []StoredRecipe{row}}, catalog.Default())

	// exact overlap with "onion" alone would clear the threshold
	rec, err := m.Match(context.Background(), []string{"onion"}, English)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMatcherSpanishTitleAndFallback(t *testing.T) {
	withES := chickenRow()
	withoutES := chickenRow()
	withoutES.ID = 2
	withoutES.TitleES = ""
	withoutES.TitleEN = "Plain Chicken"
	withoutES.Ingredients = []string{"chicken", "rice"}

	m := NewMatcher(&fakeStore{recipes: []StoredRecipe{withES}}, catalog.Default())
	rec, err := m.Match(context.Background(), []string{"chicken", "moonshine"}, Spanish)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Pollo al Aguardiente", rec.Title)

	m = NewMatcher(&fakeStore{recipes: []StoredRecipe{withoutES}}, catalog.Default())
	rec, err = m.Match(context.Background(), []string{"chicken", "rice"}, Spanish)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Plain Chicken", rec.Title)
}

func TestMatcherPrefersHigherScore(t *testing.T) {
	weak := StoredRecipe{TitleEN: "Carrot Pot", Ingredients: []string{"carrot", "chicken"}}
	strong := chickenRow()
	m := NewMatcher(&fakeStore{recipes: []StoredRecipe{weak, strong}}, catalog.Default())

	rec, err := m.Match(context.Background(), []string{"chicken", "moonshine", "onion"}, English)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Moonshine Chicken Skillet", rec.Title)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "recipes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSeedAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))

	recipes, err := store.GetAllRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 16)

	byTitle := make(map[string]int)
	for _, r := range recipes {
		byTitle[r.TitleEN] = len(r.Ingredients)
		assert.NotEmpty(t, r.StepsEN, "recipe %q has no steps", r.TitleEN)
		assert.NotEmpty(t, r.TitleES, "recipe %q has no spanish title", r.TitleEN)
		assert.Greater(t, r.Nutrition.Calories, 0)
	}
	assert.Equal(t, 3, byTitle["Moonshine Chicken Skillet"])
	assert.Equal(t, 4, byTitle["Shrimp Avocado Tequila Grill"])
}

func TestStoreSeedIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))
	require.NoError(t, store.Seed(ctx))

	recipes, err := store.GetAllRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 16)
}

func TestStoreEmptyCorpus(t *testing.T) {
	store := newTestStore(t)

	recipes, err := store.GetAllRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

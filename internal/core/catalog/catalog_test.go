package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryIngredientBelongsToExactlyOneCategory(t *testing.T) {
	c := Default()

	seen := make(map[string]Category)
	for _, cat := range c.Categories() {
		for _, name := range c.IngredientsIn(cat) {
			prev, dup := seen[name]
			require.False(t, dup, "%q appears in both %s and %s", name, prev, cat)
			seen[name] = cat

			got, ok := c.CategoryOf(name)
			require.True(t, ok)
			assert.Equal(t, cat, got)
		}
	}
	assert.NotEmpty(t, seen)
}

func TestCategoryLookupIsCaseInsensitive(t *testing.T) {
	c := Default()

	cat, ok := c.CategoryOf("CHICKEN")
	require.True(t, ok)
	assert.Equal(t, Meat, cat)
	assert.True(t, c.Known("Green Beans"))
}

func TestBlockedIngredientsAreNotListed(t *testing.T) {
	c := Default()

	for _, name := range []string{"squirrel", "rabbit", "quail"} {
		assert.True(t, c.Undesirable(name))
		_, ok := c.CategoryOf(name)
		assert.False(t, ok, "%q should not be in the taxonomy", name)
	}
}

func TestMeasurementDefault(t *testing.T) {
	c := Default()

	m := c.Measurement("chicken")
	assert.Equal(t, "1 lb", m.Quantity)
	assert.Equal(t, "cut into strips", m.Preparation)

	def := c.Measurement("onion")
	assert.Equal(t, "1 unit", def.Quantity)
	assert.Empty(t, def.Preparation)
}

func TestMethodsFallback(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"Grill", "Fry", "Bake", "Roast"}, c.MethodsFor(Meat))
	assert.Equal(t, []string{"Bake"}, c.MethodsFor(Category("nonsense")))
}

func TestNutritionFallback(t *testing.T) {
	c := Default()

	meat := c.NutritionFor(Meat)
	assert.Equal(t, 250, meat.Calories)

	unknown := c.NutritionFor(Category("nonsense"))
	assert.Equal(t, 100, unknown.Calories)
	assert.Equal(t, 5, unknown.Protein)
}

func TestASINFallback(t *testing.T) {
	c := Default()

	assert.Equal(t, "B07Z8J9K7L", c.ASIN("chicken"))
	assert.Equal(t, defaultASIN, c.ASIN("starfruit"))
}

func TestChaosTipsFallbackChain(t *testing.T) {
	c := Default()

	specific := c.ChaosTips(Meat, []string{"chicken"})
	require.NotEmpty(t, specific)
	assert.Contains(t, specific[0], "runaway hen")

	categoryDefault := c.ChaosTips(Meat, []string{"lamb"})
	require.NotEmpty(t, categoryDefault)
	assert.Contains(t, categoryDefault[0], "neighbors holler")

	generic := c.ChaosTips(Category("nonsense"), nil)
	require.NotEmpty(t, generic)
}

func TestTemplatesAndStyles(t *testing.T) {
	c := Default()

	assert.Len(t, c.Templates(Meat), 2)
	assert.NotEmpty(t, c.Templates(Category("nonsense")))

	style, ok := c.StyleFor("cajun")
	require.True(t, ok)
	assert.Equal(t, "Cajun", style.PrefixEN)
	assert.Equal(t, "1 tsp Cajun seasoning", style.Seasoning)

	_, ok = c.StyleFor("klingon")
	assert.False(t, ok)
}

func TestMethodEquipmentFallback(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"grill pan", "skillet"}, c.MethodEquipment("Grill"))
	assert.Equal(t, c.Cookware(), c.MethodEquipment("Levitate"))
}

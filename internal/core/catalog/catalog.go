package catalog

import "strings"

// Category is an ingredient taxonomy bucket.
type Category string

const (
	Meat       Category = "meat"
	Vegetables Category = "vegetables"
	Fruits     Category = "fruits"
	Seafood    Category = "seafood"
	Dairy      Category = "dairy"
	BreadCarbs Category = "bread_carbs"
	DevilWater Category = "devil_water"
)

// Measurement is the presentation rule for one ingredient.
type Measurement struct {
	Quantity    string
	Preparation string
}

// Display renders the rule as it appears in an ingredient line,
// e.g. "1 lb" or "1 head, florets".
func (m Measurement) Display() string {
	if m.Preparation == "" {
		return m.Quantity
	}
	return m.Quantity + ", " + m.Preparation
}

// Nutrition is the per-serving contribution of one category.
type Nutrition struct {
	Calories int
	Protein  int
	Fat      int
}

// Template is one step-template variant: prep/cook/serve fragments with
// {ingredients} {extra} {method} {equipment} {heat} {time} {insult} slots.
type Template struct {
	Prep  string
	Cook  string
	Serve string
}

// Style is a named cuisine adjustment applied on request. Seasoning is
// the signature fill for step templates; Extras lists the companion
// seasonings.
type Style struct {
	PrefixEN  string
	PrefixES  string
	Seasoning string
	Extras    string
}

// Catalog is the immutable ingredient taxonomy plus every static table the
// engine consumes. Build one with Default and inject it; never mutate the
// returned slices or maps.
type Catalog struct {
	categories   map[Category][]string
	order        []Category
	byName       map[string]Category
	measurements map[string]Measurement
	methods      map[Category][]string
	preferences  map[string][]string
	pairs        map[string][]string
	undesirable  map[string]bool
	liquids      map[string]bool
	nutrition    map[Category]Nutrition
	asins        map[string]string

	prefixes  []string
	suffixes  []string
	extras    []string
	insults   []string
	cookware  []string
	tools     []string
	quirky    []string
	methodGear map[string][]string
	chaosTips map[Category]map[string]string
	templates map[Category][]Template
	styles    map[string]Style
}

// Categories returns the taxonomy categories in a stable order.
func (c *Catalog) Categories() []Category { return c.order }

// IngredientsIn lists the ingredient names of one category, sorted.
func (c *Catalog) IngredientsIn(cat Category) []string { return c.categories[cat] }

// CategoryOf looks up the category of an ingredient name.
func (c *Catalog) CategoryOf(name string) (Category, bool) {
	cat, ok := c.byName[strings.ToLower(name)]
	return cat, ok
}

// Known reports whether name is in the taxonomy.
func (c *Catalog) Known(name string) bool {
	_, ok := c.byName[strings.ToLower(name)]
	return ok
}

// Undesirable reports whether name is on the exclusion list.
func (c *Catalog) Undesirable(name string) bool {
	return c.undesirable[strings.ToLower(name)]
}

// Liquid reports whether name belongs to the pour-don't-chop set.
func (c *Catalog) Liquid(name string) bool {
	return c.liquids[strings.ToLower(name)]
}

// Measurement returns the presentation rule for name, falling back to the
// "1 unit" default.
func (c *Catalog) Measurement(name string) Measurement {
	if m, ok := c.measurements[strings.ToLower(name)]; ok {
		return m
	}
	return Measurement{Quantity: "1 unit"}
}

// MethodsFor returns the cooking methods of a category. Unknown categories
// get a bake-only fallback.
func (c *Catalog) MethodsFor(cat Category) []string {
	if ms, ok := c.methods[cat]; ok {
		return ms
	}
	return []string{"Bake"}
}

// PreferredMethods returns the per-ingredient method override, if any.
func (c *Catalog) PreferredMethods(name string) []string {
	return c.preferences[strings.ToLower(name)]
}

// Pairs returns the flavor-affinity partners of an ingredient.
func (c *Catalog) Pairs(name string) []string {
	return c.pairs[strings.ToLower(name)]
}

// NutritionFor returns the per-category nutrition contribution.
func (c *Catalog) NutritionFor(cat Category) Nutrition {
	if n, ok := c.nutrition[cat]; ok {
		return n
	}
	return Nutrition{Calories: 100, Protein: 5, Fat: 5}
}

// ASIN returns the shopping catalog id for an ingredient, falling back to
// the default id.
func (c *Catalog) ASIN(name string) string {
	if id, ok := c.asins[strings.ToLower(name)]; ok {
		return id
	}
	return defaultASIN
}

// Prefixes returns the comedic title prefixes.
func (c *Catalog) Prefixes() []string { return c.prefixes }

// Suffixes returns the comedic title suffixes.
func (c *Catalog) Suffixes() []string { return c.suffixes }

// Extras returns the spice/extra lines.
func (c *Catalog) Extras() []string { return c.extras }

// Insults returns the closing flourish lines.
func (c *Catalog) Insults() []string { return c.insults }

// Cookware returns the cookware pool.
func (c *Catalog) Cookware() []string { return c.cookware }

// Tools returns the tools pool.
func (c *Catalog) Tools() []string { return c.tools }

// QuirkyGear returns the chaos gear pool.
func (c *Catalog) QuirkyGear() []string { return c.quirky }

// MethodEquipment returns the primary-equipment candidates for a method,
// falling back to the cookware pool.
func (c *Catalog) MethodEquipment(method string) []string {
	if eq, ok := c.methodGear[method]; ok {
		return eq
	}
	return c.cookware
}

// ChaosTips returns the tip candidates for a category given the input
// ingredients: per-ingredient tips when present, otherwise the category
// default, otherwise a generic line.
func (c *Catalog) ChaosTips(cat Category, ingredients []string) []string {
	table, ok := c.chaosTips[cat]
	if !ok {
		return []string{"Toss in a pinch of mischief!"}
	}
	var tips []string
	for _, ing := range ingredients {
		if tip, ok := table[strings.ToLower(ing)]; ok {
			tips = append(tips, tip)
		}
	}
	if len(tips) > 0 {
		return tips
	}
	if tip, ok := table["default"]; ok {
		return []string{tip}
	}
	return []string{"Toss in a pinch of mischief!"}
}

// Templates returns the step template variants of a category, falling back
// to the vegetables templates.
func (c *Catalog) Templates(cat Category) []Template {
	if ts, ok := c.templates[cat]; ok {
		return ts
	}
	return c.templates[Vegetables]
}

// StyleFor looks up a cuisine style adjustment by name (case-insensitive).
func (c *Catalog) StyleFor(name string) (Style, bool) {
	s, ok := c.styles[strings.ToLower(name)]
	return s, ok
}

package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"chuckle-chow/internal/core/catalog"
	"chuckle-chow/internal/pkg/common"
)

// Enricher is the last pass over every recipe before it leaves the
// engine: shopping links, style/category title affixes, the share blurb,
// and the comedic rebuild of predefined corpus rows, which are stored as
// plain kitchen text. Enrichment runs at most once per recipe.
type Enricher struct {
	catalog *catalog.Catalog
	rand    Rand
}

func NewEnricher(cat *catalog.Catalog, r Rand) *Enricher {
	return &Enricher{catalog: cat, rand: r}
}

// Enrich decorates rec in place and returns it. A nil recipe or a panic
// mid-decoration degrades to the error recipe rather than failing the
// request.
func (e *Enricher) Enrich(rec *Recipe, user []string, prefs Preferences) (out *Recipe) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError("recipe enrichment panicked", zap.Any("panic", r))
			out = errorRecipe()
		}
	}()

	if rec == nil {
		return errorRecipe()
	}
	if rec.enriched {
		return rec
	}

	lang := ParseLanguage(prefs.Language)

	if rec.source == sourcePredefined {
		e.rebuild(rec, user, prefs, lang)
	}

	if rec.source != sourceCanned {
		if prefs.Category != "" {
			rec.Title += " - " + prefs.Category
		}
		rec.Links = e.shoppingLinks(rec.names)
		rec.ShareText = buildShareText(rec)
	}

	// internal presentation fields never leave the engine
	rec.ID = 0
	rec.CookingTime = 0
	rec.Difficulty = ""
	rec.Servings = 0
	rec.Tips = ""

	rec.enriched = true
	return rec
}

// rebuild replaces a corpus row's plain title and steps with the house
// comedic treatment, driven by what the user actually asked for.
func (e *Enricher) rebuild(rec *Recipe, user []string, prefs Preferences, lang Language) {
	filtered := make([]string, 0, len(user))
	for _, raw := range user {
		ing := strings.ToLower(strings.TrimSpace(raw))
		if ing != "" && e.catalog.Known(ing) && !e.catalog.Undesirable(ing) {
			filtered = append(filtered, ing)
		}
	}

	primary := catalog.Vegetables
	for _, ing := range filtered {
		if cat, ok := e.catalog.CategoryOf(ing); ok {
			primary = cat
			break
		}
	}

	method := ""
	for _, ing := range filtered {
		if preferred := e.catalog.PreferredMethods(ing); len(preferred) > 0 {
			method = pick(e.rand, preferred)
			break
		}
	}
	if method == "" {
		method = pick(e.rand, e.catalog.MethodsFor(primary))
	}

	style, hasStyle := e.catalog.StyleFor(prefs.Style)

	items := filtered
	if len(items) == 0 {
		items = rec.names
	}
	if len(items) > 2 {
		items = items[:2]
	}
	capped := make([]string, 0, len(items))
	for _, it := range items {
		capped = append(capped, capitalize(it))
	}
	if len(capped) == 0 {
		capped = []string{"Mystery"}
	}

	title := fmt.Sprintf("%s %s %s %s",
		pick(e.rand, e.catalog.Prefixes()),
		method,
		strings.Join(capped, " and "),
		pick(e.rand, e.catalog.Suffixes()))
	if hasStyle {
		prefix := style.PrefixEN
		if lang == Spanish && style.PrefixES != "" {
			prefix = style.PrefixES
		}
		title = prefix + " " + title
	}
	rec.Title = title

	extra := ""
	if hasStyle && style.Seasoning != "" {
		extra = style.Seasoning
	} else {
		extra = strings.Join(sample(e.rand, e.catalog.Extras(), randRange(e.rand, 1, 2)), " and ")
	}

	heat, timeRange, _ := heatAndTime(method, maxInt(len(rec.Ingredients), 1))
	tmpl := pick(e.rand, e.catalog.Templates(primary))
	gear := pick(e.rand, e.catalog.MethodEquipment(method))

	headline := rec.Ingredients
	if len(headline) > 2 {
		headline = headline[:2]
	}
	fill := strings.NewReplacer(
		"{ingredients}", strings.Join(headline, " and "),
		"{extra}", extra,
		"{method}", strings.ToLower(method),
		"{equipment}", gear,
		"{heat}", heat,
		"{time}", timeRange,
	)
	rec.Steps = []string{
		fill.Replace(tmpl.Prep),
		fill.Replace(tmpl.Cook),
		strings.Replace(fill.Replace(tmpl.Serve), "{insult}", pick(e.rand, e.catalog.Insults()), 1),
		"Chaos Tip: " + pick(e.rand, e.catalog.ChaosTips(primary, filtered)),
	}

	rec.Equipment = sample(e.rand, e.catalog.Cookware(), 1)
	rec.Equipment = append(rec.Equipment, sample(e.rand, e.catalog.Tools(), 1)...)
	rec.ChaosGear = pick(e.rand, e.catalog.QuirkyGear())

	if len(filtered) > 0 {
		var n Nutrition
		for _, ing := range filtered {
			cat, _ := e.catalog.CategoryOf(ing)
			est := e.catalog.NutritionFor(cat)
			n.Calories += est.Calories
			n.Protein += est.Protein
			n.Fat += est.Fat
		}
		if n.Calories < 100 {
			n.Calories = 100
		}
		n.ChaosFactor = 7
		rec.Nutrition = n
	} else {
		if rec.Nutrition.Calories < 100 {
			rec.Nutrition.Calories = 100
		}
		rec.Nutrition.ChaosFactor = 7
	}
}

// shoppingLinks builds affiliate product links from the taxonomy's ASIN
// table. Unmapped names share a default product.
func (e *Enricher) shoppingLinks(names []string) []ShoppingLink {
	links := make([]ShoppingLink, 0, len(names))
	for _, name := range names {
		links = append(links, ShoppingLink{
			Name: name,
			URL:  fmt.Sprintf("https://www.amazon.com/dp/%s?tag=%s", e.catalog.ASIN(name), catalog.AffiliateTag),
		})
	}
	return links
}

func buildShareText(rec *Recipe) string {
	var b strings.Builder
	b.WriteString(rec.Title + "\n\n")
	if len(rec.Equipment) > 0 {
		b.WriteString("Equipment: " + strings.Join(rec.Equipment, ", "))
		if rec.ChaosGear != "" {
			b.WriteString(" (chaos gear: " + rec.ChaosGear + ")")
		}
		b.WriteString("\n\n")
	}
	b.WriteString("Ingredients:\n")
	for _, ing := range rec.Ingredients {
		b.WriteString("- " + ing + "\n")
	}
	b.WriteString("\nSteps:\n")
	for i, step := range rec.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\nNutrition: %d kcal, chaos factor %d/10\n",
		rec.Nutrition.Calories, rec.Nutrition.ChaosFactor)
	return b.String()
}

// errorRecipe is the absolute floor: whatever breaks, the caller still
// gets a recipe-shaped payload.
func errorRecipe() *Recipe {
	return &Recipe{
		Title:       "Error Recipe",
		Ingredients: []string{},
		Steps:       []string{"Something went wrong - try again!"},
		Equipment:   []string{},
		Nutrition:   Nutrition{},
		enriched:    true,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

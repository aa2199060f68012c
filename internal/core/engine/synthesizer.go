package engine

import (
	"fmt"
	"strings"

	"chuckle-chow/internal/core/catalog"
	"chuckle-chow/internal/pkg/common"
)

// maxIngredients caps how many user ingredients fold into one recipe.
const maxIngredients = 3

// Synthesizer builds recipes from scratch when nothing predefined fits.
type Synthesizer struct {
	catalog *catalog.Catalog
	rand    Rand
}

func NewSynthesizer(cat *catalog.Catalog, r Rand) *Synthesizer {
	return &Synthesizer{catalog: cat, rand: r}
}

// Synthesize assembles a recipe for the given ingredients. Unknown and
// blocked ingredients are dropped up front; an empty request or a request
// with nothing usable left gets the corresponding canned recipe.
func (s *Synthesizer) Synthesize(user []string, prefs Preferences) (*Recipe, error) {
	lang := ParseLanguage(prefs.Language)

	if len(user) == 0 {
		return cannedNoIngredients(lang), nil
	}

	ingredients := s.filter(user)
	if len(ingredients) == 0 {
		return cannedInvalidIngredients(lang), nil
	}
	if len(ingredients) > maxIngredients {
		ingredients = ingredients[:maxIngredients]
	}

	primary := s.primaryCategory(ingredients)
	method := s.chooseMethod(ingredients, primary)
	style, hasStyle := s.catalog.StyleFor(prefs.Style)

	oil := "olive oil"
	if strings.EqualFold(prefs.Diet, "vegan") {
		oil = "coconut oil"
	}
	lines := make([]string, 0, len(ingredients)+1)
	for _, ing := range ingredients {
		lines = append(lines, displayLine(s.catalog, ing))
	}
	lines = append(lines, "1 tbsp "+oil+", for cooking")

	heat, timeRange, upper := heatAndTime(method, len(ingredients))

	title := s.buildTitle(ingredients, method, lang, style, hasStyle)

	extra := s.extraSeasoning(style, hasStyle, lang)

	var steps []string
	if lang == Spanish {
		steps = s.spanishSteps(ingredients, lines, oil, upper, extra, primary)
	} else {
		steps = s.englishSteps(ingredients, lines, method, heat, timeRange, upper, extra, primary)
	}

	equipment := sample(s.rand, s.catalog.Cookware(), 1)
	equipment = append(equipment, sample(s.rand, s.catalog.Tools(), 1)...)

	difficulty := "easy"
	if len(ingredients) > 2 {
		difficulty = "medium"
	}

	rec := &Recipe{
		Title:       title,
		Ingredients: lines,
		Steps:       steps,
		Equipment:   equipment,
		ChaosGear:   pick(s.rand, s.catalog.QuirkyGear()),
		Nutrition:   s.nutrition(ingredients),
		CookingTime: upper,
		Difficulty:  difficulty,
		Servings:    2,
		Tips:        "Adjust cooking times based on your stove!",
		names:       append(append([]string(nil), ingredients...), "oil"),
		source:      sourceSynthesized,
	}
	common.LogDebug("synthesized recipe: " + rec.Title)
	return rec, nil
}

// Random draws 1-3 eligible ingredients from the whole taxonomy and
// synthesizes from them, honoring the rest of the preferences.
func (s *Synthesizer) Random(prefs Preferences) (*Recipe, error) {
	var pool []string
	for _, cat := range s.catalog.Categories() {
		for _, ing := range s.catalog.IngredientsIn(cat) {
			if !s.catalog.Undesirable(ing) {
				pool = append(pool, ing)
			}
		}
	}
	if len(pool) == 0 {
		return nil, common.ErrNoCorpusData
	}
	k := randRange(s.rand, 1, maxIngredients)
	picked := sample(s.rand, pool, k)
	return s.Synthesize(picked, prefs)
}

// filter keeps known, non-blocked ingredients, lowercased and trimmed.
func (s *Synthesizer) filter(user []string) []string {
	out := make([]string, 0, len(user))
	for _, raw := range user {
		ing := strings.ToLower(strings.TrimSpace(raw))
		if ing == "" || !s.catalog.Known(ing) || s.catalog.Undesirable(ing) {
			continue
		}
		out = append(out, ing)
	}
	return out
}

// primaryCategory is the category of the first recognized ingredient.
func (s *Synthesizer) primaryCategory(ingredients []string) catalog.Category {
	for _, ing := range ingredients {
		if cat, ok := s.catalog.CategoryOf(ing); ok {
			return cat
		}
	}
	return catalog.Vegetables
}

// chooseMethod honors the first ingredient with a preferred-method
// override; otherwise it draws from the primary category's pool.
func (s *Synthesizer) chooseMethod(ingredients []string, primary catalog.Category) string {
	for _, ing := range ingredients {
		if prefs := s.catalog.PreferredMethods(ing); len(prefs) > 0 {
			return pick(s.rand, prefs)
		}
	}
	return pick(s.rand, s.catalog.MethodsFor(primary))
}

func (s *Synthesizer) buildTitle(ingredients []string, method string, lang Language, style catalog.Style, hasStyle bool) string {
	items := ingredients
	if len(items) > 2 {
		items = items[:2]
	}
	capped := make([]string, 0, len(items))
	for _, it := range items {
		capped = append(capped, capitalize(it))
	}

	title := fmt.Sprintf("%s %s %s %s",
		pick(s.rand, s.catalog.Prefixes()),
		method,
		strings.Join(capped, " and "),
		pick(s.rand, s.catalog.Suffixes()))

	if hasStyle {
		prefix := style.PrefixEN
		if lang == Spanish && style.PrefixES != "" {
			prefix = style.PrefixES
		}
		title = prefix + " " + title
	}
	return title
}

// extraSeasoning is the style's signature seasoning when one was asked
// for, otherwise one or two random extras.
func (s *Synthesizer) extraSeasoning(style catalog.Style, hasStyle bool, lang Language) string {
	if hasStyle && style.Seasoning != "" {
		return style.Seasoning
	}
	n := randRange(s.rand, 1, 2)
	sep := " and "
	if lang == Spanish {
		sep = " y "
	}
	return strings.Join(sample(s.rand, s.catalog.Extras(), n), sep)
}

func (s *Synthesizer) englishSteps(ingredients, lines []string, method, heat, timeRange string, upper int, extra string, primary catalog.Category) []string {
	tmpl := pick(s.rand, s.catalog.Templates(primary))
	gear := pick(s.rand, s.catalog.MethodEquipment(method))

	headline := lines
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

	perIngredient := upper / len(ingredients)
	if perIngredient < 2 {
		perIngredient = 2
	}

	steps := []string{fill.Replace(tmpl.Prep), fill.Replace(tmpl.Cook)}
	for i, ing := range ingredients {
		if s.catalog.Liquid(ing) {
			steps = append(steps, fmt.Sprintf("Add %s and cook for 2 minutes to blend flavors.", lines[i]))
		} else {
			steps = append(steps, fmt.Sprintf("Add %s to the %s and %s for %d minutes until tender.",
				lines[i], gear, strings.ToLower(method), perIngredient))
		}
	}
	steps = append(steps,
		fmt.Sprintf("Season with 1 tsp salt, 1 tsp ground black pepper, and %s.", extra),
		strings.Replace(fill.Replace(tmpl.Serve), "{insult}", pick(s.rand, s.catalog.Insults()), 1),
		"Chaos Tip: "+pick(s.rand, s.catalog.ChaosTips(primary, ingredients)),
	)
	return steps
}

func (s *Synthesizer) spanishSteps(ingredients, lines []string, oil string, upper int, extra string, primary catalog.Category) []string {
	perIngredient := upper / len(ingredients)
	if perIngredient < 2 {
		perIngredient = 2
	}
	aceite := "aceite de oliva"
	if oil == "coconut oil" {
		aceite = "aceite de coco"
	}

	steps := []string{
		fmt.Sprintf("Prepara: corta %s en trozos pequeños.", strings.Join(ingredients, " y ")),
		fmt.Sprintf("Calienta 1 cucharada de %s en una sartén a fuego medio.", aceite),
	}
	for i, ing := range ingredients {
		if s.catalog.Liquid(ing) {
			steps = append(steps, fmt.Sprintf("Agrega %s y cocina por 2 minutos para mezclar los sabores.", lines[i]))
		} else {
			steps = append(steps, fmt.Sprintf("Agrega %s a la sartén y cocina por %d minutos hasta que esté tierno.",
				lines[i], perIngredient))
		}
	}
	steps = append(steps,
		"Combina todos los ingredientes en la sartén.",
		fmt.Sprintf("Sazona con 1 cucharadita de sal, 1 cucharadita de pimienta negra y %s.", extra),
		"Sirve caliente con un acompañamiento de tu elección (p. ej., pan o ensalada). ¡Consejo: decora con hierbas frescas para más sabor!",
		"Chaos Tip: "+pick(s.rand, s.catalog.ChaosTips(primary, ingredients)),
	)
	return steps
}

// nutrition sums per-category estimates with a 100-calorie floor, then
// stamps the house chaos factor.
func (s *Synthesizer) nutrition(ingredients []string) Nutrition {
	var n Nutrition
	for _, ing := range ingredients {
		cat, _ := s.catalog.CategoryOf(ing)
		est := s.catalog.NutritionFor(cat)
		n.Calories += est.Calories
		n.Protein += est.Protein
		n.Fat += est.Fat
	}
	if n.Calories < 100 {
		n.Calories = 100
	}
	n.ChaosFactor = 7
	return n
}

// heatAndTime maps a cooking method onto a heat description and a time
// window that widens with the ingredient count. The returned int is the
// window's upper bound in minutes.
func heatAndTime(method string, count int) (heat, timeRange string, upper int) {
	switch method {
	case "Grill", "Fry", "Sauté":
		lo, hi := 8+2*count, 12+2*count
		return "medium-high heat", fmt.Sprintf("%d-%d minutes", lo, hi), hi
	case "Bake", "Roast":
		lo, hi := 15+3*count, 20+3*count
		return "a 400°F oven", fmt.Sprintf("%d-%d minutes", lo, hi), hi
	case "Steam":
		return "boiling water", "5-10 minutes", 10
	case "Simmer":
		return "low heat", "10-15 minutes", 15
	default:
		return "medium heat", "10-15 minutes", 15
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func cannedNoIngredients(lang Language) *Recipe {
	rec := &Recipe{
		Title:       "No Ingredients",
		Ingredients: []string{},
		Steps:       []string{"Please select ingredients or enable random mode!"},
		Equipment:   []string{},
		Nutrition:   Nutrition{},
		Difficulty:  "N/A",
		Tips:        "Try adding chicken or tomatoes.",
		source:      sourceCanned,
	}
	if lang == Spanish {
		rec.Title = "Sin Ingredientes"
		rec.Steps = []string{"¡Selecciona ingredientes o activa el modo aleatorio!"}
		rec.Tips = "Prueba agregando pollo o tomates."
	}
	return rec
}

func cannedInvalidIngredients(lang Language) *Recipe {
	rec := &Recipe{
		Title:       "Invalid Ingredients",
		Ingredients: []string{},
		Steps:       []string{"Please select valid ingredients!"},
		Equipment:   []string{},
		Nutrition:   Nutrition{},
		Difficulty:  "N/A",
		Tips:        "Stick to the pantry list.",
		source:      sourceCanned,
	}
	if lang == Spanish {
		rec.Title = "Ingredientes Inválidos"
		rec.Steps = []string{"¡Selecciona ingredientes válidos!"}
		rec.Tips = "Usa la lista de la despensa."
	}
	return rec
}

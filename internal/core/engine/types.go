package engine

import (
	"context"
	"strings"
)

// Language selects the rendered recipe text.
type Language string

const (
	English Language = "english"
	Spanish Language = "spanish"
)

// ParseLanguage normalizes a request language string. Anything that is not
// spanish renders English.
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(Spanish)) {
		return Spanish
	}
	return English
}

// Preferences are the caller-supplied generation options.
type Preferences struct {
	IsRandom bool   `json:"isRandom"`
	Style    string `json:"style"`
	Category string `json:"category"`
	Diet     string `json:"diet"`
	Time     string `json:"time"`
	Language string `json:"language"`
}

// Nutrition is the estimate attached to every recipe.
type Nutrition struct {
	Calories    int `json:"calories"`
	Protein     int `json:"protein"`
	Fat         int `json:"fat"`
	ChaosFactor int `json:"chaos_factor"`
}

// ShoppingLink points an ingredient at an external product page.
type ShoppingLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type recipeSource int

const (
	sourceSynthesized recipeSource = iota
	sourcePredefined
	sourceCanned
)

// Recipe is the transient, per-request recipe object. The trailing fields
// are internal bookkeeping stripped by the enrichment pass before the
// object leaves the engine.
type Recipe struct {
	ID          int64          `json:"id,omitempty"`
	Title       string         `json:"title"`
	Ingredients []string       `json:"ingredients"`
	Links       []ShoppingLink `json:"ingredients_with_links,omitempty"`
	Steps       []string       `json:"steps"`
	Equipment   []string       `json:"equipment"`
	ChaosGear   string         `json:"chaos_gear,omitempty"`
	Nutrition   Nutrition      `json:"nutrition"`
	ShareText   string         `json:"shareText,omitempty"`
	CookingTime int            `json:"cooking_time,omitempty"`
	Difficulty  string         `json:"difficulty,omitempty"`
	Servings    int            `json:"servings,omitempty"`
	Tips        string         `json:"tips,omitempty"`

	names    []string
	source   recipeSource
	enriched bool
}

// StoredRecipe is one row of the persisted seed corpus. English and Spanish
// text live side by side; Spanish falls back to English when empty.
type StoredRecipe struct {
	ID          int64
	TitleEN     string
	TitleES     string
	StepsEN     []string
	StepsES     []string
	Ingredients []string
	Nutrition   Nutrition
	CookingTime int
	Difficulty  string
	Rating      float64
	RatingCount int
}

// CorpusStore is the read path into the predefined recipe corpus. It must
// support concurrent readers; the engine never writes.
type CorpusStore interface {
	GetAllRecipes(ctx context.Context) ([]StoredRecipe, error)
}

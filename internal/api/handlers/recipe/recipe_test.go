package recipe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chuckle-chow/internal/core/cache"
	"chuckle-chow/internal/core/catalog"
	"chuckle-chow/internal/core/engine"
	"chuckle-chow/internal/infrastructure/config"
)

type fakeStore struct {
	recipes []engine.StoredRecipe
}

func (f *fakeStore) GetAllRecipes(ctx context.Context) ([]engine.StoredRecipe, error) {
	return f.recipes, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         100,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
	}
	responseCache := cache.NewManager(cfg)
	t.Cleanup(func() { responseCache.Close() })

	service := engine.NewService(catalog.Default(), &fakeStore{})
	handler := NewHandler(service, responseCache)

	router := gin.New()
	router.GET("/ingredients", handler.HandleIngredients)
	router.GET("/api", handler.HandleAPIInfo)
	router.POST("/generate_recipe", handler.HandleGenerate)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleGenerateReturnsRecipe(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/generate_recipe",
		`{"ingredients":["chicken"],"preferences":{}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe struct {
		Title       string   `json:"title"`
		Ingredients []string `json:"ingredients"`
		Steps       []string `json:"steps"`
		Nutrition   struct {
			Calories int `json:"calories"`
		} `json:"nutrition"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.NotEmpty(t, recipe.Title)
	assert.GreaterOrEqual(t, len(recipe.Steps), 3)
	assert.GreaterOrEqual(t, recipe.Nutrition.Calories, 100)
}

func TestHandleGenerateMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/generate_recipe", `{"ingredients":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGenerateCachesResponses(t *testing.T) {
	router := newTestRouter(t)
	body := `{"ingredients":["chicken","potato"],"preferences":{"style":"southern"}}`

	first := postJSON(router, "/generate_recipe", body)
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(router, "/generate_recipe", body)
	require.Equal(t, http.StatusOK, second.Code)

	// random comedic picks would differ without the cache
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHandleGenerateEmptyIngredients(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/generate_recipe", `{"ingredients":[],"preferences":{}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "No Ingredients", recipe.Title)
}

func TestHandleIngredients(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ingredients", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var groups map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	assert.Contains(t, groups["meat"], "chicken")
	assert.Contains(t, groups["seafood"], "shrimp")
}

func TestHandleAPIInfo(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "generate_recipe")
}

package recipe

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"chuckle-chow/internal/core/cache"
	"chuckle-chow/internal/core/engine"
	"chuckle-chow/internal/pkg/common"
)

// Handler serves the recipe generation endpoints.
type Handler struct {
	service *engine.Service
	cache   cache.Cache
}

func NewHandler(service *engine.Service, responseCache cache.Cache) *Handler {
	return &Handler{
		service: service,
		cache:   responseCache,
	}
}

// GenerateRequest is the POST /generate_recipe body.
type GenerateRequest struct {
	Ingredients []string           `json:"ingredients"`
	Preferences engine.Preferences `json:"preferences"`
}

// HandleGenerate produces a recipe, serving identical requests from the
// response cache.
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}

	var req GenerateRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		common.LogWarn("invalid generate request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "Invalid request body",
		})
		return
	}

	key := cacheKey(req)
	if cached, err := h.cache.Get(c.Request.Context(), key); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	recipe := h.service.Generate(c.Request.Context(), req.Ingredients, req.Preferences)

	payload, err := common.ToJSON(recipe)
	if err != nil {
		common.LogError("failed to encode recipe",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Code:    common.ErrCodeInternalError,
			Message: "Failed to encode recipe",
		})
		return
	}

	if err := h.cache.Set(c.Request.Context(), key, payload); err != nil &&
		err != common.ErrCacheFull {
		common.LogWarn("failed to cache recipe response", zap.Error(err))
	}

	common.LogInfo("recipe generated",
		zap.String("title", recipe.Title),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Bool("random", req.Preferences.IsRandom),
		zap.String("request_id", requestID),
	)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(payload))
}

// cacheKey fingerprints a request: random mode, sorted ingredients, and
// every preference that changes the output.
func cacheKey(req GenerateRequest) string {
	ingredients := make([]string, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, strings.ToLower(strings.TrimSpace(ing)))
	}
	sort.Strings(ingredients)

	p := req.Preferences
	return fmt.Sprintf("recipe:%t:%s:%s:%s:%s:%s",
		p.IsRandom,
		strings.Join(ingredients, ","),
		strings.ToLower(p.Style),
		strings.ToLower(p.Category),
		strings.ToLower(p.Diet),
		strings.ToLower(p.Language),
	)
}

package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleIngredients lists the pantry, grouped by category.
func (h *Handler) HandleIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Ingredients())
}

// HandleAPIInfo describes the API surface at its root.
func (h *Handler) HandleAPIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Chuckle & Chow API",
		"description": "Comedic recipe generator with a backwoods attitude",
		"endpoints": gin.H{
			"GET /api":              "this document",
			"GET /ingredients":      "available ingredients grouped by category",
			"POST /generate_recipe": "generate a recipe from ingredients and preferences",
			"GET /health":           "service health and cache statistics",
		},
	})
}

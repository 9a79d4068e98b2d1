// internal/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/autovista/dealership-backend/internal/services"
	"github.com/autovista/dealership-backend/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /api/search?q=...&type=car|motorcycle|all.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.BadRequestResponse(c, "Missing search query", nil)
		return
	}

	kind := c.DefaultQuery("type", "all")
	results, err := h.searchService.Search(query, kind)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponseWithMeta(c, results, gin.H{"count": len(results)})
}

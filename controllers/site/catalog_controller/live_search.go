package catalog_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/catalog"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// LiveSearch godoc
// @Summary Live search for the header dropdown
// @Description Returns at most five title matches in snapshot order. A blank query returns no results, which hides the dropdown.
// @Tags Site - Catalog
// @Produce json
// @Param q query string false "Free-text query" example(hade)
// @Success 200 {object} models.ApiResponse{data=models.LiveSearchResponse}
// @Router /api/v1/search/live [get]
func LiveSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query(catalog.ParamQuery))

	response := models.LiveSearchResponse{
		Query:   query,
		Results: catalog.LiveSearch(residentTorrents(), query),
	}
	// "show all results" in the dropdown navigates here
	if query != "" {
		response.SearchURL = catalog.SearchLink(query)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Live search complete", response))
}

package catalog_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/catalog"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// Search godoc
// @Summary Search the catalog by title
// @Description Case-insensitive substring match over torrent titles. The result set is derived from the snapshot and the q parameter alone, so the search URL is shareable.
// @Tags Site - Catalog
// @Produce json
// @Param q query string true "Free-text query" example(red dead)
// @Success 200 {object} models.ApiResponse{data=models.SearchResponse}
// @Router /api/v1/search [get]
func Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query(catalog.ParamQuery))

	matches := catalog.Search(residentTorrents(), query)
	response := models.SearchResponse{
		Query:    query,
		Torrents: models.BuildTorrentViews(matches, catalog_cache.GetDirectory()),
		Total:    len(matches),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search complete", response))
}

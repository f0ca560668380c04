package catalog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/catalog"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// GetCatalog godoc
// @Summary Get the filtered game catalog
// @Description Returns the torrent listing filtered by category slugs and the Steam Deck toggle. Filter state lives entirely in the query string, so the response for a given URL is reproducible and shareable.
// @Tags Site - Catalog
// @Produce json
// @Param categories query string false "Comma-separated category slugs" example(action,rpg)
// @Param steamDeck query string false "Pass exactly 'true' to keep only Steam Deck verified games"
// @Success 200 {object} models.ApiResponse{data=models.CatalogResponse}
// @Router /api/v1/catalog [get]
func GetCatalog(c *gin.Context) {
	sel := catalog.DecodeQuery(c.Request.URL.Query())

	filtered := catalog.ApplyFilters(residentTorrents(), sel)

	directory := catalog_cache.GetDirectory()
	response := models.CatalogResponse{
		Torrents: models.BuildTorrentViews(filtered, directory),
		Filters: models.FilterSummary{
			Categories:    directory.Labels(sel.Categories()),
			SteamDeckOnly: sel.SteamDeckOnly,
			Active:        !sel.IsEmpty(),
		},
		Total: len(filtered),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog fetched", response))
}

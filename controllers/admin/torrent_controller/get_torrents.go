package torrent_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// GetTorrents godoc
// @Summary List all torrents
// @Description Returns the full torrent collection for the back office table. Served from the resident snapshot; falls through to the catalog service before the first load.
// @Tags Admin - Torrents
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Torrent}
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/torrents [get]
func GetTorrents(c *gin.Context) {
	torrents := catalog_cache.GetTorrents()
	if len(torrents) == 0 {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := services.ReloadTorrents(ctx); err != nil {
			respondRemoteError(c, err, "Catalog service unavailable")
			return
		}
		torrents = catalog_cache.GetTorrents()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Torrents fetched", torrents))
}

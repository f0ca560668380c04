package torrent_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// CreateTorrent godoc
// @Summary Create a torrent
// @Description Creates a torrent in the catalog service, then reloads the snapshot so the change is visible on the next read.
// @Tags Admin - Torrents
// @Accept json
// @Produce json
// @Param torrent body models.TorrentRequest true "Torrent details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/torrents [post]
func CreateTorrent(c *gin.Context) {
	var req models.TorrentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCatalogAPI().CreateTorrent(ctx, &req); err != nil {
		log.Printf("[admin.torrents] create failed: %v", err)
		respondRemoteError(c, err, "Failed to create torrent")
		return
	}

	if err := services.ReloadTorrents(ctx); err != nil {
		// The write landed; the stale snapshot heals on the next reload.
		log.Printf("[admin.torrents] snapshot reload after create failed: %v", err)
	}

	log.Printf("[admin.torrents] created %q", req.Title)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Torrent created", nil))
}

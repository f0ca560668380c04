package torrent_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// UpdateTorrent godoc
// @Summary Update a torrent
// @Description Replaces a torrent's fields in the catalog service, then reloads the snapshot.
// @Tags Admin - Torrents
// @Accept json
// @Produce json
// @Param id path int true "Torrent ID"
// @Param torrent body models.TorrentRequest true "Torrent details"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/torrents/{id} [put]
func UpdateTorrent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid torrent ID"))
		return
	}

	var req models.TorrentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCatalogAPI().UpdateTorrent(ctx, id, &req); err != nil {
		log.Printf("[admin.torrents] update %d failed: %v", id, err)
		respondRemoteError(c, err, "Failed to update torrent")
		return
	}

	if err := services.ReloadTorrents(ctx); err != nil {
		log.Printf("[admin.torrents] snapshot reload after update failed: %v", err)
	}

	log.Printf("[admin.torrents] updated %d (%q)", id, req.Title)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Torrent updated", nil))
}

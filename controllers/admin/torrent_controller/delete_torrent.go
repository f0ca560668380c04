package torrent_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// DeleteTorrent godoc
// @Summary Delete a torrent
// @Description Removes a torrent from the catalog service, then reloads the snapshot.
// @Tags Admin - Torrents
// @Produce json
// @Param id path int true "Torrent ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid torrent ID"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/torrents/{id} [delete]
func DeleteTorrent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid torrent ID"))
		return
	}

	// Capture the poster URL before the record disappears from the snapshot.
	var posterURL string
	for _, t := range catalog_cache.GetTorrents() {
		if t.ID == id {
			posterURL = t.Poster
			break
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCatalogAPI().DeleteTorrent(ctx, id); err != nil {
		log.Printf("[admin.torrents] delete %d failed: %v", id, err)
		respondRemoteError(c, err, "Failed to delete torrent")
		return
	}

	if err := services.ReloadTorrents(ctx); err != nil {
		log.Printf("[admin.torrents] snapshot reload after delete failed: %v", err)
	}

	// Best effort cleanup of the orphaned poster. External poster URLs
	// yield an empty public ID and are left alone.
	if publicID := services.PosterPublicID(posterURL); publicID != "" {
		if cld := services.GetCloudinaryService(); cld != nil {
			if err := cld.DeletePoster(ctx, publicID); err != nil {
				log.Printf("[admin.torrents] poster cleanup for %d failed: %v", id, err)
			}
		}
	}

	log.Printf("[admin.torrents] deleted %d", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Torrent deleted", nil))
}

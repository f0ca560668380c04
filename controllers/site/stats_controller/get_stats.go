package stats_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// GetStats godoc
// @Summary Get site statistics
// @Description Returns the landing page counters (games, users, comments) and the site-wide warning banner text when one is set.
// @Tags Site - Stats
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.Stats}
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/stats [get]
func GetStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := services.GetCatalogAPI().FetchStats(ctx)
	if err != nil {
		log.Printf("[stats] fetch failed: %v", err)
		var remote *services.RemoteError
		if errors.As(err, &remote) {
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, remote.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Catalog service unavailable"))
		return
	}

	// The remote warning text wins; fall back to the locally set one.
	if stats.Warning == "" {
		stats.Warning = services.GetSessionService().Warning()
	} else {
		services.GetSessionService().SetWarning(stats.Warning)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched", stats))
}

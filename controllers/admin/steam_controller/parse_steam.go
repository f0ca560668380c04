package steam_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// ParseSteamRequest accepts a store URL, a community URL or a bare app ID.
type ParseSteamRequest struct {
	URL string `json:"url" binding:"required"`
}

// ParseSteam godoc
// @Summary Prefill a torrent form from a Steam page
// @Description Extracts the app ID from a Steam URL and fetches name, descriptions, images and genres so the operator does not type them by hand.
// @Tags Admin - Steam
// @Accept json
// @Produce json
// @Param parseRequest body ParseSteamRequest true "Steam store URL or app ID"
// @Success 200 {object} models.ApiResponse{data=services.SteamGame}
// @Failure 400 {object} models.ApiResponse "Unrecognized URL"
// @Failure 404 {object} models.ApiResponse "Game not found"
// @Router /api/v1/admin/steam/parse [post]
func ParseSteam(c *gin.Context) {
	var req ParseSteamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	appID := services.ExtractAppID(req.URL)
	if appID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not recognize a Steam URL or app ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	game, err := services.GetSteamService().FetchGame(ctx, appID)
	if err != nil {
		if errors.Is(err, services.ErrSteamAppNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Game not found or data unavailable"))
			return
		}
		log.Printf("[admin.steam] fetch %s failed: %v", appID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Steam is unavailable, try again later"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Game data fetched", game))
}

package warning_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// UpdateWarning godoc
// @Summary Update the site-wide warning banner
// @Description Stores the banner text in the catalog service and locally. An empty text hides the banner on the landing page.
// @Tags Admin - Warning
// @Accept json
// @Produce json
// @Param warning body models.WarningRequest true "Banner text, empty to hide"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/warning [put]
func UpdateWarning(c *gin.Context) {
	var req models.WarningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCatalogAPI().UpdateWarning(ctx, req.Warning); err != nil {
		log.Printf("[admin.warning] update failed: %v", err)
		var remote *services.RemoteError
		if errors.As(err, &remote) && remote.StatusCode >= 400 && remote.StatusCode < 500 {
			c.JSON(remote.StatusCode, models.ErrorResponse(c, remote.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to update warning"))
		return
	}

	services.GetSessionService().SetWarning(req.Warning)

	log.Printf("[admin.warning] updated (%d chars)", len(req.Warning))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Warning updated", nil))
}

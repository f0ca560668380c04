package category_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

func respondRemoteError(c *gin.Context, err error, fallback string) {
	var remote *services.RemoteError
	if errors.As(err, &remote) && remote.StatusCode >= 400 && remote.StatusCode < 500 {
		c.JSON(remote.StatusCode, models.ErrorResponse(c, remote.Error()))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, fallback))
}

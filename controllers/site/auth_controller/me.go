package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// Me godoc
// @Summary Get the current user
// @Description Returns the user attached to the session cookie or Bearer token.
// @Tags Site - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 401 {object} models.ApiResponse "Not logged in"
// @Router /api/v1/auth/me [get]
func Me(c *gin.Context) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not logged in"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched", user))
}

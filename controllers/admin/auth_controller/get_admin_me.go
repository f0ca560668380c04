package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// GetAdminMe godoc
// @Summary Get the logged-in admin
// @Description Returns the username behind the current admin token. Used by the back office to restore its auth state on reload.
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Router /api/v1/admin/me [get]
func GetAdminMe(c *gin.Context) {
	username, ok := middleware.GetAdminUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched", gin.H{"username": username}))
}

package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// AdminLogout godoc
// @Summary Logout from the back office
// @Description Clears the admin token cookie. The JWT itself simply expires.
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/logout [post]
func AdminLogout(c *gin.Context) {
	username, _ := middleware.GetAdminUsernameFromContext(c)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	log.Printf("[admin.logout] %s logged out", username)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}

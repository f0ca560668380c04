package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// Logout godoc
// @Summary Logout
// @Description Drops the server-side session and clears the cookie. The session and its user record go away together.
// @Tags Site - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Not logged in"
// @Router /api/v1/auth/logout [post]
func Logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not logged in"))
		return
	}

	services.GetSessionService().Logout(sessionID)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	log.Printf("[auth.logout] session %s ended", sessionID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}

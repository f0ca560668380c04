package auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

const sessionMaxAge = 24 * 60 * 60

// respondAuthError surfaces a remote auth failure verbatim ("Неверный
// email или пароль" and friends come straight from the catalog service).
// Anything that is not a client error from the remote maps to 502.
func respondAuthError(c *gin.Context, err error) {
	var remote *services.RemoteError
	if errors.As(err, &remote) && remote.StatusCode >= 400 && remote.StatusCode < 500 {
		c.JSON(remote.StatusCode, models.ErrorResponse(c, remote.Error()))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Authentication service unavailable"))
}

// startSession stores the authenticated user and sets the session cookie.
func startSession(c *gin.Context, auth *models.AuthResponse) {
	sessionID := services.GetSessionService().CreateSession(&auth.User, auth.Token)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
}

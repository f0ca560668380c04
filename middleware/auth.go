package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// SessionCookie carries the session ID issued at login.
const SessionCookie = "session_id"

// AuthMiddleware resolves the caller's session from the cookie or the
// Authorization header and rejects requests without a live session.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		// Try to get the session from the cookie first
		cookie, err := c.Cookie(SessionCookie)
		if err == nil && cookie != "" {
			sessionID = cookie
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}
			sessionID = parts[1]
		}

		session := services.GetSessionService().GetSession(sessionID)
		if session == nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired session"))
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("sessionID", session.ID)
		c.Set("user", session.User)

		c.Next()
	}
}

// GetSessionIDFromContext returns the session ID set by AuthMiddleware.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		return "", false
	}
	return sessionID.(string), true
}

// GetUserFromContext returns the user record set by AuthMiddleware.
func GetUserFromContext(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	return user.(*models.User), true
}

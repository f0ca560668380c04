package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// AdminAuthMiddleware validates the back-office JWT and puts the admin
// identity into the request context.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie first, then Authorization header
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		// Validate and parse JWT
		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		c.Set("adminUsername", claims.Username)

		c.Next()
	}
}

// GetAdminUsernameFromContext returns the admin identity set by
// AdminAuthMiddleware.
func GetAdminUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get("adminUsername")
	if !exists {
		return "", false
	}
	return username.(string), true
}

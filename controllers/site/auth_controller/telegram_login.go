package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// TelegramLogin godoc
// @Summary Login via the Telegram widget
// @Description Verifies the widget's HMAC signature against the bot token, then exchanges the identity with the catalog service and starts a session.
// @Tags Site - Auth
// @Accept json
// @Produce json
// @Param telegramRequest body models.TelegramAuthRequest true "Telegram Login Widget payload"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 401 {object} models.ApiResponse "Signature check failed"
// @Failure 503 {object} models.ApiResponse "Telegram login not configured"
// @Router /api/v1/auth/telegram [post]
func TelegramLogin(c *gin.Context) {
	telegram := services.GetTelegramAuthService()
	if telegram == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Telegram login is not configured"))
		return
	}

	var req models.TelegramAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	if err := telegram.Verify(&req); err != nil {
		log.Printf("[auth.telegram] verification failed for id %d: %v", req.ID, err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Telegram signature check failed"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	auth, err := services.GetCatalogAPI().TelegramAuth(ctx, &req)
	if err != nil {
		log.Printf("[auth.telegram] exchange failed for id %d: %v", req.ID, err)
		respondAuthError(c, err)
		return
	}

	startSession(c, auth)
	log.Printf("[auth.telegram] success: telegram id %d (user %d)", req.ID, auth.User.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", auth))
}

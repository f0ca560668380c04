package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// Login godoc
// @Summary Login with email and password
// @Description Authenticates against the catalog service and starts a session. Remote error messages are returned unchanged.
// @Tags Site - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	auth, err := services.GetCatalogAPI().Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Printf("[auth.login] failed for %s: %v", req.Email, err)
		respondAuthError(c, err)
		return
	}

	startSession(c, auth)
	log.Printf("[auth.login] success: %s (user %d)", req.Email, auth.User.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", auth))
}

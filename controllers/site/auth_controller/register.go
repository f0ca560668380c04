package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// Register godoc
// @Summary Create a new account
// @Description Registers through the catalog service and starts a session. Duplicate email and similar rejections are returned with the remote message unchanged.
// @Tags Site - Auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "New account details"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request or passwords do not match"
// @Router /api/v1/auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Passwords do not match"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	auth, err := services.GetCatalogAPI().Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		log.Printf("[auth.register] failed for %s: %v", req.Email, err)
		respondAuthError(c, err)
		return
	}

	startSession(c, auth)
	log.Printf("[auth.register] success: %s (user %d)", req.Email, auth.User.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Registration successful", auth))
}

package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// AdminLogin godoc
// @Summary Login to the back office
// @Description Authenticates the operator account and returns a JWT. The token is also set as an HTTP-only cookie.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Username and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /api/v1/admin/login [post]
func AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	if !services.GetAdminAuthService().VerifyCredentials(req.Username, req.Password) {
		log.Printf("[admin.login] invalid credentials for %s", req.Username)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid username or password"))
		return
	}

	token, expiresAt, err := services.GenerateAdminJWT(req.Username)
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, 24*60*60, "/", "", false, true)

	log.Printf("[admin.login] success: %s", req.Username)

	response := models.AdminLoginResponse{
		Username:  req.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}

package user_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// GetUsers godoc
// @Summary List all users
// @Description Returns all registered users. User data is read through on every request, not snapshotted.
// @Tags Admin - Users
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.User}
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/users [get]
func GetUsers(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	users, err := services.GetCatalogAPI().FetchUsers(ctx)
	if err != nil {
		log.Printf("[admin.users] fetch failed: %v", err)
		respondRemoteError(c, err, "Catalog service unavailable")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Users fetched", users))
}

package user_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes a user record from the catalog service.
// @Tags Admin - Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid user ID"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid user ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCatalogAPI().DeleteUser(ctx, id); err != nil {
		log.Printf("[admin.users] delete %d failed: %v", id, err)
		respondRemoteError(c, err, "Failed to delete user")
		return
	}

	log.Printf("[admin.users] deleted %d", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User deleted", nil))
}

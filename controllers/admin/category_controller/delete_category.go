package category_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Removes a category from the catalog service, then reloads the category snapshot. Torrents still tagged with the removed slug render it as raw text with the fallback icon.
// @Tags Admin - Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCatalogAPI().DeleteCategory(ctx, id); err != nil {
		log.Printf("[admin.categories] delete %d failed: %v", id, err)
		respondRemoteError(c, err, "Failed to delete category")
		return
	}

	if err := services.ReloadCategories(ctx); err != nil {
		log.Printf("[admin.categories] snapshot reload after delete failed: %v", err)
	}

	log.Printf("[admin.categories] deleted %d", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted", nil))
}

package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// GetCategories godoc
// @Summary List all categories
// @Description Returns the category collection for the back office. Served from the resident snapshot; falls through to the catalog service before the first load.
// @Tags Admin - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/categories [get]
func GetCategories(c *gin.Context) {
	categories := catalog_cache.GetCategories()
	if len(categories) == 0 {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := services.ReloadCategories(ctx); err != nil {
			respondRemoteError(c, err, "Catalog service unavailable")
			return
		}
		categories = catalog_cache.GetCategories()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", categories))
}

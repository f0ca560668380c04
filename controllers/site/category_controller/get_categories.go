package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/pr-poehali-dev/torrent-game-platform/cache"
	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

// GetCategories godoc
// @Summary Get the category directory
// @Description Returns all filter categories with their display names and icons. Served from the resident snapshot; falls through to the catalog service before the first load.
// @Tags Site - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Router /api/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories := catalog_cache.GetCategories()
	if len(categories) == 0 {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := services.ReloadCategories(ctx); err != nil {
			log.Printf("[categories] warm load failed: %v", err)
		}
		categories = catalog_cache.GetCategories()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", categories))
}

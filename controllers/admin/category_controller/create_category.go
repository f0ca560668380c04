package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
	"github.com/pr-poehali-dev/torrent-game-platform/utils"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Creates a filter category in the catalog service, then reloads the category snapshot and its slug directory.
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 502 {object} models.ApiResponse "Catalog service unavailable"
// @Router /api/v1/admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	if !utils.IsValidSlug(req.Slug) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Slug must be lowercase letters, digits and hyphens"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCatalogAPI().CreateCategory(ctx, &req); err != nil {
		log.Printf("[admin.categories] create failed: %v", err)
		respondRemoteError(c, err, "Failed to create category")
		return
	}

	if err := services.ReloadCategories(ctx); err != nil {
		log.Printf("[admin.categories] snapshot reload after create failed: %v", err)
	}

	log.Printf("[admin.categories] created %q (%s)", req.Name, req.Slug)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created", nil))
}

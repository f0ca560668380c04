package site_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/controllers/site/catalog_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/site/category_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/site/stats_controller"
)

// SetupCatalogRoutes wires the public read surface. Everything here is
// snapshot-backed and needs no auth.
func SetupCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", catalog_controller.GetCatalog)
	rg.GET("/search", catalog_controller.Search)
	rg.GET("/search/live", catalog_controller.LiveSearch)
	rg.GET("/categories", category_controller.GetCategories)
	rg.GET("/stats", stats_controller.GetStats)
}

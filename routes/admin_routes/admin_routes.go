package admin_routes

import (
	"github.com/gin-gonic/gin"

	admin_auth "github.com/pr-poehali-dev/torrent-game-platform/controllers/admin/auth_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/admin/category_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/admin/steam_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/admin/torrent_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/admin/upload_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/admin/user_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/controllers/admin/warning_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
)

// SetupAdminRoutes sets up the back office routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Torrents
		protected.GET("/torrents", torrent_controller.GetTorrents)
		protected.POST("/torrents", torrent_controller.CreateTorrent)
		protected.PUT("/torrents/:id", torrent_controller.UpdateTorrent)
		protected.DELETE("/torrents/:id", torrent_controller.DeleteTorrent)

		// Categories
		protected.GET("/categories", category_controller.GetCategories)
		protected.POST("/categories", category_controller.CreateCategory)
		protected.DELETE("/categories/:id", category_controller.DeleteCategory)

		// Users
		protected.GET("/users", user_controller.GetUsers)
		protected.PUT("/users/:id", user_controller.UpdateUser)
		protected.DELETE("/users/:id", user_controller.DeleteUser)

		// Warning banner
		protected.PUT("/warning", warning_controller.UpdateWarning)

		// Steam prefill
		protected.POST("/steam/parse", steam_controller.ParseSteam)

		// Poster uploads
		protected.POST("/posters", upload_controller.UploadPoster)
	}
}

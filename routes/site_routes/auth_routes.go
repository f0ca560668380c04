package site_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/controllers/site/auth_controller"
	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	auth.POST("/login", auth_controller.Login)
	auth.POST("/register", auth_controller.Register)
	auth.POST("/telegram", auth_controller.TelegramLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Session Required)
	// ════════════════════════════════════════════════════════════
	protected := auth.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", auth_controller.Logout)
		protected.GET("/me", auth_controller.Me)
	}
}

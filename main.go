// @title TorrTop API
// @version 1.0
// @description Torrent game catalog backend: snapshot-backed filtering, search and back office
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	_ "github.com/pr-poehali-dev/torrent-game-platform/docs"
	"github.com/pr-poehali-dev/torrent-game-platform/middleware"
	"github.com/pr-poehali-dev/torrent-game-platform/routes/admin_routes"
	"github.com/pr-poehali-dev/torrent-game-platform/routes/site_routes"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (rate limiter)
	config.ConnectRedis()

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Admin credentials
	if err := services.InitAdminAuthService(); err != nil {
		log.Fatalf("Failed to initialize admin auth: %v", err)
	}

	// ✅ Catalog service client and session store
	if err := services.InitCatalogAPI(config.CatalogAPIURL()); err != nil {
		log.Fatalf("Failed to initialize catalog client: %v", err)
	}
	services.InitSessionService()
	services.InitSteamService()

	// Telegram login is optional; without a bot token the endpoint replies 503
	if botToken := os.Getenv("TELEGRAM_BOT_TOKEN"); botToken != "" {
		if err := services.InitTelegramAuthService(botToken); err != nil {
			log.Fatalf("Failed to initialize Telegram auth: %v", err)
		}
		log.Println("✅ Telegram login enabled")
	} else {
		log.Println("⚠️  TELEGRAM_BOT_TOKEN not set, Telegram login disabled")
	}

	// Cloudinary is optional too; without credentials poster uploads reply 503
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️  Cloudinary credentials not set, poster uploads disabled")
	}

	// Warm the snapshots so the first page load does not hit an empty catalog
	warmCtx, cancel := config.WithCustomTimeout(30 * time.Second)
	if err := services.ReloadTorrents(warmCtx); err != nil {
		log.Printf("⚠️  Initial torrent snapshot load failed: %v", err)
	}
	if err := services.ReloadCategories(warmCtx); err != nil {
		log.Printf("⚠️  Initial category snapshot load failed: %v", err)
	}
	cancel()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public site surface (no rate limiter)
	site_routes.SetupCatalogRoutes(api)
	site_routes.SetupAuthRoutes(api)

	// ✅ Back office (at /api/v1/admin prefix, rate limited)
	adminGroup := api.Group("")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupAdminRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}

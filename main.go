// File: /main.go
package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialfeed-api/config"
	"socialfeed-api/database"
	"socialfeed-api/routes"
	"socialfeed-api/services"
	"socialfeed-api/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	utils.InitLogger(cfg.LogLevel)
	defer utils.Logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		utils.Logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		utils.Logger.Fatal("failed to migrate database", zap.Error(err))
	}

	emailService := services.NewEmailService(cfg)

	mediaService, err := services.NewMediaService(cfg.StoragePath, cfg.BaseURL)
	if err != nil {
		utils.Logger.Fatal("failed to set up media storage", zap.Error(err))
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())

	routes.SetupRoutes(router, db, cfg, emailService, mediaService)

	utils.Logger.Info("starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Logger.Fatal("failed to start server", zap.Error(err))
	}
}

// File: /routes/routes.go
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"socialfeed-api/config"
	"socialfeed-api/controllers"
	"socialfeed-api/middleware"
	"socialfeed-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, mediaService *services.MediaService) {
	// Services
	likeService := services.NewLikeService(db)
	commentService := services.NewCommentService(db, likeService)
	postService := services.NewPostService(db, likeService, commentService, mediaService)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	postController := controllers.NewPostController(postService, mediaService)
	commentController := controllers.NewCommentController(commentService)
	likeController := controllers.NewLikeController(likeService)

	// Uploaded media is served straight off the storage directory
	r.Static("/storage", cfg.StoragePath)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protected.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	{
		protected.GET("/user", authController.Me)

		// Post routes
		posts := protected.Group("/posts")
		{
			posts.GET("/", postController.GetPosts)
			posts.POST("/", postController.CreatePost)
			posts.PUT("/:id", postController.UpdatePost)
			posts.DELETE("/:id", postController.DeletePost)
			posts.POST("/:id/comments", commentController.CreateComment)
		}

		// Comment routes
		protected.DELETE("/comments/:id", commentController.DeleteComment)

		// Like routes
		protected.POST("/likes/toggle", likeController.Toggle)
	}
}

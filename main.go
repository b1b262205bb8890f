package main

import (
	"context"
	"log"
	"time"

	"tutorials-be/internal/config"
	"tutorials-be/internal/controllers"
	"tutorials-be/internal/database"
	"tutorials-be/internal/middleware"
	"tutorials-be/internal/repository"
	"tutorials-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to MongoDB
	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, err := database.Connect(connectCtx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect from database: %v", err)
		}
	}()

	// Initialize repository, service and controller
	tutorialRepo := repository.NewTutorialRepository(client.Database(cfg.MongoDB))
	tutorialService := service.NewTutorialService(tutorialRepo)
	tutorialController := controllers.NewTutorialController(tutorialService)

	// Initialize rate limiter for the API group
	apiRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.Default()

	// Cross-origin policy for browser clients
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Tutorial routes under /api with rate limiting
	api := router.Group("/api", apiRateLimiter.LimitMiddleware())
	tutorialController.RegisterRoutes(api)

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"net/http"
	"os"

	"github.com/AyushDadhich07/rider/config"
	"github.com/AyushDadhich07/rider/handlers"
	"github.com/AyushDadhich07/rider/middleware"
	"github.com/AyushDadhich07/rider/routes"
	"github.com/AyushDadhich07/rider/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.InitLogger()
	defer config.Logger.Sync()

	// Initialize database
	config.InitDB()

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	r.Use(middleware.RequestID())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Ride Share Coordination API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":      "🚕 Welcome to the Ride Share Coordination API",
			"health":       "/health",
			"destinations": []string{"airport", "railway station"},
		})
	})

	// Register all routes
	rideRequests := handlers.NewRideRequestHandler(store.NewRideRequestStore(config.DB))
	routes.SetupRoutes(r, rideRequests)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger.Info("Server running", zap.String("addr", "http://localhost:"+port))
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Failed to start server", zap.Error(err))
	}
}

package main

import (
	"log"
	"net/http"
	"os"

	"food-delivery-backend/config"
	"food-delivery-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.InitDB(cfg.DBPath)
	if cfg.SeedDemo {
		if err := config.Seed(config.DB); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	// Default middleware: logger + recovery
	r := gin.Default()

	// CORS for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": "food-delivery-api"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Food Delivery API",
			"health":  "/health",
			"docs":    []string{"/restaurants", "POST /auth/login"},
		})
	})

	routes.SetupRoutes(r, config.DB)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

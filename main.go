package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodhub/catalog"
	"foodhub/config"
	"foodhub/handlers"
	"foodhub/routes"
	"foodhub/storage"
	"foodhub/store"
	"foodhub/toast"
)

func main() {
	_ = godotenv.Load()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Persistence bridge: a local sqlite key/value store standing in
	// for the browser's localStorage.
	bridge, err := storage.OpenSQLite(config.DatabasePath())
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}

	cat := catalog.New()
	toasts := toast.NewCenter()
	st := store.New(cat, bridge, toasts, store.WithAdminEmail(config.AdminEmail()))

	// Rehydrate before accepting any request so role guards never act
	// on a half-loaded session.
	if err := st.Load(); err != nil {
		log.Fatal("Failed to load persisted state:", err)
	}
	log.Println("✅ Persisted state loaded")

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
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

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "FoodHub Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the FoodHub Ordering API",
			"docs":    "/api/order-statuses",
			"health":  "/health",
			"roles":   []string{"customer", "admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, handlers.New(st, cat, toasts))

	// Start server
	port := config.Port()
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"coffee_backoffice/internal/api"        // Custom package for API handlers
	"coffee_backoffice/internal/config"     // Custom package for configuration
	"coffee_backoffice/internal/domain"     // Domain models and roles
	"coffee_backoffice/internal/middleware" // Custom package for middleware
	"context"                               // context package is needed for Redis operations
	"log"                                   // log package is needed for logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth route
	r.POST("/auth/login", api.LoginHandler(db, cfg.JWTSecret))

	// Staff routes (any authenticated role)
	staff := r.Group("/")
	staff.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	staff.GET("/dashboard", api.DashboardHandler(db, redisClient))
	staff.GET("/products", api.ListProductsHandler(db))
	staff.GET("/clients", api.ListClientsHandler(db))
	staff.GET("/orders", api.ListOrdersHandler(db))
	staff.GET("/orders/:id", api.GetOrderHandler(db))
	staff.POST("/orders", api.CreateOrderHandler(db, redisClient))
	staff.POST("/orders/:id/items", api.AddItemHandler(db, redisClient))
	staff.DELETE("/orders/:id/items/:itemID", api.RemoveItemHandler(db, redisClient))
	staff.PUT("/orders/:id/status", api.TransitionHandler(db, redisClient))

	// Admin routes (account, catalog and client management, imports)
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", api.ListUsersHandler(db))
	admin.POST("/users", api.CreateUserHandler(db))
	admin.POST("/products", api.CreateProductHandler(db))
	admin.DELETE("/products/:id", api.DeleteProductHandler(db))
	admin.POST("/products/import", api.ImportProductsHandler(db))
	admin.POST("/clients", api.CreateClientHandler(db))
	admin.POST("/clients/import", api.ImportClientsHandler(db))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

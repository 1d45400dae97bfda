package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/urbina-joyeria/taller-api/config"
	"github.com/urbina-joyeria/taller-api/controllers"
	"github.com/urbina-joyeria/taller-api/middleware"
	"github.com/urbina-joyeria/taller-api/models"
	"github.com/urbina-joyeria/taller-api/services"
	"github.com/urbina-joyeria/taller-api/utils"
)

func main() {
	// Basic logging
	log.Println("Starting Taller Urbina API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Status{},
		&models.Priority{},
		&models.Order{},
		&models.Note{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Seed the status/priority registries on first run
	if err := models.SeedMasterData(db); err != nil {
		log.Fatalf("Failed to seed master data: %v", err)
	}

	// Photo storage: S3 when a bucket is configured, local disk otherwise
	if cfg.UsesS3() {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		services.InitS3PhotoService(s3Service)
		log.Printf("Piece photos stored in S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		services.InitLocalPhotoService(utils.UploadDir)
		log.Printf("Piece photos stored locally in %s", utils.UploadDir)
	}

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the full route tree. The admin surface sits behind
// the Auth0 JWT middleware; the customer tracking lookup does not.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSAllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/api/v1")
	{
		// Public surface
		v1.GET("/health", healthCheck)
		v1.GET("/track/:orderNumber", controllers.TrackOrder)
		v1.GET("/uploads/:filename", controllers.GetUploadedPhoto)

		// Admin surface
		admin := v1.Group("")
		admin.Use(middleware.EnsureValidToken(cfg))
		{
			admin.POST("/users", controllers.CreateUser)
			admin.GET("/users/me", controllers.GetCurrentUser)

			orders := admin.Group("/orders")
			{
				orders.GET("", controllers.ListOrders)
				orders.GET("/search/:term", controllers.SearchOrders)
				orders.GET("/data/masters", controllers.GetMasterData)
				orders.GET("/data/stats", controllers.GetOrderStats)
				orders.POST("", controllers.CreateOrder)
				orders.GET("/:id", controllers.GetOrder)
				orders.PUT("/:id", controllers.UpdateOrder)
				orders.PATCH("/:id/status", controllers.UpdateOrderStatus)
				orders.PATCH("/:id/priority", controllers.UpdateOrderPriority)
				orders.DELETE("/:id", controllers.DeleteOrder)
				orders.POST("/:id/photo", controllers.UploadOrderPhoto)
				orders.POST("/:id/notes", controllers.AddNote)
				orders.GET("/:id/notes", controllers.ListNotes)
				orders.DELETE("/:id/notes/:noteId", controllers.DeleteNote)
			}
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Taller Urbina API is running",
	})
}

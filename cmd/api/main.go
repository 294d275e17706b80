package main

import (
	"fmt"
	"net/http"
	"os"

	"proforma/internal/config"
	"proforma/internal/database"
	"proforma/internal/handlers"
	"proforma/internal/logger"
	"proforma/internal/middleware"
	"proforma/internal/services"
	"proforma/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "proforma/internal/docs" // Import swagger docs
)

// @title           Proforma API
// @version         1.0
// @description     Proforma computes ten-year cash-flow projections for hospitality property investments from saved assumption scenarios.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validation tags
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	scenarioService := services.NewScenarioService(db)
	projectionService := services.NewProjectionService(scenarioService, appConfig.DefaultOccupancyStep)
	reportService := services.NewReportService(projectionService)

	// Initialize handlers
	scenarioHandler := handlers.NewScenarioHandler(scenarioService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Scenario routes
	scenarios := v1.Group("/scenarios")
	scenarios.POST("", scenarioHandler.CreateScenario)
	scenarios.GET("", scenarioHandler.GetScenarios)
	scenarios.GET("/:id", scenarioHandler.GetScenario)
	scenarios.PUT("/:id", scenarioHandler.UpdateScenario)
	scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
	scenarios.GET("/:id/projection", projectionHandler.GetProjection)
	scenarios.GET("/:id/export", reportHandler.ExportProjection)

	log.Infof("Starting Proforma backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

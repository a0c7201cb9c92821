package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tenantops/tenant-admin-api/docs"
	"github.com/tenantops/tenant-admin-api/internal/api"
	"github.com/tenantops/tenant-admin-api/internal/config"
	"github.com/tenantops/tenant-admin-api/internal/middleware"
	"github.com/tenantops/tenant-admin-api/internal/repository/postgres"
	"github.com/tenantops/tenant-admin-api/internal/service"
	"github.com/tenantops/tenant-admin-api/internal/service/queue"
	"github.com/tenantops/tenant-admin-api/pkg/logger"
)

// @title           Tenant Admin Swagger API
// @version         1.0
// @description     Multi-tenant SaaS administration API.

// @host      localhost:10000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	repo := postgres.NewPostgresRepository(dbConnections)

	// Initialize services
	authzService := service.NewAuthzService(repo)
	tenantService := service.NewTenantService(repo, appLogger)
	backupService := service.NewBackupService(repo, authzService, appLogger)
	documentService := service.NewDocumentService(repo, authzService)
	usageService := service.NewUsageService(repo)
	billingService := service.NewBillingService(repo, appLogger)

	// Wire the backup archive queue when enabled
	if cfg.BackupArchiveEnabled {
		sqsConfig := config.DefaultSQSConfig()
		sqsClient, err := sqsConfig.GetClient(context.Background())
		if err != nil {
			appLogger.Fatal("Failed to connect to SQS", err)
		}
		backupService.SetArchiveQueue(queue.NewSQSService(sqsClient, sqsConfig))
		appLogger.Info("Backup archival enabled")
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		tenantService,
		backupService,
		documentService,
		usageService,
		billingService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
	)

	// Initialize router
	router := gin.Default()

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "Tenant Admin API"
	docs.SwaggerInfo.Description = "Multi-tenant SaaS administration API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}

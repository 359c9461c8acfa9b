package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expediente-admin/config"
	deliveryHttp "expediente-admin/internal/delivery/http"
	"expediente-admin/internal/delivery/http/handler"
	"expediente-admin/internal/delivery/http/middleware"
	"expediente-admin/internal/infrastructure/cache"
	"expediente-admin/internal/infrastructure/database"
	"expediente-admin/internal/infrastructure/metrics"
	"expediente-admin/internal/infrastructure/storage"
	"expediente-admin/internal/repository"
	"expediente-admin/internal/service"
	"expediente-admin/internal/usecase"
	"expediente-admin/pkg/jwt"
	"expediente-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if sqlDB, err := db.DB(); err == nil {
		if err := metrics.RegisterDBStats(sqlDB); err != nil {
			logrus.Warnf("Failed to register database metrics: %+v", err)
		}
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize image storage
	imageStorage, err := storage.NewImageStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}
	logrus.Infof("Image storage driver: %s", cfg.Storage.Driver)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	productCache := cache.NewProductCache(redisClient, cfg.Redis.CacheTTL)

	// Initialize services
	auditService := service.NewAuditService(auditLogRepo)
	recordEditor := service.NewRecordEditor(customValidator, productRepo, brandRepo, cfg.Editor.Location)

	// Initialize usecases
	productUsecase := usecase.NewProductUsecase(log, productRepo, productCache, recordEditor, auditService)
	brandUsecase := usecase.NewBrandUsecase(log, brandRepo)
	mediaUsecase := usecase.NewMediaUsecase(log, imageStorage, auditService, cfg.Storage.MaxImageSize)

	// Initialize handlers
	productHandler := handler.NewProductHandler(productUsecase, customValidator)
	brandHandler := handler.NewBrandHandler(brandUsecase)
	uploadHandler := handler.NewUploadHandler(mediaUsecase, cfg.Storage.MaxImageSize)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins...)

	// Locally stored images are served by this process
	var media deliveryHttp.MediaMount
	if cfg.Storage.Driver == storage.DriverLocal || cfg.Storage.Driver == "" {
		media = deliveryHttp.MediaMount{Prefix: cfg.Storage.PublicURL, Dir: cfg.Storage.LocalDir}
	}

	// Initialize router
	router := deliveryHttp.NewRouter(productHandler, brandHandler, uploadHandler, authMiddleware, corsMiddleware, media)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

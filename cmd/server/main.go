package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VISHALLkandharee/Room-Finder/internal/config"
	"github.com/VISHALLkandharee/Room-Finder/internal/handler"
	"github.com/VISHALLkandharee/Room-Finder/internal/middleware"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/cache"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/database"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/utils"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"github.com/VISHALLkandharee/Room-Finder/internal/service"
	"github.com/VISHALLkandharee/Room-Finder/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title           Room Finder API
// @version         1.0
// @description     Room rental listing service API

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.Log.Level)
	defer logger.Sync()

	logger.Info("Starting room finder server",
		zap.String("mode", cfg.Server.Mode),
		zap.Int("port", cfg.Server.Port),
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	db, err := database.NewPostgres(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db, logger)

	// Initialize Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer cache.Close(redisClient, logger)

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
	)

	// Initialize object storage
	store, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)

	// Initialize services
	feed := service.NewListingFeed(roomRepo, logger)
	authService := service.NewAuthService(userRepo, jwtManager, logger)
	roomService := service.NewRoomService(roomRepo, feed, logger)
	uploadService := service.NewUploadService(store, cfg.Upload.MaxImageSize, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Setup router
	router := setupRouter(
		cfg,
		logger,
		jwtManager,
		redisClient,
		store,
		authHandler,
		roomHandler,
		uploadHandler,
	)

	// Create server
	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server is running",
			zap.String("addr", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

func setupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *utils.JWTManager,
	redisClient *redis.Client,
	store *storage.LocalStore,
	authHandler *handler.AuthHandler,
	roomHandler *handler.RoomHandler,
	uploadHandler *handler.UploadHandler,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded listing images
	router.Static("/uploads", store.Dir())

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIRateLimit(redisClient))
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit(redisClient))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(jwtManager))
		{
			authProtected.POST("/become-lister", authHandler.BecomeLister)
			authProtected.GET("/me", authHandler.GetMe)
		}

		// Room routes. Browsing requires a session too; only signed-in
		// users see the listing feed.
		rooms := v1.Group("/rooms")
		rooms.Use(middleware.Auth(jwtManager))
		{
			rooms.GET("", roomHandler.List)
			rooms.GET("/:id", roomHandler.GetByID)
			rooms.POST("", roomHandler.Create)
			rooms.GET("/mine", roomHandler.ListMine)
			rooms.DELETE("/:id", roomHandler.Delete)
		}

		// Upload routes
		upload := v1.Group("/upload")
		upload.Use(middleware.Auth(jwtManager))
		upload.Use(middleware.UploadRateLimit(redisClient))
		{
			upload.POST("/images", uploadHandler.UploadImages)
		}
	}

	router.MaxMultipartMemory = cfg.Upload.MaxImageSize * 4

	return router
}

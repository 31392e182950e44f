package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/6DaddyCoders9/Salon-App/config"
	deliveryHttp "github.com/6DaddyCoders9/Salon-App/internal/delivery/http"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/http/handler"
	"github.com/6DaddyCoders9/Salon-App/internal/delivery/http/middleware"
	"github.com/6DaddyCoders9/Salon-App/internal/infrastructure/cache"
	"github.com/6DaddyCoders9/Salon-App/internal/infrastructure/database"
	"github.com/6DaddyCoders9/Salon-App/internal/repository"
	"github.com/6DaddyCoders9/Salon-App/internal/service"
	"github.com/6DaddyCoders9/Salon-App/internal/usecase"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"
	"github.com/6DaddyCoders9/Salon-App/pkg/jwt"
	"github.com/6DaddyCoders9/Salon-App/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const rateLimitIdle = 10 * time.Minute

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	rateLimiter *middleware.RateLimiter
	stop        chan struct{}
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{stop: make(chan struct{})}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database for the audit trail
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, err
	}
	logrus.Info("Database connected successfully")

	// Initialize Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	app.Server = initializeServer(cfg, db, redisClient, app.rateLimiter)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// newAppwriteClient builds the project-scoped client shared by all requests.
// Usecases derive per-session copies from it.
func newAppwriteClient(cfg config.AppwriteConfig) *appwrite.Client {
	return appwrite.New(appwrite.Config{
		Endpoint:  cfg.Endpoint,
		ProjectID: cfg.ProjectID,
		Platform:  cfg.Platform,
		OS:        "android",
		Timeout:   cfg.Timeout,
	})
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, rateLimiter *middleware.RateLimiter) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	client := newAppwriteClient(cfg.Appwrite)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository()
	userRepo := repository.NewUserRepository(cfg.Appwrite)
	serviceCenterRepo := repository.NewCachedServiceCenterRepository(
		repository.NewServiceCenterRepository(cfg.Appwrite),
		redisClient,
		log,
		cfg.Cache.ServiceCenterTTL,
	)
	appointmentRepo := repository.NewAppointmentRepository(cfg.Appwrite)
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	sessionService := service.NewSessionService(redisClient, log)
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(client, log, accountRepo, userRepo, jwtService, sessionService, auditService)
	serviceCenterUsecase := usecase.NewServiceCenterUsecase(client, log, serviceCenterRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(client, log, appointmentRepo, serviceCenterRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	serviceCenterHandler := handler.NewServiceCenterHandler(serviceCenterUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, authUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		serviceCenterHandler,
		appointmentHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		rateLimiter,
	)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
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

	go app.cleanupRateLimiter()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// cleanupRateLimiter forgets idle clients until the app stops.
func (app *App) cleanupRateLimiter() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			app.rateLimiter.Cleanup(rateLimitIdle)
		case <-app.stop:
			return
		}
	}
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	close(app.stop)

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

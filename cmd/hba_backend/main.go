package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/ports"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	"github.com/SscSPs/hotel_booking_app/internal/core/services"
	"github.com/SscSPs/hotel_booking_app/internal/handlers"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/SscSPs/hotel_booking_app/internal/platform/config"
	"github.com/SscSPs/hotel_booking_app/internal/queue"
	"github.com/SscSPs/hotel_booking_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/hotel_booking_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Hotel Booking API
// @version 1.0
// @description Room search, pricing and booking for a chain of hotels.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger)
	if err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	policy, err := cfg.PricingPolicy()
	if err != nil {
		logger.Error("Invalid pricing configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	calculator, err := pricing.NewCalculator(policy)
	if err != nil {
		logger.Error("Failed to build price calculator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var publishers queue.FanoutPublisher
	if cfg.RabbitMQURL != "" {
		amqpPublisher := queue.NewAMQPPublisher(cfg.RabbitMQURL, cfg.BookingEventsQueue)
		defer amqpPublisher.Close()
		publishers = append(publishers, amqpPublisher)
	}
	analytics, err := queue.NewAnalyticsPublisher(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	if err != nil {
		logger.Error("Failed to initialize PostHog client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if analytics != nil {
		defer analytics.Close()
		publishers = append(publishers, analytics)
	}
	var publisher ports.BookingEventPublisher = queue.NopPublisher{}
	if len(publishers) > 0 {
		publisher = publishers
	}

	var cacheStore middleware.CacheStore
	if cfg.CacheEnabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			// the cache middleware falls through on redis errors
			logger.Warn("Redis not reachable, responses will not be cached until it is", slog.String("error", err.Error()))
		}
		cacheStore = redisClient
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, calculator, publisher)

	if cfg.AdminUsername != "" {
		admin, created, err := serviceContainer.Auth.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			logger.Error("Failed to bootstrap admin user", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Admin user ready", slog.String("user_id", admin.UserID), slog.Bool("created", created))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.RateLimit != "" {
		ipLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Invalid rate limit", slog.String("error", err.Error()))
			os.Exit(1)
		}
		r.Use(middleware.RateLimit(ipLimiter))
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, cacheStore)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

package handlers

import (
	"github.com/SscSPs/hotel_booking_app/cmd/docs"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/middleware"
	"github.com/SscSPs/hotel_booking_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// maxCachedBody keeps unusually large reference listings out of redis.
const maxCachedBody = 1 << 20

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// cache may be nil, which disables response caching.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cache middleware.CacheStore,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, cache)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	cache middleware.CacheStore,
) {
	v1 := r.Group("/api/v1")
	registerHomeRoutes(v1, cfg.DefaultCurrency)
	registerAuthRoutes(v1, service.Auth)

	// Reference data changes only through the admin routes, which clear the
	// cache. Search and quote report live free room counts and are never cached.
	referenceCache := middleware.CacheConfig{
		Enabled:      cfg.CacheEnabled && cache != nil,
		TTL:          cfg.CacheTTL,
		Prefix:       "hba:resp:",
		MaxBodyBytes: maxCachedBody,
	}
	cached := v1.Group("", middleware.ResponseCache(referenceCache, cache))
	registerReferenceRoutes(cached, service.Reference)
	registerSearchRoutes(v1, service.Search, service.Booking)

	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerBookingRoutes(authed, service.Booking)
	registerAccountRoutes(authed, service.Auth)

	admin := authed.Group("/admin", middleware.AdminOnly(), middleware.InvalidateCache(referenceCache, cache))
	registerReportingRoutes(admin, service.Reporting)
	registerAdminRoutes(admin, service.Admin)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

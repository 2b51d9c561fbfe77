package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Bootstrap admin; created at startup when both are set
	AdminUsername string
	AdminPassword string

	DefaultCurrency    string
	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted, e.g. "100-M"

	// Response cache
	CacheEnabled  bool
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Booking events; an empty URL disables publishing
	RabbitMQURL        string
	BookingEventsQueue string

	// Booking analytics; an empty key disables it
	PosthogAPIKey   string
	PosthogEndpoint string

	// Booking rules and pricing
	SearchWindowDays         int
	MaxGuests                int
	PeakMonths               string
	MultiplierSingle         string
	MultiplierDoubleOneGuest string
	MultiplierDoubleTwoGuest string
	MultiplierFamily         string
	DoubleRoomGuestThreshold int
	DiscountTiers            string
	CancellationTiers        string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "hotel-booking-app")
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("DEFAULT_CURRENCY", "GBP")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("BOOKING_EVENTS_QUEUE", "booking_events")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("SEARCH_WINDOW_DAYS", 90)
	v.SetDefault("MAX_GUESTS", 6)
	v.SetDefault("PEAK_MONTHS", "4,5,6,7,8,9")
	v.SetDefault("MULTIPLIER_SINGLE", "1.0")
	v.SetDefault("MULTIPLIER_DOUBLE_ONE_GUEST", "1.2")
	v.SetDefault("MULTIPLIER_DOUBLE_TWO_GUESTS", "1.3")
	v.SetDefault("MULTIPLIER_FAMILY", "1.5")
	v.SetDefault("DOUBLE_ROOM_GUEST_THRESHOLD", 2)
	v.SetDefault("DISCOUNT_TIERS", "80:0.80,60:0.90,45:0.95")
	v.SetDefault("CANCELLATION_TIERS", "30:1.0,60:0.5")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "hotel-booking-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AdminUsername = strings.TrimSpace(v.GetString("ADMIN_USERNAME"))
	cfg.AdminPassword = v.GetString("ADMIN_PASSWORD")
	if (cfg.AdminUsername == "") != (cfg.AdminPassword == "") {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}

	cfg.DefaultCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CURRENCY")))
	if len(cfg.DefaultCurrency) != 3 {
		return nil, fmt.Errorf("DEFAULT_CURRENCY must be a 3 letter code, got %q", cfg.DefaultCurrency)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.CacheEnabled = v.GetBool("CACHE_ENABLED")
	cacheTTLStr := v.GetString("CACHE_TTL")
	cfg.CacheTTL, err = time.ParseDuration(cacheTTLStr)
	if err != nil || cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
		log.Printf("Warning: Invalid value for CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cfg.CacheTTL.String())
	}
	cfg.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.RedisPassword = v.GetString("REDIS_PASSWORD")
	cfg.RedisDB = v.GetInt("REDIS_DB")

	cfg.RabbitMQURL = v.GetString("RABBITMQ_URL")
	cfg.BookingEventsQueue = v.GetString("BOOKING_EVENTS_QUEUE")
	if cfg.RabbitMQURL == "" {
		log.Println("Warning: RABBITMQ_URL not set. Booking events will not be published.")
	}
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	cfg.SearchWindowDays = v.GetInt("SEARCH_WINDOW_DAYS")
	if cfg.SearchWindowDays <= 0 {
		return nil, fmt.Errorf("SEARCH_WINDOW_DAYS must be positive, got %d", cfg.SearchWindowDays)
	}
	cfg.MaxGuests = v.GetInt("MAX_GUESTS")
	cfg.PeakMonths = v.GetString("PEAK_MONTHS")
	cfg.MultiplierSingle = v.GetString("MULTIPLIER_SINGLE")
	cfg.MultiplierDoubleOneGuest = v.GetString("MULTIPLIER_DOUBLE_ONE_GUEST")
	cfg.MultiplierDoubleTwoGuest = v.GetString("MULTIPLIER_DOUBLE_TWO_GUESTS")
	cfg.MultiplierFamily = v.GetString("MULTIPLIER_FAMILY")
	cfg.DoubleRoomGuestThreshold = v.GetInt("DOUBLE_ROOM_GUEST_THRESHOLD")
	cfg.DiscountTiers = v.GetString("DISCOUNT_TIERS")
	cfg.CancellationTiers = v.GetString("CANCELLATION_TIERS")

	// fail at startup rather than on the first quote
	if _, err := cfg.PricingPolicy(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PricingPolicy builds the pricing policy from the configured tables.
func (c *Config) PricingPolicy() (pricing.Policy, error) {
	peak, err := pricing.ParsePeakMonths(c.PeakMonths)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("PEAK_MONTHS: %w", err)
	}
	discounts, err := pricing.ParseDiscountTiers(c.DiscountTiers)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("DISCOUNT_TIERS: %w", err)
	}
	cancellations, err := pricing.ParseCancellationTiers(c.CancellationTiers)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("CANCELLATION_TIERS: %w", err)
	}

	multipliers := pricing.Multipliers{DoubleGuestThreshold: c.DoubleRoomGuestThreshold}
	for _, m := range []struct {
		name   string
		value  string
		target *decimal.Decimal
	}{
		{"MULTIPLIER_SINGLE", c.MultiplierSingle, &multipliers.Single},
		{"MULTIPLIER_DOUBLE_ONE_GUEST", c.MultiplierDoubleOneGuest, &multipliers.DoubleOneGuest},
		{"MULTIPLIER_DOUBLE_TWO_GUESTS", c.MultiplierDoubleTwoGuest, &multipliers.DoubleTwoGuests},
		{"MULTIPLIER_FAMILY", c.MultiplierFamily, &multipliers.Family},
	} {
		d, err := decimal.NewFromString(strings.TrimSpace(m.value))
		if err != nil {
			return pricing.Policy{}, fmt.Errorf("%s: invalid multiplier %q: %w", m.name, m.value, err)
		}
		*m.target = d
	}

	policy := pricing.Policy{
		PeakMonths:        peak,
		Multipliers:       multipliers,
		DiscountTiers:     discounts,
		CancellationTiers: cancellations,
		MaxGuests:         c.MaxGuests,
	}
	if err := policy.Validate(); err != nil {
		return pricing.Policy{}, err
	}
	return policy, nil
}

package services

import (
	"github.com/SscSPs/hotel_booking_app/internal/core/ports"
	"github.com/SscSPs/hotel_booking_app/internal/core/pricing"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	calculator *pricing.Calculator,
	publisher ports.BookingEventPublisher,
	options ...ServiceOption,
) *portssvc.ServiceContainer {
	rules := StayRules{
		SearchWindowDays: cfg.SearchWindowDays,
		DefaultCurrency:  cfg.DefaultCurrency,
	}

	container := &portssvc.ServiceContainer{}

	// Reference data first since the other services resolve ids through it
	container.Reference = NewReferenceService(repos.CurrencyRepo, repos.LocationRepo, repos.InventoryRepo, options...)
	container.Search = NewSearchService(container.Reference, repos.InventoryRepo, calculator, rules, options...)
	container.Booking = NewBookingService(container.Reference, repos.InventoryRepo, repos.BookingRepo, calculator, publisher, rules, options...)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.BookingRepo, repos.InventoryRepo, container.Reference, options...)
	container.Admin = NewAdminService(repos.CurrencyRepo, repos.LocationRepo, repos.InventoryRepo, calculator.Policy(), options...)
	container.Auth = NewAuthService(repos.UserRepo, TokenSettings{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiryDuration,
		Issuer: cfg.JWTIssuer,
	}, options...)

	return container
}

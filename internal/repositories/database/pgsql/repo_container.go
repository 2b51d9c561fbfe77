package pgsql

import (
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:  newPgxCurrencyRepository(dbPool),
		LocationRepo:  newPgxLocationRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		BookingRepo:   newPgxBookingRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}

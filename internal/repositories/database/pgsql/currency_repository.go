package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	"github.com/SscSPs/hotel_booking_app/internal/models"
	"github.com/SscSPs/hotel_booking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxCurrencyRepository reads the seeded currencies table and updates their rates.
type PgxCurrencyRepository struct {
	BaseRepository
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// column names match the db tags on models.Currency
const currencyColumns = `currency_code, name, symbol, conversion_rate`

// FindCurrencyByCode retrieves a currency by its 3-letter code, ignoring case.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	rows, err := r.Pool.Query(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE currency_code = $1;`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency %s: %w", code, err)
	}

	modelCurr, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("currency %s: %w", code, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan currency %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY currency_code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}

	modelCurrencies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// UpdateConversionRate sets a currency's rate against the base currency.
func (r *PgxCurrencyRepository) UpdateConversionRate(ctx context.Context, currencyCode string, rate decimal.Decimal) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	rows, err := r.Pool.Query(ctx,
		`UPDATE currencies SET conversion_rate = $2 WHERE currency_code = $1 RETURNING `+currencyColumns+`;`,
		code, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", code, err)
	}

	modelCurr, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("currency %s: %w", code, apperrors.ErrNotFound)
		}
		if mapped := constraintError(err, "rate of currency "+code, nil); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update currency %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapReserveError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"exclusion violation", &pgconn.PgError{Code: pgExclusionViolation}, apperrors.ErrRoomUnavailable},
		{"serialization failure", fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgSerializationFailure}), apperrors.ErrRoomUnavailable},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrValidation},
		{"check violation", &pgconn.PgError{Code: pgCheckViolation}, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapReserveError(tt.err), tt.expected)
		})
	}

	other := mapReserveError(errors.New("connection reset"))
	assert.NotErrorIs(t, other, apperrors.ErrRoomUnavailable)
	assert.NotErrorIs(t, other, apperrors.ErrValidation)
	// lost races are conflicts at the outer level too
	assert.ErrorIs(t, mapReserveError(&pgconn.PgError{Code: pgExclusionViolation}), apperrors.ErrConflict)
}

func TestPgErrorCode(t *testing.T) {
	assert.Equal(t, pgUniqueViolation, pgErrorCode(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgUniqueViolation})))
	assert.Equal(t, "", pgErrorCode(errors.New("plain")))
}

func TestConstraintError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		onForeignKey error
		expected     error
	}{
		{"unique", &pgconn.PgError{Code: pgUniqueViolation}, nil, apperrors.ErrDuplicate},
		{"check", fmt.Errorf("scan: %w", &pgconn.PgError{Code: pgCheckViolation}), nil, apperrors.ErrValidation},
		{"referenced row missing", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrNotFound, apperrors.ErrNotFound},
		{"row still referenced", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrConflict, apperrors.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, constraintError(tt.err, "room 7", tt.onForeignKey), tt.expected)
		})
	}

	assert.Nil(t, constraintError(&pgconn.PgError{Code: pgForeignKeyViolation}, "room 7", nil))
	assert.Nil(t, constraintError(errors.New("connection reset"), "room 7", apperrors.ErrConflict))
}

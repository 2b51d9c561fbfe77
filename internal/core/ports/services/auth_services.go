package services

import (
	"context"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
)

// AuthSvcFacade registers users and issues access tokens.
type AuthSvcFacade interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login checks credentials and returns a signed token and its expiry.
	Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error)

	// EnsureAdmin creates the admin user if the username is free.
	// The bool reports whether a user was created.
	EnsureAdmin(ctx context.Context, username, password string) (*domain.User, bool, error)

	// UpdateAccount changes the user's username and/or password.
	UpdateAccount(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error)
}

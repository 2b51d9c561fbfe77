package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hotel_booking_app/internal/apperrors"
	"github.com/SscSPs/hotel_booking_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hotel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hotel_booking_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_booking_app/internal/dto"
	"github.com/SscSPs/hotel_booking_app/internal/utils"
	"github.com/google/uuid"
)

// TokenSettings configure the access tokens issued on login.
type TokenSettings struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// authService registers users and exchanges credentials for access tokens.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   TokenSettings
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens TokenSettings, options ...ServiceOption) portssvc.AuthSvcFacade {
	svc := &authService{userRepo: userRepo, tokens: tokens}
	svc.apply(options)
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a regular (non-admin) user.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || len(username) > 20 {
		return nil, fmt.Errorf("%w: username must be 1 to 20 characters", apperrors.ErrValidation)
	}

	user, err := s.createUser(ctx, username, req.Password, false)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return user, nil
}

// EnsureAdmin creates the admin account unless a user with that name already exists.
// The existing user is returned untouched, admin or not.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) (*domain.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, false, fmt.Errorf("%w: admin username and password are required", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		if !existing.Admin {
			s.LogInfo(ctx, "Configured admin username belongs to a regular user", slog.String("user_id", existing.UserID))
		}
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up admin user: %w", err)
	}

	user, err := s.createUser(ctx, username, password, true)
	if err != nil {
		return nil, false, err
	}
	s.LogInfo(ctx, "Admin user created", slog.String("user_id", user.UserID))
	return user, true, nil
}

func (s *authService) createUser(ctx context.Context, username, password string, admin bool) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Admin:        admin,
		AuditFields:  domain.NewAuditFields(now),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username %q: %w", username, err)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return &user, nil
}

// Login checks the password and returns a signed access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return "", time.Time{}, fmt.Errorf("failed to find user: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	now := s.Now()
	token, err := utils.GenerateJWT(user.UserID, user.Admin, s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, now.Add(s.tokens.Expiry), nil
}

// UpdateAccount changes the user's username, password or both. A request
// that changes nothing returns the user as stored.
func (s *authService) UpdateAccount(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" && req.Password == "" {
		return nil, apperrors.NewValidationError("give a new username or password")
	}
	if len(username) > 20 {
		return nil, fmt.Errorf("%w: username must be 1 to 20 characters", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}

	usernameChanged := username != "" && username != user.Username
	if usernameChanged {
		user.Username = username
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if !usernameChanged && req.Password == "" {
		return user, nil
	}

	user.LastUpdatedAt = s.Now().UTC()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username %q: %w", user.Username, err)
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, err)
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update account in service: %w", err)
	}

	s.LogInfo(ctx, "Account updated",
		slog.String("user_id", userID),
		slog.Bool("username_changed", usernameChanged),
		slog.Bool("password_changed", req.Password != ""))
	return user, nil
}

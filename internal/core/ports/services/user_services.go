package services

import (
	"context"
	"time"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	"github.com/spendtrack/expense_tracker_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new local user.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateOAuthUser finds or creates a user backed by an external identity
	// provider.
	CreateOAuthUser(ctx context.Context, name, username string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// UpdateRefreshToken records the hash and expiry of the user's active
	// refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken invalidates the user's refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser verifies username/password credentials. Failures are
	// reported as apperrors.ErrUnauthorized regardless of whether the user
	// exists.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

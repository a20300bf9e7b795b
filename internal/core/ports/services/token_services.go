package services

import (
	"context"
	"time"

	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
)

// TokenSvcFacade issues and validates the application's own tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (token string, expiresAt time.Time, err error)

	// GenerateRefreshToken creates a long-lived opaque refresh token and
	// persists its hash against the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (token string, expiresAt time.Time, err error)

	// ValidateRefreshToken checks a raw refresh token against the stored
	// hash and expiry of the given user.
	ValidateRefreshToken(ctx context.Context, user *domain.User, rawToken string) error
}

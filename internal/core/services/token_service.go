package services

import (
	"context"
	"fmt"
	"time"

	"github.com/spendtrack/expense_tracker_app/internal/apperrors"
	"github.com/spendtrack/expense_tracker_app/internal/core/domain"
	portssvc "github.com/spendtrack/expense_tracker_app/internal/core/ports/services"
	"github.com/spendtrack/expense_tracker_app/internal/platform/config"
	"github.com/spendtrack/expense_tracker_app/internal/utils"
)

// tokenService issues JWT access tokens and opaque refresh tokens. Refresh
// tokens are stored hashed; only the SHA256 digest ever reaches the database.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userService: userService}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiresAt, nil
}

func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(rawToken), expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return rawToken, expiresAt, nil
}

func (s *tokenService) ValidateRefreshToken(ctx context.Context, user *domain.User, rawToken string) error {
	if user.RefreshTokenHash == nil || user.RefreshTokenExpiry == nil {
		return apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiry) {
		return apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(rawToken, *user.RefreshTokenHash) {
		return apperrors.ErrUnauthorized
	}
	return nil
}

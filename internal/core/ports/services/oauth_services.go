package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthSvcFacade wraps the Google side of the OAuth code-exchange flow.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken trades a frontend-supplied authorization code for
	// Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the signature and audience of a Google
	// ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}

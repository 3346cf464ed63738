package ports

import (
	"context"
	"time"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
)

// AuthService verifies credentials and manages session tokens.
type AuthService interface {
	// Login exchanges email+password for a signed session token. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials so
	// callers cannot enumerate accounts.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token with the given ID until it would have expired.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// TokenRevoker tracks revoked token IDs (jti) until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository stores refresh tokens by hash so a leaked table does
// not leak usable tokens.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session SessionTrackingRequest) error
	// IsRefreshTokenRevoked returns the owner of token and whether it can no
	// longer be used. Unknown tokens return ErrInvalidToken.
	IsRefreshTokenRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
	// DeleteStaleRefreshTokens removes tokens that expired or were revoked
	// before cutoff and reports how many were removed.
	DeleteStaleRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

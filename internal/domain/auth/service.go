package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	// LoginWithGoogle signs in a verified Google account, creating the user
	// and its board member on first sign-in.
	LoginWithGoogle(ctx context.Context, profile GoogleProfile, session SessionTrackingRequest) (TokenResponse, error)
	// RefreshToken rotates a refresh token: the presented one is revoked and
	// a new pair is issued.
	RefreshToken(ctx context.Context, req RefreshTokenRequest, session SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

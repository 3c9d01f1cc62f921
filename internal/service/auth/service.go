package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx database.Transactor
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	auth.RefreshTokenRepository
}

func NewAuthService(tx database.Transactor, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, refreshTokenRepository auth.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		tx:                     tx,
		UserRepository:         userRepository,
		EmployeeRepository:     employeeRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, strings.TrimSpace(loginReq.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Google-only accounts have no password to compare against
	if !userData.HasPassword() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, sessionTrackReq)
}

// LoginWithGoogle implements auth.AuthService. The user, its board member
// and the refresh token are written in one transaction.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, profile auth.GoogleProfile, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	profile.Email = strings.TrimSpace(profile.Email)

	var tokenResponse auth.TokenResponse
	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		userData, err := a.googleUser(txCtx, profile)
		if err != nil {
			return err
		}
		if err := a.ensureEmployee(txCtx, userData, profile); err != nil {
			return err
		}
		tokenResponse, err = a.generateTokens(txCtx, userData, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return tokenResponse, nil
}

// googleUser finds the account for profile, creating it or linking an
// existing password account to Google.
func (a *AuthServiceImpl) googleUser(ctx context.Context, profile auth.GoogleProfile) (user.User, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, profile.Email)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		provider := "google"
		userData, err = a.UserRepository.Create(ctx, user.User{
			Email:           profile.Email,
			OAuthProvider:   &provider,
			OAuthProviderID: &profile.GoogleID,
			EmailVerified:   true,
		})
		if err != nil {
			return user.User{}, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return user.User{}, fmt.Errorf("failed to get user data by email: %w", err)
	case !userData.IsLinkedToGoogle():
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, profile.GoogleID, userData.Email)
		if err != nil {
			return user.User{}, err
		}
	}
	return userData, nil
}

// ensureEmployee puts a signed-in account on the board if it has no member yet.
func (a *AuthServiceImpl) ensureEmployee(ctx context.Context, userData user.User, profile auth.GoogleProfile) error {
	_, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return fmt.Errorf("failed to get employee for user: %w", err)
	}

	email := userData.Email
	newEmployee := employee.Employee{
		UserID:   &userData.ID,
		FullName: displayName(profile.Name, email),
		Email:    &email,
	}
	if avatar := strings.TrimSpace(profile.AvatarURL); avatar != "" {
		newEmployee.AvatarURL = &avatar
	}
	if _, err := a.EmployeeRepository.Create(ctx, newEmployee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// displayName falls back to the local part of the email.
func displayName(name, email string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		return local
	}
	return email
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != jwt.TokenTypeRefresh {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry
	userID, isRevoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return auth.TokenResponse{}, err
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if isRevoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Get user
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	// 5. Rotate: revoke the presented token and issue a new pair
	var tokenResponse auth.TokenResponse
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := a.RevokeRefreshToken(txCtx, req.RefreshToken); err != nil {
			return err
		}
		tokenResponse, err = a.generateTokens(txCtx, userData, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, isRevoked, err := a.IsRefreshTokenRevoked(txCtx, token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				return nil
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.RevokeRefreshToken(txCtx, token); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		tokenResponse, err = a.generateTokens(txCtx, userData, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return tokenResponse, nil
}

// generateTokens mints an access/refresh pair and stores the refresh token.
// The access token carries the employee id when the account is linked to one.
func (a *AuthServiceImpl) generateTokens(ctx context.Context, userData user.User, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var (
		tokenResponse auth.TokenResponse
		employeeID    *string
		err           error
	)

	emp, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
	switch {
	case err == nil:
		employeeID = &emp.ID
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee for user: %w", err)
	}

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.GenerateAccessToken(userData.ID, userData.Email, employeeID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.CreateRefreshToken(ctx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}

	return tokenResponse, nil
}

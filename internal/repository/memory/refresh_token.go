package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/utils"
)

type refreshTokenRecord struct {
	userID    string
	expiresAt time.Time
	revokedAt *time.Time
}

type refreshTokenRepositoryImpl struct {
	mu     sync.Mutex
	tokens map[string]refreshTokenRecord
}

func NewRefreshTokenRepository() auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{tokens: make(map[string]refreshTokenRecord)}
}

func (r *refreshTokenRepositoryImpl) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[utils.HashToken(token)] = refreshTokenRecord{
		userID:    userID,
		expiresAt: time.Unix(expiresAt, 0),
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.tokens[utils.HashToken(token)]
	if !ok {
		return "", false, auth.ErrInvalidToken
	}
	if rec.revokedAt != nil || !rec.expiresAt.After(time.Now()) {
		return rec.userID, true, nil
	}
	return rec.userID, false, nil
}

func (r *refreshTokenRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hash := utils.HashToken(token)
	rec, ok := r.tokens[hash]
	if !ok || rec.revokedAt != nil {
		return nil
	}
	now := time.Now()
	rec.revokedAt = &now
	r.tokens[hash] = rec
	return nil
}

func (r *refreshTokenRepositoryImpl) DeleteStaleRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for hash, rec := range r.tokens {
		if rec.expiresAt.Before(cutoff) || (rec.revokedAt != nil && rec.revokedAt.Before(cutoff)) {
			delete(r.tokens, hash)
			deleted++
		}
	}
	return deleted, nil
}

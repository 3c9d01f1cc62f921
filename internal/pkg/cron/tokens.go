package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
)

const (
	RefreshTokenPurgeInterval = 6 * time.Hour
	// RefreshTokenRetention keeps dead tokens around for a day so a replayed
	// token still reads as revoked rather than unknown.
	RefreshTokenRetention = 24 * time.Hour
)

// TokenJobs contains refresh-token housekeeping jobs
type TokenJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
	clock            clock.Clock
}

func NewTokenJobs(refreshTokenRepo auth.RefreshTokenRepository, clk clock.Clock) *TokenJobs {
	return &TokenJobs{refreshTokenRepo: refreshTokenRepo, clock: clk}
}

// RegisterJobs registers all token-related cron jobs
func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_refresh_tokens", RefreshTokenPurgeInterval, j.PurgeRefreshTokens)
}

// PurgeRefreshTokens deletes tokens that expired or were revoked more than
// RefreshTokenRetention ago.
func (j *TokenJobs) PurgeRefreshTokens(ctx context.Context) error {
	cutoff := j.clock.Now().Add(-RefreshTokenRetention)
	deleted, err := j.refreshTokenRepo.DeleteStaleRefreshTokens(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		slog.Info("Purged stale refresh tokens", "count", deleted)
	}
	return nil
}

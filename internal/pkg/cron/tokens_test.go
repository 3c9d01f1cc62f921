package cron

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenJobs_PurgeRefreshTokens(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRefreshTokenRepository()
	now := time.Now()
	session := auth.SessionTrackingRequest{}

	require.NoError(t, repo.CreateRefreshToken(ctx, "user-1", "long-dead", now.Add(-72*time.Hour).Unix(), session))
	require.NoError(t, repo.CreateRefreshToken(ctx, "user-1", "just-expired", now.Add(-time.Hour).Unix(), session))
	require.NoError(t, repo.CreateRefreshToken(ctx, "user-1", "live", now.Add(time.Hour).Unix(), session))

	jobs := NewTokenJobs(repo, clock.Fixed(now))
	require.NoError(t, jobs.PurgeRefreshTokens(ctx))

	_, _, err := repo.IsRefreshTokenRevoked(ctx, "long-dead")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, revoked, err := repo.IsRefreshTokenRevoked(ctx, "just-expired")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, revoked, err = repo.IsRefreshTokenRevoked(ctx, "live")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenJobs_RegisterJobs(t *testing.T) {
	s := NewScheduler()
	NewTokenJobs(memory.NewRefreshTokenRepository(), clock.Fixed(time.Now())).RegisterJobs(s)

	require.Len(t, s.jobs, 1)
	assert.Equal(t, "purge_refresh_tokens", s.jobs[0].Name)
	assert.Equal(t, RefreshTokenPurgeInterval, s.jobs[0].Interval)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_WeeksFollowLeagueConfiguration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 0)

	weeks, err := env.schedules.ListWeeks(ctx, fx.leagueID)
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	assert.Equal(t, time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC), weeks[3].Date)

	_, err = env.leagues.UpdateLeague(ctx, fx.leagueID, LeagueInput{NumberOfWeeks: intPtr(6)})
	require.NoError(t, err)

	weeks, err = env.schedules.ListWeeks(ctx, fx.leagueID)
	require.NoError(t, err)
	require.Len(t, weeks, 6)
	assert.Equal(t, 6, weeks[5].Number)
	assert.Equal(t, time.Date(2026, 10, 6, 0, 0, 0, 0, time.UTC), weeks[5].Date)

	_, err = env.leagues.UpdateLeague(ctx, fx.leagueID, LeagueInput{NumberOfWeeks: intPtr(2)})
	require.NoError(t, err)

	weeks, err = env.schedules.ListWeeks(ctx, fx.leagueID)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
}

func TestScheduleService_RescheduleWeekKeepsOthers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 0)

	moved, err := env.schedules.RescheduleWeek(ctx, fx.leagueID, 2, time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), moved.Date)

	third, err := env.schedules.GetWeek(ctx, fx.leagueID, 3)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), third.Date)
}

func TestScheduleService_DeleteWeekIsRegeneratedOnNextSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 0)

	require.NoError(t, env.schedules.DeleteWeek(ctx, fx.leagueID, 2))

	_, err := env.schedules.GetWeek(ctx, fx.leagueID, 2)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = env.leagues.UpdateLeague(ctx, fx.leagueID, LeagueInput{Name: strPtr("Renamed")})
	require.NoError(t, err)

	weeks, err := env.schedules.ListWeeks(ctx, fx.leagueID)
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	assert.Equal(t, 5, weeks[3].Number)
}

func TestScheduleService_ShrinkAfterDeletedWeekKeepsConfiguredCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 0)

	require.NoError(t, env.schedules.DeleteWeek(ctx, fx.leagueID, 2))

	_, err := env.leagues.UpdateLeague(ctx, fx.leagueID, LeagueInput{NumberOfWeeks: intPtr(2)})
	require.NoError(t, err)

	weeks, err := env.schedules.ListWeeks(ctx, fx.leagueID)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, 1, weeks[0].Number)
	assert.Equal(t, 3, weeks[1].Number)
}

func TestScheduleService_GetWeekRejectsBadNumber(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_, err := env.schedules.GetWeek(context.Background(), "any", 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

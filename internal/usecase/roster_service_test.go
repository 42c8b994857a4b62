package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLeagueInput() LeagueInput {
	return LeagueInput{
		Name:           strPtr("Tuesday Mixed"),
		StartDate:      timePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		NumberOfWeeks:  intPtr(4),
		PlayersPerTeam: intPtr(3),
	}
}

func TestRosterService_BowlerDetailsCarryHandicap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 2, "Strikers")

	bowlers, err := env.rosters.ListBowlers(ctx, fx.leagueID, fx.teams[0])
	require.NoError(t, err)
	require.Len(t, bowlers, 2)

	// (210 - 150) * 90%
	require.NotNil(t, bowlers[0].Handicap)
	assert.Equal(t, 54, *bowlers[0].Handicap)
	assert.Equal(t, 45, *bowlers[1].Handicap)
}

func TestRosterService_RemoveTeamMovesBowlerToSubstitutes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 2, "Strikers")
	bowlerID := fx.bowlers[fx.teams[0]][0]

	updated, err := env.rosters.UpdateBowler(ctx, fx.leagueID, fx.teams[0], bowlerID, BowlerPatch{RemoveTeam: true})
	require.NoError(t, err)
	assert.True(t, updated.IsSubstitute())

	subs, err := env.rosters.ListBowlers(ctx, fx.leagueID, "")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, bowlerID, subs[0].ID)

	// No longer reachable under the team.
	_, err = env.rosters.GetBowler(ctx, fx.leagueID, fx.teams[0], bowlerID)
	assert.True(t, errors.Is(err, ErrNotFound))

	got, err := env.rosters.GetBowler(ctx, fx.leagueID, "", bowlerID)
	require.NoError(t, err)
	assert.Equal(t, bowlerID, got.ID)
}

func TestRosterService_MoveBowlerRejectsTeamOfOtherLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	first := env.seedLeague(t, defaultLeagueInput(), 1, "Strikers")
	second := env.seedLeague(t, defaultLeagueInput(), 0, "Outsiders")

	_, err := env.rosters.UpdateBowler(ctx, first.leagueID, first.teams[0], first.bowlers[first.teams[0]][0], BowlerPatch{
		TeamID: strPtr(second.teams[0]),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "team is not a part of the current league")
}

func TestRosterService_CreateBowlerValidatesAverage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 0, "Strikers")

	_, err := env.rosters.CreateBowler(ctx, fx.leagueID, fx.teams[0], BowlerInput{Name: "Too Good", Average: intPtr(301)})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = env.rosters.CreateBowler(ctx, fx.leagueID, "missing-team", BowlerInput{Name: "Nobody"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRosterService_ClearAverageDropsHandicap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 1, "Strikers")

	updated, err := env.rosters.UpdateBowler(ctx, fx.leagueID, fx.teams[0], fx.bowlers[fx.teams[0]][0], BowlerPatch{
		Name:         strPtr("Renamed"),
		ClearAverage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Nil(t, updated.Average)
	assert.Nil(t, updated.Handicap)
}

func TestRosterService_DeleteTeamRemovesBowlers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 2, "Strikers")

	require.NoError(t, env.rosters.DeleteTeam(ctx, fx.leagueID, fx.teams[0]))

	_, err := env.rosters.GetBowler(ctx, fx.leagueID, fx.teams[0], fx.bowlers[fx.teams[0]][0])
	assert.True(t, errors.Is(err, ErrNotFound))

	err = env.rosters.DeleteTeam(ctx, fx.leagueID, fx.teams[0])
	assert.True(t, errors.Is(err, ErrNotFound))
}

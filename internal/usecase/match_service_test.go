package usecase

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchService_CreateMatchMaterializesRosters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 2, "Strikers", "Gutter Gang")

	created, err := env.matches.CreateMatch(ctx, fx.leagueID, 1, MatchInput{
		Team1ID: fx.teams[0],
		Team2ID: fx.teams[1],
		Lanes:   match.Lanes{3, 4},
	})
	require.NoError(t, err)

	got, err := env.matches.GetMatch(ctx, fx.leagueID, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, match.Lanes{3, 4}, got.Lanes)
	assert.Equal(t, "Strikers", got.Team1.Name)

	// Three slots per team: two regulars and one vacant pad, three empty games each.
	require.Len(t, got.Team1.Bowlers, 3)
	assert.Equal(t, match.BowlerTypeRegular, got.Team1.Bowlers[0].Type)
	assert.Equal(t, fx.bowlers[fx.teams[0]][0], got.Team1.Bowlers[0].DefinitionID)
	assert.Equal(t, match.BowlerTypeVacant, got.Team1.Bowlers[2].Type)
	for _, b := range got.Team2.Bowlers {
		require.Len(t, b.Games, 3)
		assert.Equal(t, 0, b.Total())
	}
}

func TestMatchService_CreateMatchRejections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 1, "Strikers", "Gutter Gang", "Pin Pals")
	other := env.seedLeague(t, defaultLeagueInput(), 0, "Outsiders")

	_, err := env.matches.CreateMatch(ctx, fx.leagueID, 1, MatchInput{Team1ID: fx.teams[0], Team2ID: fx.teams[1], Lanes: match.Lanes{1, 2}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   MatchInput
		kind    error
		message string
	}{
		{
			name:  "self play",
			input: MatchInput{Team1ID: fx.teams[2], Team2ID: fx.teams[2], Lanes: match.Lanes{5, 6}},
			kind:  match.ErrSelfPlay,
		},
		{
			name:  "lanes apart",
			input: MatchInput{Team1ID: fx.teams[2], Team2ID: fx.teams[1], Lanes: match.Lanes{5, 7}},
			kind:  match.ErrLanesNotAdjacent,
		},
		{
			name:    "double booked",
			input:   MatchInput{Team1ID: fx.teams[2], Team2ID: fx.teams[1], Lanes: match.Lanes{5, 6}},
			kind:    match.ErrDoubleBooked,
			message: "Gutter Gang already has a match the week of 2026-09-01",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.matches.CreateMatch(ctx, fx.leagueID, 1, tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.True(t, crerr.Is(err, tc.kind))
			if tc.message != "" {
				assert.Contains(t, err.Error(), tc.message)
			}
		})
	}

	_, err = env.matches.CreateMatch(ctx, fx.leagueID, 1, MatchInput{Team1ID: fx.teams[2], Team2ID: other.teams[0], Lanes: match.Lanes{5, 6}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "team 2 is not a part of the correct league")

	_, err = env.matches.CreateMatch(ctx, fx.leagueID, 99, MatchInput{Team1ID: fx.teams[2], Team2ID: fx.teams[1], Lanes: match.Lanes{5, 6}})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMatchService_ReassignDiscardsScores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 1, "Strikers", "Gutter Gang", "Pin Pals")

	created, err := env.matches.CreateMatch(ctx, fx.leagueID, 1, MatchInput{Team1ID: fx.teams[0], Team2ID: fx.teams[1], Lanes: match.Lanes{1, 2}})
	require.NoError(t, err)

	_, err = env.sheets.PatchScoreSheet(ctx, fx.leagueID, 1, created.ID, match.SheetPatch{
		Team1: &match.TeamPatch{Bowlers: []match.BowlerPatch{{
			ID:    created.Team1.Bowlers[0].ID,
			Games: []match.GamePatch{{Number: intPtr(1), Total: intPtr(180)}},
		}}},
	})
	require.NoError(t, err)

	// Reassigning the same match may keep one of its own teams.
	updated, err := env.matches.ReassignMatch(ctx, fx.leagueID, 1, created.ID, MatchInput{
		Team1ID: fx.teams[0],
		Team2ID: fx.teams[2],
		Lanes:   match.Lanes{7, 8},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := env.matches.GetMatch(ctx, fx.leagueID, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pin Pals", got.Team2.Name)
	assert.Equal(t, 0, got.Team1.Bowlers[0].Total())
	assert.NotEqual(t, created.Team1.Bowlers[0].ID, got.Team1.Bowlers[0].ID)
}

func TestMatchService_DeleteMatchScopedToWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 1, "Strikers", "Gutter Gang")

	created, err := env.matches.CreateMatch(ctx, fx.leagueID, 1, MatchInput{Team1ID: fx.teams[0], Team2ID: fx.teams[1], Lanes: match.Lanes{1, 2}})
	require.NoError(t, err)

	err = env.matches.DeleteMatch(ctx, fx.leagueID, 2, created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, env.matches.DeleteMatch(ctx, fx.leagueID, 1, created.ID))

	items, err := env.matches.ListMatches(ctx, fx.leagueID, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// staleWeekMatchRepository hides the week's matches from the pre-insert check,
// as a concurrent writer would, so only the store's own re-check can reject.
type staleWeekMatchRepository struct {
	*memory.MatchRepository
}

func (staleWeekMatchRepository) ListByWeek(context.Context, string) ([]match.Match, error) {
	return nil, nil
}

func TestMatchService_CreateMatchDoubleBookedInStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	fx := env.seedLeague(t, defaultLeagueInput(), 1, "Strikers", "Gutter Gang", "Pin Pals")

	_, err := env.matches.CreateMatch(ctx, fx.leagueID, 1, MatchInput{Team1ID: fx.teams[0], Team2ID: fx.teams[1], Lanes: match.Lanes{1, 2}})
	require.NoError(t, err)

	racing := *env.matches
	racing.matchRepo = staleWeekMatchRepository{MatchRepository: env.matchRepo}

	_, err = racing.CreateMatch(ctx, fx.leagueID, 1, MatchInput{Team1ID: fx.teams[2], Team2ID: fx.teams[1], Lanes: match.Lanes{3, 4}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, crerr.Is(err, match.ErrDoubleBooked))

	items, err := env.matches.ListMatches(ctx, fx.leagueID, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

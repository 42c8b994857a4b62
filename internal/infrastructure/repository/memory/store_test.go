package memory

import (
	"context"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
	"github.com/riskibarqy/bowling-league/internal/domain/score"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	SeedDemo(store, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	return store
}

func demoMatch(t *testing.T, store *Store) match.Match {
	t.Helper()

	bowler := func(id, definitionID string) match.Bowler {
		return match.Bowler{
			ID:           id,
			DefinitionID: definitionID,
			Type:         match.BowlerTypeRegular,
			Games:        []score.Game{{ID: id + "-g1", BowlerID: id, Number: 1}},
		}
	}

	item := match.Match{
		ID:       "m-1",
		LeagueID: DemoLeagueID,
		WeekID:   "demo-week-01",
		Lanes:    match.Lanes{1, 2},
		Team1: match.TeamInstance{
			ID: "ti-1", MatchID: "m-1", Slot: match.SlotTeam1, DefinitionID: "demo-team-strikers",
			Bowlers: []match.Bowler{bowler("b-1", "demo-bowler-01")},
		},
		Team2: match.TeamInstance{
			ID: "ti-2", MatchID: "m-1", Slot: match.SlotTeam2, DefinitionID: "demo-team-gutter-gang",
			Bowlers: []match.Bowler{bowler("b-2", "demo-bowler-05")},
		},
	}
	require.NoError(t, NewMatchRepository(store).Create(context.Background(), item))
	return item
}

func TestSeedDemoGeneratesWeeks(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	weeks, err := NewWeekRepository(store).ListByLeague(context.Background(), DemoLeagueID)
	require.NoError(t, err)
	require.Len(t, weeks, 4)
	require.Equal(t, 1, weeks[0].Number)
	require.Equal(t, weeks[0].Date.AddDate(0, 0, 21), weeks[3].Date)
}

func TestWeekRepositoryApplyShrinksAndCascades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seededStore(t)
	demoMatch(t, store)

	weekRepo := NewWeekRepository(store)
	require.NoError(t, weekRepo.Apply(ctx, DemoLeagueID, schedule.Plan{Delete: true, DeleteAfter: 0}))

	weeks, err := weekRepo.ListByLeague(ctx, DemoLeagueID)
	require.NoError(t, err)
	require.Empty(t, weeks)

	_, exists, err := NewMatchRepository(store).GetByID(ctx, "m-1")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestWeekRepositoryApplyRejectsDuplicateNumber(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	plan := schedule.Plan{Create: []schedule.Week{{ID: "w-x", LeagueID: DemoLeagueID, Number: 2, Date: time.Now()}}}
	require.Error(t, NewWeekRepository(store).Apply(context.Background(), DemoLeagueID, plan))
}

func TestLeagueDeleteCascades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seededStore(t)
	demoMatch(t, store)

	deleted, err := NewLeagueRepository(store).Delete(ctx, DemoLeagueID)
	require.NoError(t, err)
	require.True(t, deleted)

	require.Empty(t, store.weeks)
	require.Empty(t, store.teams)
	require.Empty(t, store.bowlers)
	require.Empty(t, store.matches)
}

func TestBowlerDeleteDetachesSnapshots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seededStore(t)
	demoMatch(t, store)

	deleted, err := NewBowlerRepository(store).Delete(ctx, DemoLeagueID, "demo-bowler-01")
	require.NoError(t, err)
	require.True(t, deleted)

	item, exists, err := NewMatchRepository(store).GetByID(ctx, "m-1")
	require.NoError(t, err)
	require.True(t, exists)
	require.Empty(t, item.Team1.Bowlers[0].DefinitionID)
	require.Equal(t, "demo-bowler-05", item.Team2.Bowlers[0].DefinitionID)
}

func TestMatchRepositorySaveScoreSheet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seededStore(t)
	demoMatch(t, store)
	repo := NewMatchRepository(store)

	lanes := match.Lanes{5, 6}
	err := repo.SaveScoreSheet(ctx, "m-1", match.SheetChanges{
		Lanes: &lanes,
		Bowlers: []match.Bowler{{
			ID: "b-2", DefinitionID: "demo-bowler-08", Name: "Hal Backup", Type: match.BowlerTypeSubstitute,
		}},
		Games: []match.GameChange{{
			GameID: "b-2-g1", BowlerID: "b-2", Number: 1, Total: 9,
			Frames: []score.Frame{{Number: 1, Throws: []score.Throw{
				{Type: score.ThrowTypeThrow, Value: 7},
				{Type: score.ThrowTypeSplit, Value: 2},
			}}},
		}},
	})
	require.NoError(t, err)

	item, _, err := repo.GetByID(ctx, "m-1")
	require.NoError(t, err)
	require.Equal(t, lanes, item.Lanes)

	slot := item.Team2.Bowlers[0]
	require.Equal(t, match.BowlerTypeSubstitute, slot.Type)
	require.Equal(t, "demo-bowler-08", slot.DefinitionID)
	require.Len(t, slot.Games, 1)
	require.Equal(t, 9, slot.Total())
	require.Equal(t, []int{1}, slot.Games[0].Splits())

	shallow, err := repo.ListByWeek(ctx, "demo-week-01")
	require.NoError(t, err)
	require.Len(t, shallow, 1)
	require.Nil(t, shallow[0].Team2.Bowlers[0].Games)
}

func TestMatchRepositorySaveScoreSheetUnknownGameLeavesSheet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seededStore(t)
	demoMatch(t, store)
	repo := NewMatchRepository(store)

	lanes := match.Lanes{7, 8}
	err := repo.SaveScoreSheet(ctx, "m-1", match.SheetChanges{
		Lanes: &lanes,
		Games: []match.GameChange{{GameID: "missing", BowlerID: "b-1", Number: 1, Total: 10}},
	})
	require.Error(t, err)

	item, _, err := repo.GetByID(ctx, "m-1")
	require.NoError(t, err)
	require.Equal(t, match.Lanes{1, 2}, item.Lanes)
}

func TestMatchRepositoryRejectsDoubleBookedTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := seededStore(t)
	booked := demoMatch(t, store)
	repo := NewMatchRepository(store)

	second := match.Match{
		ID:       "m-2",
		LeagueID: DemoLeagueID,
		WeekID:   booked.WeekID,
		Lanes:    match.Lanes{3, 4},
		Team1:    match.TeamInstance{ID: "ti-3", MatchID: "m-2", Slot: match.SlotTeam1, DefinitionID: "demo-team-strikers", Name: "Strikers"},
		Team2:    match.TeamInstance{ID: "ti-4", MatchID: "m-2", Slot: match.SlotTeam2, DefinitionID: "demo-team-other", Name: "Others"},
	}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	require.True(t, crerr.Is(err, match.ErrDoubleBooked))

	_, exists, err := repo.GetByID(ctx, "m-2")
	require.NoError(t, err)
	require.False(t, exists)

	// Reassigning the booked match onto its own teams is not a conflict.
	booked.Team1, booked.Team2 = booked.Team2, booked.Team1
	require.NoError(t, repo.ReplaceTeams(ctx, booked))
}

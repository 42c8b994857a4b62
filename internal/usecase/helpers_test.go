package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/user"
	"github.com/riskibarqy/bowling-league/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type sequenceIDGenerator struct {
	prefix string
	next   atomic.Int64
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1)), nil
}

type testEnv struct {
	leagues    *LeagueService
	rosters    *RosterService
	schedules  *ScheduleService
	matches    *MatchService
	sheets     *ScoreSheetService
	standings  *StandingService
	matchRepo  *memory.MatchRepository
	principal  user.Principal
	fixedClock time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	leagueRepo := memory.NewLeagueRepository(store)
	weekRepo := memory.NewWeekRepository(store)
	teamRepo := memory.NewTeamRepository(store)
	bowlerRepo := memory.NewBowlerRepository(store)
	matchRepo := memory.NewMatchRepository(store)
	ids := &sequenceIDGenerator{prefix: "id"}

	clock := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	env := &testEnv{
		leagues:    NewLeagueService(leagueRepo, weekRepo, ids),
		rosters:    NewRosterService(leagueRepo, teamRepo, bowlerRepo, ids),
		schedules:  NewScheduleService(leagueRepo, weekRepo),
		matches:    NewMatchService(leagueRepo, weekRepo, teamRepo, bowlerRepo, matchRepo, ids),
		sheets:     NewScoreSheetService(leagueRepo, weekRepo, bowlerRepo, matchRepo),
		standings:  NewStandingService(leagueRepo, teamRepo, matchRepo, 2),
		matchRepo:  matchRepo,
		principal:  user.Principal{UserID: "secretary-1", Email: "secretary@example.com"},
		fixedClock: clock,
	}
	env.leagues.now = now
	env.rosters.now = now
	env.matches.now = now
	env.sheets.now = now

	return env
}

type leagueFixture struct {
	leagueID string
	teams    []string
	bowlers  map[string][]string
}

// seedLeague creates a league with the given team names, each with bowlersPerTeam averaged bowlers.
func (e *testEnv) seedLeague(t *testing.T, input LeagueInput, bowlersPerTeam int, teamNames ...string) leagueFixture {
	t.Helper()
	ctx := context.Background()

	item, err := e.leagues.CreateLeague(ctx, e.principal, input)
	if err != nil {
		t.Fatalf("create league: %v", err)
	}

	out := leagueFixture{leagueID: item.ID, bowlers: make(map[string][]string)}
	for _, name := range teamNames {
		team, err := e.rosters.CreateTeam(ctx, item.ID, name)
		if err != nil {
			t.Fatalf("create team %s: %v", name, err)
		}
		out.teams = append(out.teams, team.ID)

		for i := 0; i < bowlersPerTeam; i++ {
			average := 150 + i*10
			bowler, err := e.rosters.CreateBowler(ctx, item.ID, team.ID, BowlerInput{
				Name:    fmt.Sprintf("%s bowler %d", name, i+1),
				Average: &average,
			})
			if err != nil {
				t.Fatalf("create bowler: %v", err)
			}
			out.bowlers[team.ID] = append(out.bowlers[team.ID], bowler.ID)
		}
	}

	return out
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

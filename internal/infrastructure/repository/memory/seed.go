package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
)

const (
	DemoLeagueID    = "demo-league"
	DemoSecretaryID = "demo-secretary"
)

// SeedDemo loads a small league into the store for local development.
func SeedDemo(store *Store, now time.Time) {
	item := league.League{
		ID:              DemoLeagueID,
		SecretaryID:     DemoSecretaryID,
		Name:            "Tuesday Night Mixed",
		StartDate:       schedule.DateOnly(now),
		NumberOfWeeks:   4,
		PointsPerGame:   league.DefaultPointsPerGame,
		PointsForTotals: league.DefaultPointsForTotals,
		CreatedAt:       now,
		UpdatedAt:       now,
	}.WithDefaults()
	item.PlayersPerTeam = 4

	teams := []roster.TeamDefinition{
		{ID: "demo-team-strikers", LeagueID: DemoLeagueID, Name: "Strikers", CreatedAt: now, UpdatedAt: now},
		{ID: "demo-team-gutter-gang", LeagueID: DemoLeagueID, Name: "Gutter Gang", CreatedAt: now, UpdatedAt: now},
	}
	bowlers := []roster.BowlerDefinition{
		{ID: "demo-bowler-01", TeamID: "demo-team-strikers", Name: "Ada Pins", Gender: "F", Average: intPtr(182)},
		{ID: "demo-bowler-02", TeamID: "demo-team-strikers", Name: "Ben Hook", Gender: "M", Average: intPtr(171)},
		{ID: "demo-bowler-03", TeamID: "demo-team-strikers", Name: "Cy Spare", Gender: "M", Average: intPtr(155)},
		{ID: "demo-bowler-04", TeamID: "demo-team-strikers", Name: "Di Lane", Gender: "F"},
		{ID: "demo-bowler-05", TeamID: "demo-team-gutter-gang", Name: "Ed Split", Gender: "M", Average: intPtr(199)},
		{ID: "demo-bowler-06", TeamID: "demo-team-gutter-gang", Name: "Flo Turkey", Gender: "F", Average: intPtr(148)},
		{ID: "demo-bowler-07", TeamID: "demo-team-gutter-gang", Name: "Gus Frame", Gender: "M", Average: intPtr(163)},
		{ID: "demo-bowler-08", Name: "Hal Backup", Gender: "M", Average: intPtr(140)},
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.leagues[item.ID] = row[league.League]{seq: store.nextSeq(), item: item}
	for _, week := range schedule.Reconcile(nil, item).Create {
		week.ID = fmt.Sprintf("demo-week-%02d", week.Number)
		store.weeks[week.ID] = row[schedule.Week]{seq: store.nextSeq(), item: week}
	}
	for _, team := range teams {
		store.teams[team.ID] = row[roster.TeamDefinition]{seq: store.nextSeq(), item: team}
	}
	for _, bowler := range bowlers {
		bowler.LeagueID = DemoLeagueID
		bowler.CreatedAt, bowler.UpdatedAt = now, now
		store.bowlers[bowler.ID] = row[roster.BowlerDefinition]{seq: store.nextSeq(), item: bowler}
	}
}

func intPtr(v int) *int {
	return &v
}

package match

import (
	"strconv"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
)

type sequenceIDs struct {
	prefix string
	next   int
}

func (s *sequenceIDs) NewID() (string, error) {
	s.next++
	return s.prefix + strconv.Itoa(s.next), nil
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func typePtr(v BowlerType) *BowlerType { return &v }

func testLeague() league.League {
	return league.League{
		ID:                 "league-1",
		Name:               "Tuesday Mixed",
		StartDate:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		NumberOfWeeks:      10,
		NumberOfGames:      3,
		PlayersPerTeam:     4,
		PointsPerGame:      1,
		PointsForTotals:    1,
		HandicapMax:        210,
		HandicapPercentage: 90,
	}
}

func testWeek() schedule.Week {
	return schedule.Week{ID: "week-1", LeagueID: "league-1", Number: 1, Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
}

func testTeam(id, name string) roster.TeamDefinition {
	return roster.TeamDefinition{ID: id, LeagueID: "league-1", Name: name}
}

func testBowlers(teamID string, averages ...int) []roster.BowlerDefinition {
	out := make([]roster.BowlerDefinition, 0, len(averages))
	for i, avg := range averages {
		out = append(out, roster.BowlerDefinition{
			ID:       teamID + "-b" + strconv.Itoa(i+1),
			LeagueID: "league-1",
			TeamID:   teamID,
			Name:     "Bowler " + strconv.Itoa(i+1),
			Average:  intPtr(avg),
		})
	}
	return out
}

func testMatch(ids *sequenceIDs) Match {
	l := testLeague()
	team1, _ := Materialize(l, "match-1", SlotTeam1, testTeam("team-a", "Alley Cats"), testBowlers("team-a", 150, 180), ids)
	team2, _ := Materialize(l, "match-1", SlotTeam2, testTeam("team-b", "Pin Pals"), testBowlers("team-b", 200, 120, 160, 190), ids)
	return Match{
		ID:       "match-1",
		LeagueID: l.ID,
		WeekID:   "week-1",
		Lanes:    Lanes{3, 4},
		Team1:    team1,
		Team2:    team2,
	}
}

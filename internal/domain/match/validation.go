package match

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
)

// Assignment is a proposed pairing of two teams on a lane pair for one week.
type Assignment struct {
	LeagueID string
	Week     schedule.Week
	Team1    roster.TeamDefinition
	Team2    roster.TeamDefinition
	Lanes    Lanes
	// MatchID is set when an existing match is being reassigned.
	MatchID string
}

// ValidateAssignment checks an assignment against the league and the other matches of the week.
func ValidateAssignment(a Assignment, weekMatches []Match) error {
	if a.Week.LeagueID != a.LeagueID {
		return crerr.Mark(crerr.Newf("week %d is not a part of the league", a.Week.Number), ErrCrossLeague)
	}
	if a.Team1.LeagueID != a.LeagueID {
		return crerr.Mark(crerr.Newf("team 1 %q is not a part of the league", a.Team1.Name), ErrCrossLeague)
	}
	if a.Team2.LeagueID != a.LeagueID {
		return crerr.Mark(crerr.Newf("team 2 %q is not a part of the league", a.Team2.Name), ErrCrossLeague)
	}
	if a.Team1.ID == a.Team2.ID {
		return crerr.Mark(crerr.Newf("team %q cannot play against itself", a.Team1.Name), ErrSelfPlay)
	}
	if err := a.Lanes.Validate(); err != nil {
		return err
	}

	for _, team := range []roster.TeamDefinition{a.Team1, a.Team2} {
		for _, other := range weekMatches {
			if other.ID == a.MatchID || other.WeekID != a.Week.ID {
				continue
			}
			if other.HasTeamDefinition(team.ID) {
				return crerr.Mark(
					crerr.Newf("%s already has a match the week of %s", team.Name, a.Week.Date.Format("2006-01-02")),
					ErrDoubleBooked,
				)
			}
		}
	}

	return nil
}

// CheckBookings rejects item when one of its team definitions already plays
// another match of the same week. Stores call it while holding the week lock.
func CheckBookings(item Match, weekMatches []Match) error {
	for _, team := range item.Teams() {
		if team.DefinitionID == "" {
			continue
		}
		for _, other := range weekMatches {
			if other.ID == item.ID || other.WeekID != item.WeekID {
				continue
			}
			if other.HasTeamDefinition(team.DefinitionID) {
				return crerr.Mark(crerr.Newf("%s already has a match this week", team.Name), ErrDoubleBooked)
			}
		}
	}
	return nil
}

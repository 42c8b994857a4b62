package standing

import (
	"sort"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
)

// Standing is the season line of one team definition.
type Standing struct {
	TeamID        string
	TeamName      string
	PointsWon     float64
	PointsLost    float64
	ScratchPins   int
	HandicapPins  int
	GamesBowled   int
	MatchesBowled int
}

type teamScore struct {
	scratch  map[int]int
	handicap map[int]int
}

// Compute awards PointsPerGame for every game won on handicapped pins and PointsForTotals for the
// higher handicapped series. Ties split the points. Matches without any recorded pins are skipped.
func Compute(l league.League, teams []roster.TeamDefinition, matches []match.Match) []Standing {
	byTeam := make(map[string]*Standing, len(teams))
	out := make([]*Standing, 0, len(teams))
	for _, team := range teams {
		row := &Standing{TeamID: team.ID, TeamName: team.Name}
		byTeam[team.ID] = row
		out = append(out, row)
	}

	for _, m := range matches {
		home, away := byTeam[m.Team1.DefinitionID], byTeam[m.Team2.DefinitionID]
		if home == nil || away == nil {
			continue
		}

		homeScore, awayScore := scoreTeam(m.Team1), scoreTeam(m.Team2)
		played := playedGames(homeScore, awayScore)
		if len(played) == 0 {
			continue
		}

		homeSeries, awaySeries := 0, 0
		for _, number := range played {
			homePins := homeScore.scratch[number] + homeScore.handicap[number]
			awayPins := awayScore.scratch[number] + awayScore.handicap[number]
			homeSeries += homePins
			awaySeries += awayPins

			award(home, away, homePins, awayPins, float64(l.PointsPerGame))

			home.ScratchPins += homeScore.scratch[number]
			away.ScratchPins += awayScore.scratch[number]
			home.HandicapPins += homePins
			away.HandicapPins += awayPins
			home.GamesBowled++
			away.GamesBowled++
		}

		award(home, away, homeSeries, awaySeries, float64(l.PointsForTotals))
		home.MatchesBowled++
		away.MatchesBowled++
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PointsWon != out[j].PointsWon {
			return out[i].PointsWon > out[j].PointsWon
		}
		if out[i].HandicapPins != out[j].HandicapPins {
			return out[i].HandicapPins > out[j].HandicapPins
		}
		return out[i].TeamName < out[j].TeamName
	})

	result := make([]Standing, 0, len(out))
	for _, row := range out {
		result = append(result, *row)
	}
	return result
}

func award(home, away *Standing, homePins, awayPins int, points float64) {
	switch {
	case homePins > awayPins:
		home.PointsWon += points
		away.PointsLost += points
	case awayPins > homePins:
		away.PointsWon += points
		home.PointsLost += points
	default:
		home.PointsWon += points / 2
		home.PointsLost += points / 2
		away.PointsWon += points / 2
		away.PointsLost += points / 2
	}
}

func scoreTeam(team match.TeamInstance) teamScore {
	out := teamScore{scratch: make(map[int]int), handicap: make(map[int]int)}
	for _, bowler := range team.Bowlers {
		for _, game := range bowler.Games {
			out.scratch[game.Number] += game.Total
			out.handicap[game.Number] += bowler.HandicapValue()
		}
	}
	return out
}

func playedGames(home, away teamScore) []int {
	numbers := make(map[int]struct{})
	for number, pins := range home.scratch {
		if pins > 0 {
			numbers[number] = struct{}{}
		}
	}
	for number, pins := range away.scratch {
		if pins > 0 {
			numbers[number] = struct{}{}
		}
	}

	out := make([]int, 0, len(numbers))
	for number := range numbers {
		out = append(out, number)
	}
	sort.Ints(out)
	return out
}

package match

import (
	"fmt"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/score"
)

// IDGenerator issues identities for materialized rows.
type IDGenerator interface {
	NewID() (string, error)
}

// Materialize builds the team instance for one match slot: the first PlayersPerTeam bowlers of the
// definition in order, vacant padding for the shortfall, and NumberOfGames empty games per slot.
func Materialize(
	l league.League,
	matchID string,
	slot int,
	team roster.TeamDefinition,
	bowlers []roster.BowlerDefinition,
	ids IDGenerator,
) (TeamInstance, error) {
	instanceID, err := ids.NewID()
	if err != nil {
		return TeamInstance{}, fmt.Errorf("generate team instance id: %w", err)
	}

	instance := TeamInstance{
		ID:           instanceID,
		MatchID:      matchID,
		Slot:         slot,
		DefinitionID: team.ID,
		Name:         team.Name,
		Bowlers:      make([]Bowler, 0, l.PlayersPerTeam),
	}

	for position := 0; position < l.PlayersPerTeam; position++ {
		bowlerID, err := ids.NewID()
		if err != nil {
			return TeamInstance{}, fmt.Errorf("generate bowler id: %w", err)
		}

		slotBowler := Bowler{
			ID:             bowlerID,
			TeamInstanceID: instanceID,
			Type:           BowlerTypeVacant,
			Position:       position,
		}
		if position < len(bowlers) {
			Substitute(&slotBowler, l, bowlers[position], BowlerTypeRegular)
		}

		games, err := newGames(l.NumberOfGames, bowlerID, ids)
		if err != nil {
			return TeamInstance{}, err
		}
		slotBowler.Games = games

		instance.Bowlers = append(instance.Bowlers, slotBowler)
	}

	return instance, nil
}

func newGames(count int, bowlerID string, ids IDGenerator) ([]score.Game, error) {
	games := make([]score.Game, 0, count)
	for number := 1; number <= count; number++ {
		gameID, err := ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate game id: %w", err)
		}
		games = append(games, score.Game{
			ID:       gameID,
			BowlerID: bowlerID,
			Number:   number,
		})
	}
	return games, nil
}

// Substitute points a slot at another bowler definition and re-snapshots its stats.
// Recorded games stay untouched.
func Substitute(b *Bowler, l league.League, def roster.BowlerDefinition, bowlerType BowlerType) {
	b.DefinitionID = def.ID
	b.Name = def.Name
	b.Type = bowlerType
	b.Average = cloneInt(def.Average)
	b.Handicap = league.CalculateHandicap(l, def.Average)
}

// Vacate clears the definition of a slot that no longer points at a bowler.
func Vacate(b *Bowler, bowlerType BowlerType) {
	b.DefinitionID = ""
	b.Name = ""
	b.Type = bowlerType
	b.Average = nil
	b.Handicap = nil
}

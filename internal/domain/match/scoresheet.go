package match

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/score"
)

// SheetPatch is a partial score sheet update. Nil fields are left as they are.
type SheetPatch struct {
	Lanes *Lanes
	Team1 *TeamPatch
	Team2 *TeamPatch
}

type TeamPatch struct {
	Bowlers []BowlerPatch
}

// BowlerPatch targets a slot by its id. Definition and Type travel together; an empty
// Definition vacates the slot and is only accepted for vacant or blind types.
type BowlerPatch struct {
	ID         string
	Definition *string
	Type       *BowlerType
	Games      []GamePatch
}

type GamePatch struct {
	Number *int
	Total  *int
	Frames []FramePatch
}

type FramePatch struct {
	Number *int
	Throws []score.Throw
}

// SheetChanges is what a repository has to persist after a patch was applied.
type SheetChanges struct {
	Lanes   *Lanes
	Bowlers []Bowler
	Games   []GameChange
}

// GameChange carries the resulting total and only the frames written by the patch.
type GameChange struct {
	GameID   string
	BowlerID string
	Number   int
	Total    int
	Frames   []score.Frame
}

func (c SheetChanges) IsEmpty() bool {
	return c.Lanes == nil && len(c.Bowlers) == 0 && len(c.Games) == 0
}

type slotPatch struct {
	slot  int
	patch *TeamPatch
}

func (p SheetPatch) teams() []slotPatch {
	out := make([]slotPatch, 0, 2)
	if p.Team1 != nil {
		out = append(out, slotPatch{slot: SlotTeam1, patch: p.Team1})
	}
	if p.Team2 != nil {
		out = append(out, slotPatch{slot: SlotTeam2, patch: p.Team2})
	}
	return out
}

// Validate checks the patch shape without looking at any stored state.
func (p SheetPatch) Validate() error {
	if p.Lanes != nil {
		if err := p.Lanes.Validate(); err != nil {
			return err
		}
	}

	for _, team := range p.teams() {
		for i, bowler := range team.patch.Bowlers {
			if strings.TrimSpace(bowler.ID) == "" {
				return errMissingKey("team %d bowler #%d: id is required", team.slot, i+1)
			}
			if err := bowler.validateIdentity(); err != nil {
				return crerr.Wrapf(err, "team %d bowler %s", team.slot, bowler.ID)
			}
			for j, game := range bowler.Games {
				if err := game.validate(j); err != nil {
					return crerr.Wrapf(err, "team %d bowler %s", team.slot, bowler.ID)
				}
			}
		}
	}

	return nil
}

func (b BowlerPatch) validateIdentity() error {
	if (b.Definition == nil) != (b.Type == nil) {
		return crerr.Mark(crerr.New("definition and type must be supplied together"), ErrIncompletePair)
	}
	if b.Type == nil {
		return nil
	}
	if !b.Type.Valid() {
		return crerr.Mark(crerr.Newf("unknown bowler type %q", string(*b.Type)), ErrInvalidType)
	}
	if b.Type.RequiresDefinition() && strings.TrimSpace(*b.Definition) == "" {
		return crerr.Mark(crerr.Newf("type %s requires a definition", string(*b.Type)), ErrIncompletePair)
	}
	return nil
}

func (g GamePatch) validate(index int) error {
	if g.Number == nil {
		return errMissingKey("game #%d: game_number is required", index+1)
	}
	if g.Total != nil {
		if err := score.ValidateTotal(*g.Total); err != nil {
			return crerr.Wrapf(err, "game %d", *g.Number)
		}
	}
	for i, frame := range g.Frames {
		if frame.Number == nil {
			return errMissingKey("game %d frame #%d: frame_number is required", *g.Number, i+1)
		}
		if err := (score.Frame{Number: *frame.Number, Throws: frame.Throws}).Validate(); err != nil {
			return crerr.Wrapf(err, "game %d", *g.Number)
		}
	}
	return nil
}

// DefinitionIDs lists the bowler definitions the patch substitutes in.
func (p SheetPatch) DefinitionIDs() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, team := range p.teams() {
		for _, bowler := range team.patch.Bowlers {
			if bowler.Definition == nil {
				continue
			}
			id := strings.TrimSpace(*bowler.Definition)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// ApplySheet validates the patch, resolves every target, and returns the updated match together
// with the changes to persist. The input match is not modified; nothing is returned on error.
func ApplySheet(m Match, l league.League, p SheetPatch, definitions map[string]roster.BowlerDefinition) (Match, SheetChanges, error) {
	if err := p.Validate(); err != nil {
		return Match{}, SheetChanges{}, err
	}

	out := m.Clone()
	var changes SheetChanges

	if p.Lanes != nil {
		lanes := *p.Lanes
		out.Lanes = lanes
		changes.Lanes = &lanes
	}

	for _, teamPatch := range p.teams() {
		team := out.Team(teamPatch.slot)
		for _, bowlerPatch := range teamPatch.patch.Bowlers {
			idx, ok := team.Bowler(bowlerPatch.ID)
			if !ok {
				return Match{}, SheetChanges{}, errUnknownReference("bowler %s is not part of team %d", bowlerPatch.ID, teamPatch.slot)
			}
			slot := &team.Bowlers[idx]

			if bowlerPatch.Type != nil {
				if err := applyIdentity(slot, l, m.LeagueID, bowlerPatch, definitions); err != nil {
					return Match{}, SheetChanges{}, err
				}
				identity := slot.clone()
				identity.Games = nil
				changes.Bowlers = append(changes.Bowlers, identity)
			}

			for _, gamePatch := range bowlerPatch.Games {
				change, err := applyGame(slot, gamePatch)
				if err != nil {
					return Match{}, SheetChanges{}, err
				}
				changes.Games = append(changes.Games, change)
			}
		}
	}

	return out, changes, nil
}

func applyIdentity(slot *Bowler, l league.League, leagueID string, p BowlerPatch, definitions map[string]roster.BowlerDefinition) error {
	definitionID := strings.TrimSpace(*p.Definition)
	if definitionID == "" {
		Vacate(slot, *p.Type)
		return nil
	}

	def, ok := definitions[definitionID]
	if !ok {
		return errUnknownReference("bowler definition %s not found", definitionID)
	}
	if def.LeagueID != leagueID {
		return crerr.Mark(crerr.Newf("bowler %q is not a part of the league", def.Name), ErrCrossLeague)
	}

	Substitute(slot, l, def, *p.Type)
	return nil
}

func applyGame(slot *Bowler, p GamePatch) (GameChange, error) {
	idx, ok := slot.Game(*p.Number)
	if !ok {
		return GameChange{}, errUnknownReference("game %d does not exist for bowler %s", *p.Number, slot.ID)
	}
	game := &slot.Games[idx]

	if p.Total != nil {
		game.Total = *p.Total
	}

	change := GameChange{
		GameID:   game.ID,
		BowlerID: slot.ID,
		Number:   game.Number,
		Frames:   make([]score.Frame, 0, len(p.Frames)),
	}
	for _, framePatch := range p.Frames {
		frame := score.Frame{Number: *framePatch.Number, Throws: append([]score.Throw(nil), framePatch.Throws...)}
		game.PutFrame(frame)
		change.Frames = append(change.Frames, frame)
	}
	change.Total = game.Total

	return change, nil
}

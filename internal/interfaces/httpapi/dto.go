package httpapi

import (
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
	"github.com/riskibarqy/bowling-league/internal/domain/score"
	"github.com/riskibarqy/bowling-league/internal/domain/standing"
	"github.com/riskibarqy/bowling-league/internal/usecase"
)

const dateLayout = "2006-01-02"

type selfDTO struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// leagueRequest serves create, PUT and PATCH; the handler decides which fields are mandatory.
type leagueRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=100"`
	StartDate          *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	NumberOfWeeks      *int    `json:"number_of_weeks" validate:"omitempty,gte=0"`
	NumberOfGames      *int    `json:"number_of_games" validate:"omitempty,gte=1"`
	PlayersPerTeam     *int    `json:"players_per_team" validate:"omitempty,gte=1"`
	PointsPerGame      *int    `json:"points_per_game" validate:"omitempty,gte=0"`
	PointsForTotals    *int    `json:"points_for_totals" validate:"omitempty,gte=0"`
	HandicapMax        *int    `json:"handicap_max" validate:"omitempty,gte=0"`
	HandicapPercentage *int    `json:"handicap_percentage" validate:"omitempty,gte=0,lte=100"`
}

func (req leagueRequest) toInput() (usecase.LeagueInput, error) {
	input := usecase.LeagueInput{
		Name:               req.Name,
		NumberOfWeeks:      req.NumberOfWeeks,
		NumberOfGames:      req.NumberOfGames,
		PlayersPerTeam:     req.PlayersPerTeam,
		PointsPerGame:      req.PointsPerGame,
		PointsForTotals:    req.PointsForTotals,
		HandicapMax:        req.HandicapMax,
		HandicapPercentage: req.HandicapPercentage,
	}
	if req.StartDate != nil {
		date, err := parseDate(*req.StartDate)
		if err != nil {
			return usecase.LeagueInput{}, err
		}
		input.StartDate = &date
	}
	return input, nil
}

type leagueDTO struct {
	ID                 string    `json:"id"`
	Secretary          string    `json:"secretary"`
	Name               string    `json:"name"`
	StartDate          string    `json:"start_date"`
	NumberOfWeeks      int       `json:"number_of_weeks"`
	NumberOfGames      int       `json:"number_of_games"`
	PlayersPerTeam     int       `json:"players_per_team"`
	PointsPerGame      int       `json:"points_per_game"`
	PointsForTotals    int       `json:"points_for_totals"`
	HandicapMax        int       `json:"handicap_max"`
	HandicapPercentage int       `json:"handicap_percentage"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:                 v.ID,
		Secretary:          v.SecretaryID,
		Name:               v.Name,
		StartDate:          v.StartDate.Format(dateLayout),
		NumberOfWeeks:      v.NumberOfWeeks,
		NumberOfGames:      v.NumberOfGames,
		PlayersPerTeam:     v.PlayersPerTeam,
		PointsPerGame:      v.PointsPerGame,
		PointsForTotals:    v.PointsForTotals,
		HandicapMax:        v.HandicapMax,
		HandicapPercentage: v.HandicapPercentage,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

type weekRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type weekDTO struct {
	ID         string `json:"id"`
	League     string `json:"league"`
	WeekNumber int    `json:"week_number"`
	Date       string `json:"date"`
}

func weekToDTO(v schedule.Week) weekDTO {
	return weekDTO{
		ID:         v.ID,
		League:     v.LeagueID,
		WeekNumber: v.Number,
		Date:       v.Date.Format(dateLayout),
	}
}

type teamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type teamDTO struct {
	ID     string `json:"id"`
	League string `json:"league"`
	Name   string `json:"name"`
}

func teamToDTO(v roster.TeamDefinition) teamDTO {
	return teamDTO{
		ID:     v.ID,
		League: v.LeagueID,
		Name:   v.Name,
	}
}

type createBowlerRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Gender  string `json:"gender" validate:"omitempty,max=16"`
	Average *int   `json:"average" validate:"omitempty,gte=0,lte=300"`
}

type updateBowlerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Gender  *string `json:"gender" validate:"omitempty,max=16"`
	Average *int    `json:"average" validate:"omitempty,gte=0,lte=300"`
	Team    *string `json:"team"`
}

type bowlerDTO struct {
	ID       string  `json:"id"`
	League   string  `json:"league"`
	Team     *string `json:"team"`
	Name     string  `json:"name"`
	Gender   string  `json:"gender"`
	Average  *int    `json:"average"`
	Handicap *int    `json:"handicap"`
}

func bowlerToDTO(v usecase.BowlerDetail) bowlerDTO {
	out := bowlerDTO{
		ID:       v.ID,
		League:   v.LeagueID,
		Name:     v.Name,
		Gender:   v.Gender,
		Average:  v.Average,
		Handicap: v.Handicap,
	}
	if !v.IsSubstitute() {
		team := v.TeamID
		out.Team = &team
	}
	return out
}

type matchRequest struct {
	Team1 string `json:"team1" validate:"required"`
	Team2 string `json:"team2" validate:"required"`
	Lanes []int  `json:"lanes" validate:"required,len=2"`
}

func (req matchRequest) toInput() usecase.MatchInput {
	return usecase.MatchInput{
		Team1ID: req.Team1,
		Team2ID: req.Team2,
		Lanes:   match.Lanes{req.Lanes[0], req.Lanes[1]},
	}
}

type scoreSheetRequest struct {
	Lanes []int             `json:"lanes" validate:"omitempty,len=2"`
	Team1 *teamSheetRequest `json:"team1"`
	Team2 *teamSheetRequest `json:"team2"`
}

type teamSheetRequest struct {
	Bowlers []bowlerSheetRequest `json:"bowlers"`
}

type bowlerSheetRequest struct {
	ID         string             `json:"id"`
	Definition *string            `json:"definition"`
	Type       *string            `json:"type"`
	Games      []gameSheetRequest `json:"games"`

	// definitionSent is true when the body carried a definition key, null included.
	definitionSent bool
}

// sheetKeys mirrors the bowler lists of a score sheet body as raw key sets.
type sheetKeys struct {
	Team1 *struct {
		Bowlers []map[string]any `json:"bowlers"`
	} `json:"team1"`
	Team2 *struct {
		Bowlers []map[string]any `json:"bowlers"`
	} `json:"team2"`
}

// markPresentKeys records which bowler entries of body sent a definition key.
func (req *scoreSheetRequest) markPresentKeys(body []byte) error {
	var keys sheetKeys
	if err := sonic.Unmarshal(body, &keys); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if req.Team1 != nil && keys.Team1 != nil {
		markDefinitionKeys(req.Team1.Bowlers, keys.Team1.Bowlers)
	}
	if req.Team2 != nil && keys.Team2 != nil {
		markDefinitionKeys(req.Team2.Bowlers, keys.Team2.Bowlers)
	}
	return nil
}

func markDefinitionKeys(bowlers []bowlerSheetRequest, raw []map[string]any) {
	for i := range bowlers {
		if i >= len(raw) {
			return
		}
		_, bowlers[i].definitionSent = raw[i]["definition"]
	}
}

type gameSheetRequest struct {
	GameNumber *int                `json:"game_number"`
	Total      *int                `json:"total"`
	Frames     []frameSheetRequest `json:"frames"`
}

type frameSheetRequest struct {
	FrameNumber *int       `json:"frame_number"`
	Throws      []throwDTO `json:"throws"`
}

type throwDTO struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

func (req scoreSheetRequest) toPatch() match.SheetPatch {
	var out match.SheetPatch
	if len(req.Lanes) == 2 {
		lanes := match.Lanes{req.Lanes[0], req.Lanes[1]}
		out.Lanes = &lanes
	}
	out.Team1 = req.Team1.toPatch()
	out.Team2 = req.Team2.toPatch()
	return out
}

func (req *teamSheetRequest) toPatch() *match.TeamPatch {
	if req == nil {
		return nil
	}
	out := &match.TeamPatch{Bowlers: make([]match.BowlerPatch, 0, len(req.Bowlers))}
	for _, b := range req.Bowlers {
		out.Bowlers = append(out.Bowlers, b.toPatch())
	}
	return out
}

func (req bowlerSheetRequest) toPatch() match.BowlerPatch {
	out := match.BowlerPatch{
		ID:         strings.TrimSpace(req.ID),
		Definition: req.Definition,
		Games:      make([]match.GamePatch, 0, len(req.Games)),
	}
	if req.Type != nil {
		kind := match.BowlerType(strings.ToLower(strings.TrimSpace(*req.Type)))
		out.Type = &kind
		// an explicit null definition vacates the slot when the type allows it.
		if out.Definition == nil && req.definitionSent && !kind.RequiresDefinition() {
			empty := ""
			out.Definition = &empty
		}
	}
	for _, game := range req.Games {
		patch := match.GamePatch{
			Number: game.GameNumber,
			Total:  game.Total,
			Frames: make([]match.FramePatch, 0, len(game.Frames)),
		}
		for _, frame := range game.Frames {
			throws := make([]score.Throw, 0, len(frame.Throws))
			for _, t := range frame.Throws {
				throws = append(throws, score.Throw{Type: score.ThrowType(strings.ToLower(strings.TrimSpace(t.Type))), Value: t.Value})
			}
			patch.Frames = append(patch.Frames, match.FramePatch{Number: frame.FrameNumber, Throws: throws})
		}
		out.Games = append(out.Games, patch)
	}
	return out
}

type matchDTO struct {
	ID        string          `json:"id"`
	League    string          `json:"league"`
	Week      string          `json:"week"`
	Lanes     [2]int          `json:"lanes"`
	Team1     teamInstanceDTO `json:"team1"`
	Team2     teamInstanceDTO `json:"team2"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type teamInstanceDTO struct {
	ID         string           `json:"id"`
	Definition *string          `json:"definition"`
	Name       string           `json:"name"`
	Bowlers    []matchBowlerDTO `json:"bowlers"`
}

type matchBowlerDTO struct {
	ID         string    `json:"id"`
	Definition *string   `json:"definition"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Average    *int      `json:"average"`
	Handicap   *int      `json:"handicap"`
	Position   int       `json:"position"`
	Total      int       `json:"total"`
	Games      []gameDTO `json:"games,omitempty"`
}

type gameDTO struct {
	ID         string     `json:"id"`
	GameNumber int        `json:"game_number"`
	Total      int        `json:"total"`
	Splits     []int      `json:"splits"`
	Frames     []frameDTO `json:"frames"`
}

type frameDTO struct {
	FrameNumber int        `json:"frame_number"`
	Throws      []throwDTO `json:"throws"`
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:        v.ID,
		League:    v.LeagueID,
		Week:      v.WeekID,
		Lanes:     [2]int(v.Lanes),
		Team1:     teamInstanceToDTO(v.Team1),
		Team2:     teamInstanceToDTO(v.Team2),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func teamInstanceToDTO(v match.TeamInstance) teamInstanceDTO {
	out := teamInstanceDTO{
		ID:         v.ID,
		Definition: optionalString(v.DefinitionID),
		Name:       v.Name,
		Bowlers:    make([]matchBowlerDTO, 0, len(v.Bowlers)),
	}
	for _, b := range v.Bowlers {
		bowler := matchBowlerDTO{
			ID:         b.ID,
			Definition: optionalString(b.DefinitionID),
			Name:       b.Name,
			Type:       string(b.Type),
			Average:    b.Average,
			Handicap:   b.Handicap,
			Position:   b.Position,
			Total:      b.Total(),
		}
		for _, g := range b.Games {
			bowler.Games = append(bowler.Games, gameToDTO(g))
		}
		out.Bowlers = append(out.Bowlers, bowler)
	}
	return out
}

func gameToDTO(v score.Game) gameDTO {
	out := gameDTO{
		ID:         v.ID,
		GameNumber: v.Number,
		Total:      v.Total,
		Splits:     v.Splits(),
		Frames:     make([]frameDTO, 0, len(v.Frames)),
	}
	for _, f := range v.Frames {
		frame := frameDTO{FrameNumber: f.Number, Throws: make([]throwDTO, 0, len(f.Throws))}
		for _, t := range f.Throws {
			frame.Throws = append(frame.Throws, throwDTO{Type: string(t.Type), Value: t.Value})
		}
		out.Frames = append(out.Frames, frame)
	}
	return out
}

type standingDTO struct {
	Team          string  `json:"team"`
	TeamName      string  `json:"team_name"`
	PointsWon     float64 `json:"points_won"`
	PointsLost    float64 `json:"points_lost"`
	ScratchPins   int     `json:"scratch_pins"`
	HandicapPins  int     `json:"handicap_pins"`
	GamesBowled   int     `json:"games_bowled"`
	MatchesBowled int     `json:"matches_bowled"`
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		Team:          v.TeamID,
		TeamName:      v.TeamName,
		PointsWon:     v.PointsWon,
		PointsLost:    v.PointsLost,
		ScratchPins:   v.ScratchPins,
		HandicapPins:  v.HandicapPins,
		GamesBowled:   v.GamesBowled,
		MatchesBowled: v.MatchesBowled,
	}
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", usecase.ErrInvalidInput, raw)
	}
	return date, nil
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

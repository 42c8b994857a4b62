package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	idgen "github.com/riskibarqy/bowling-league/internal/platform/id"
)

// BowlerDetail is a bowler definition with the handicap derived from its league.
type BowlerDetail struct {
	roster.BowlerDefinition
	Handicap *int
}

type BowlerInput struct {
	Name    string
	Gender  string
	Average *int
}

// BowlerPatch updates a bowler definition. RemoveTeam moves the bowler into the
// substitute pool and wins over TeamID.
type BowlerPatch struct {
	Name         *string
	Gender       *string
	Average      *int
	ClearAverage bool
	TeamID       *string
	RemoveTeam   bool
}

type RosterService struct {
	leagueRepo league.Repository
	teamRepo   roster.TeamRepository
	bowlerRepo roster.BowlerRepository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewRosterService(
	leagueRepo league.Repository,
	teamRepo roster.TeamRepository,
	bowlerRepo roster.BowlerRepository,
	idGen idgen.Generator,
) *RosterService {
	return &RosterService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		bowlerRepo: bowlerRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *RosterService) ListTeams(ctx context.Context, leagueID string) ([]roster.TeamDefinition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListTeams")
	defer span.End()

	if _, err := loadLeague(ctx, s.leagueRepo, leagueID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, strings.TrimSpace(leagueID))
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}

func (s *RosterService) GetTeam(ctx context.Context, leagueID, teamID string) (roster.TeamDefinition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetTeam")
	defer span.End()

	return loadTeam(ctx, s.teamRepo, leagueID, teamID)
}

func (s *RosterService) CreateTeam(ctx context.Context, leagueID, name string) (roster.TeamDefinition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CreateTeam")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return roster.TeamDefinition{}, err
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return roster.TeamDefinition{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	team := roster.TeamDefinition{
		ID:        teamID,
		LeagueID:  item.ID,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := team.Validate(); err != nil {
		return roster.TeamDefinition{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return roster.TeamDefinition{}, fmt.Errorf("create team: %w", err)
	}

	return team, nil
}

func (s *RosterService) RenameTeam(ctx context.Context, leagueID, teamID, name string) (roster.TeamDefinition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.RenameTeam")
	defer span.End()

	team, err := loadTeam(ctx, s.teamRepo, leagueID, teamID)
	if err != nil {
		return roster.TeamDefinition{}, err
	}

	team.Name = strings.TrimSpace(name)
	team.UpdatedAt = s.now().UTC()
	if err := team.Validate(); err != nil {
		return roster.TeamDefinition{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return roster.TeamDefinition{}, fmt.Errorf("update team: %w", err)
	}

	return team, nil
}

func (s *RosterService) DeleteTeam(ctx context.Context, leagueID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.DeleteTeam")
	defer span.End()

	leagueID, teamID = strings.TrimSpace(leagueID), strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	deleted, err := s.teamRepo.Delete(ctx, leagueID, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}

// ListBowlers returns the bowlers of a team, or the substitute pool when teamID is empty.
func (s *RosterService) ListBowlers(ctx context.Context, leagueID, teamID string) ([]BowlerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListBowlers")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	var bowlers []roster.BowlerDefinition
	if strings.TrimSpace(teamID) == "" {
		bowlers, err = s.bowlerRepo.ListSubstitutes(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("list substitutes: %w", err)
		}
	} else {
		team, err := loadTeam(ctx, s.teamRepo, item.ID, teamID)
		if err != nil {
			return nil, err
		}
		bowlers, err = s.bowlerRepo.ListByTeam(ctx, item.ID, team.ID)
		if err != nil {
			return nil, fmt.Errorf("list bowlers by team: %w", err)
		}
	}

	out := make([]BowlerDetail, 0, len(bowlers))
	for _, b := range bowlers {
		out = append(out, bowlerDetail(item, b))
	}
	return out, nil
}

func (s *RosterService) GetBowler(ctx context.Context, leagueID, teamID, bowlerID string) (BowlerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetBowler")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return BowlerDetail{}, err
	}

	bowler, err := s.loadBowler(ctx, item.ID, teamID, bowlerID)
	if err != nil {
		return BowlerDetail{}, err
	}

	return bowlerDetail(item, bowler), nil
}

// CreateBowler adds a bowler to a team, or to the substitute pool when teamID is empty.
func (s *RosterService) CreateBowler(ctx context.Context, leagueID, teamID string, input BowlerInput) (BowlerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CreateBowler")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return BowlerDetail{}, err
	}

	teamID = strings.TrimSpace(teamID)
	if teamID != "" {
		if _, err := loadTeam(ctx, s.teamRepo, item.ID, teamID); err != nil {
			return BowlerDetail{}, err
		}
	}

	bowlerID, err := s.idGen.NewID()
	if err != nil {
		return BowlerDetail{}, fmt.Errorf("generate bowler id: %w", err)
	}

	now := s.now().UTC()
	bowler := roster.BowlerDefinition{
		ID:        bowlerID,
		LeagueID:  item.ID,
		TeamID:    teamID,
		Name:      strings.TrimSpace(input.Name),
		Gender:    strings.TrimSpace(input.Gender),
		Average:   input.Average,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := bowler.Validate(); err != nil {
		return BowlerDetail{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.bowlerRepo.Create(ctx, bowler); err != nil {
		return BowlerDetail{}, fmt.Errorf("create bowler: %w", err)
	}

	return bowlerDetail(item, bowler), nil
}

func (s *RosterService) UpdateBowler(ctx context.Context, leagueID, teamID, bowlerID string, patch BowlerPatch) (BowlerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UpdateBowler")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return BowlerDetail{}, err
	}

	bowler, err := s.loadBowler(ctx, item.ID, teamID, bowlerID)
	if err != nil {
		return BowlerDetail{}, err
	}

	if patch.Name != nil {
		bowler.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Gender != nil {
		bowler.Gender = strings.TrimSpace(*patch.Gender)
	}
	switch {
	case patch.ClearAverage:
		bowler.Average = nil
	case patch.Average != nil:
		average := *patch.Average
		bowler.Average = &average
	}

	switch {
	case patch.RemoveTeam:
		bowler.TeamID = ""
	case patch.TeamID != nil:
		target := strings.TrimSpace(*patch.TeamID)
		if target != "" {
			team, exists, err := s.teamRepo.GetByID(ctx, item.ID, target)
			if err != nil {
				return BowlerDetail{}, fmt.Errorf("get team: %w", err)
			}
			if !exists || team.LeagueID != item.ID {
				return BowlerDetail{}, fmt.Errorf("%w: team is not a part of the current league", ErrInvalidInput)
			}
		}
		bowler.TeamID = target
	}

	bowler.UpdatedAt = s.now().UTC()
	if err := bowler.Validate(); err != nil {
		return BowlerDetail{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.bowlerRepo.Update(ctx, bowler); err != nil {
		return BowlerDetail{}, fmt.Errorf("update bowler: %w", err)
	}

	return bowlerDetail(item, bowler), nil
}

func (s *RosterService) DeleteBowler(ctx context.Context, leagueID, teamID, bowlerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.DeleteBowler")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return err
	}

	bowler, err := s.loadBowler(ctx, item.ID, teamID, bowlerID)
	if err != nil {
		return err
	}

	deleted, err := s.bowlerRepo.Delete(ctx, item.ID, bowler.ID)
	if err != nil {
		return fmt.Errorf("delete bowler: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: bowler=%s", ErrNotFound, bowler.ID)
	}

	return nil
}

// loadBowler scopes the lookup to a team, or to the substitute pool when teamID is empty.
func (s *RosterService) loadBowler(ctx context.Context, leagueID, teamID, bowlerID string) (roster.BowlerDefinition, error) {
	bowlerID = strings.TrimSpace(bowlerID)
	if bowlerID == "" {
		return roster.BowlerDefinition{}, fmt.Errorf("%w: bowler id is required", ErrInvalidInput)
	}

	bowler, exists, err := s.bowlerRepo.GetByID(ctx, leagueID, bowlerID)
	if err != nil {
		return roster.BowlerDefinition{}, fmt.Errorf("get bowler: %w", err)
	}
	if !exists || bowler.TeamID != strings.TrimSpace(teamID) {
		return roster.BowlerDefinition{}, fmt.Errorf("%w: bowler=%s", ErrNotFound, bowlerID)
	}

	return bowler, nil
}

func loadTeam(ctx context.Context, repo roster.TeamRepository, leagueID, teamID string) (roster.TeamDefinition, error) {
	leagueID, teamID = strings.TrimSpace(leagueID), strings.TrimSpace(teamID)
	if leagueID == "" || teamID == "" {
		return roster.TeamDefinition{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	team, exists, err := repo.GetByID(ctx, leagueID, teamID)
	if err != nil {
		return roster.TeamDefinition{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return roster.TeamDefinition{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return team, nil
}

func bowlerDetail(l league.League, b roster.BowlerDefinition) BowlerDetail {
	return BowlerDetail{
		BowlerDefinition: b,
		Handicap:         league.CalculateHandicap(l, b.Average),
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
	idgen "github.com/riskibarqy/bowling-league/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

// MatchInput is a pairing request: two team definitions on an adjacent lane pair.
type MatchInput struct {
	Team1ID string
	Team2ID string
	Lanes   match.Lanes
}

type MatchService struct {
	leagueRepo league.Repository
	weekRepo   schedule.Repository
	teamRepo   roster.TeamRepository
	bowlerRepo roster.BowlerRepository
	matchRepo  match.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewMatchService(
	leagueRepo league.Repository,
	weekRepo schedule.Repository,
	teamRepo roster.TeamRepository,
	bowlerRepo roster.BowlerRepository,
	matchRepo match.Repository,
	idGen idgen.Generator,
) *MatchService {
	return &MatchService{
		leagueRepo: leagueRepo,
		weekRepo:   weekRepo,
		teamRepo:   teamRepo,
		bowlerRepo: bowlerRepo,
		matchRepo:  matchRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, leagueID string, weekNumber int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	week, err := loadWeek(ctx, s.weekRepo, leagueID, weekNumber)
	if err != nil {
		return nil, err
	}

	items, err := s.matchRepo.ListByWeek(ctx, week.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches by week: %w", err)
	}

	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, leagueID string, weekNumber int, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	week, err := loadWeek(ctx, s.weekRepo, leagueID, weekNumber)
	if err != nil {
		return match.Match{}, err
	}

	return loadMatch(ctx, s.matchRepo, week, matchID)
}

// CreateMatch validates the pairing and stores the match with both rosters materialized.
func (s *MatchService) CreateMatch(ctx context.Context, leagueID string, weekNumber int, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return match.Match{}, err
	}
	week, err := loadWeek(ctx, s.weekRepo, item.ID, weekNumber)
	if err != nil {
		return match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	out := match.Match{
		ID:        matchID,
		LeagueID:  item.ID,
		WeekID:    week.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.assign(ctx, item, week, &out, input); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Create(ctx, out); err != nil {
		if crerr.Is(err, match.ErrDoubleBooked) {
			return match.Match{}, classifyDomainError(err)
		}
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return out, nil
}

// ReassignMatch re-validates the pairing and rebuilds both rosters. Every recorded
// score of the match is discarded.
func (s *MatchService) ReassignMatch(ctx context.Context, leagueID string, weekNumber int, matchID string, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ReassignMatch")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return match.Match{}, err
	}
	week, err := loadWeek(ctx, s.weekRepo, item.ID, weekNumber)
	if err != nil {
		return match.Match{}, err
	}
	current, err := loadMatch(ctx, s.matchRepo, week, matchID)
	if err != nil {
		return match.Match{}, err
	}

	out := match.Match{
		ID:        current.ID,
		LeagueID:  current.LeagueID,
		WeekID:    current.WeekID,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.assign(ctx, item, week, &out, input); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.ReplaceTeams(ctx, out); err != nil {
		if crerr.Is(err, match.ErrDoubleBooked) {
			return match.Match{}, classifyDomainError(err)
		}
		return match.Match{}, fmt.Errorf("replace match teams: %w", err)
	}

	return out, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, leagueID string, weekNumber int, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	week, err := loadWeek(ctx, s.weekRepo, leagueID, weekNumber)
	if err != nil {
		return err
	}
	current, err := loadMatch(ctx, s.matchRepo, week, matchID)
	if err != nil {
		return err
	}

	deleted, err := s.matchRepo.Delete(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match=%s", ErrNotFound, current.ID)
	}

	return nil
}

type resolvedTeam struct {
	team    roster.TeamDefinition
	bowlers []roster.BowlerDefinition
}

// assign validates the pairing against the rest of the week and materializes both slots into out.
func (s *MatchService) assign(ctx context.Context, l league.League, week schedule.Week, out *match.Match, input MatchInput) error {
	teams, err := s.resolveTeams(ctx, l.ID, input)
	if err != nil {
		return err
	}

	weekMatches, err := s.matchRepo.ListByWeek(ctx, week.ID)
	if err != nil {
		return fmt.Errorf("list matches by week: %w", err)
	}

	err = match.ValidateAssignment(match.Assignment{
		LeagueID: l.ID,
		Week:     week,
		Team1:    teams[0].team,
		Team2:    teams[1].team,
		Lanes:    input.Lanes,
		MatchID:  out.ID,
	}, weekMatches)
	if err != nil {
		return classifyDomainError(err)
	}

	out.Lanes = input.Lanes
	for i, slot := range []int{match.SlotTeam1, match.SlotTeam2} {
		instance, err := match.Materialize(l, out.ID, slot, teams[i].team, teams[i].bowlers, s.idGen)
		if err != nil {
			return fmt.Errorf("materialize team %d: %w", slot, err)
		}
		*out.Team(slot) = instance
	}

	return nil
}

// resolveTeams loads both team definitions and their rosters concurrently.
func (s *MatchService) resolveTeams(ctx context.Context, leagueID string, input MatchInput) ([2]resolvedTeam, error) {
	var out [2]resolvedTeam

	teamIDs := [2]string{strings.TrimSpace(input.Team1ID), strings.TrimSpace(input.Team2ID)}
	for i, teamID := range teamIDs {
		if teamID == "" {
			return out, fmt.Errorf("%w: team %d is required", ErrInvalidInput, i+1)
		}
	}

	p := pool.New().WithErrors().WithContext(ctx)
	for i := range teamIDs {
		i := i
		p.Go(func(ctx context.Context) error {
			team, exists, err := s.teamRepo.GetByID(ctx, leagueID, teamIDs[i])
			if err != nil {
				return fmt.Errorf("get team %d: %w", i+1, err)
			}
			if !exists {
				return fmt.Errorf("%w: team %d is not a part of the correct league", ErrInvalidInput, i+1)
			}

			bowlers, err := s.bowlerRepo.ListByTeam(ctx, leagueID, team.ID)
			if err != nil {
				return fmt.Errorf("list bowlers of team %d: %w", i+1, err)
			}

			out[i] = resolvedTeam{team: team, bowlers: bowlers}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return [2]resolvedTeam{}, err
	}

	return out, nil
}

// loadMatch returns the full match aggregate, scoped to the given week.
func loadMatch(ctx context.Context, repo match.Repository, week schedule.Week, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists || item.WeekID != week.ID {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/standing"
)

const defaultStandingWorkers = 4

type StandingService struct {
	leagueRepo league.Repository
	teamRepo   roster.TeamRepository
	matchRepo  match.Repository
	workers    int
}

func NewStandingService(
	leagueRepo league.Repository,
	teamRepo roster.TeamRepository,
	matchRepo match.Repository,
	workers int,
) *StandingService {
	if workers <= 0 {
		workers = defaultStandingWorkers
	}
	return &StandingService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		workers:    workers,
	}
}

// GetStandings computes the season table of a league from every recorded score sheet.
func (s *StandingService) GetStandings(ctx context.Context, leagueID string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetStandings")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	shallow, err := s.matchRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list matches by league: %w", err)
	}

	matches, err := s.loadScoreSheets(ctx, shallow)
	if err != nil {
		return nil, err
	}

	return standing.Compute(item, teams, matches), nil
}

// loadScoreSheets fetches full aggregates through a bounded pool, keeping input order.
func (s *StandingService) loadScoreSheets(ctx context.Context, shallow []match.Match) ([]match.Match, error) {
	if len(shallow) == 0 {
		return nil, nil
	}

	workerCount := s.workers
	if workerCount > len(shallow) {
		workerCount = len(shallow)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]match.Match, len(shallow))
	errs := make([]error, len(shallow))

	var workers sync.WaitGroup
	for i := range shallow {
		i := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			item, exists, err := s.matchRepo.GetByID(ctx, shallow[i].ID)
			switch {
			case err != nil:
				errs[i] = fmt.Errorf("get match %s: %w", shallow[i].ID, err)
			case exists:
				out[i] = item
			default:
				// deleted since the listing; score it as unplayed.
				out[i] = shallow[i]
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

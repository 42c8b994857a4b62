package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
	"github.com/riskibarqy/bowling-league/internal/domain/user"
	idgen "github.com/riskibarqy/bowling-league/internal/platform/id"
)

// LeagueInput carries league settings. Nil fields fall back to defaults on create
// and are left untouched on update.
type LeagueInput struct {
	Name               *string
	StartDate          *time.Time
	NumberOfWeeks      *int
	NumberOfGames      *int
	PlayersPerTeam     *int
	PointsPerGame      *int
	PointsForTotals    *int
	HandicapMax        *int
	HandicapPercentage *int
}

type LeagueService struct {
	leagueRepo league.Repository
	weekRepo   schedule.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewLeagueService(leagueRepo league.Repository, weekRepo schedule.Repository, idGen idgen.Generator) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		weekRepo:   weekRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	return loadLeague(ctx, s.leagueRepo, leagueID)
}

// CreateLeague stores a league owned by the caller and generates its weeks.
func (s *LeagueService) CreateLeague(ctx context.Context, principal user.Principal, input LeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	secretaryID := strings.TrimSpace(principal.UserID)
	if secretaryID == "" {
		return league.League{}, fmt.Errorf("%w: missing principal", ErrUnauthorized)
	}

	leagueID, err := s.idGen.NewID()
	if err != nil {
		return league.League{}, fmt.Errorf("generate league id: %w", err)
	}

	now := s.now().UTC()
	item := league.League{
		ID:              leagueID,
		SecretaryID:     secretaryID,
		NumberOfWeeks:   league.DefaultNumberOfWeeks,
		PointsPerGame:   league.DefaultPointsPerGame,
		PointsForTotals: league.DefaultPointsForTotals,
		CreatedAt:       now,
		UpdatedAt:       now,
	}.WithDefaults()
	item = input.applyTo(item)
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}
	if err := s.reconcileWeeks(ctx, item); err != nil {
		return league.League{}, err
	}

	return item, nil
}

// UpdateLeague applies the non-nil settings and brings the schedule in line with
// the configured week count. The secretary never changes.
func (s *LeagueService) UpdateLeague(ctx context.Context, leagueID string, input LeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.UpdateLeague")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return league.League{}, err
	}

	item = input.applyTo(item)
	item.UpdatedAt = s.now().UTC()
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.leagueRepo.Update(ctx, item); err != nil {
		return league.League{}, fmt.Errorf("update league: %w", err)
	}
	if err := s.reconcileWeeks(ctx, item); err != nil {
		return league.League{}, err
	}

	return item, nil
}

func (s *LeagueService) DeleteLeague(ctx context.Context, leagueID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.DeleteLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	deleted, err := s.leagueRepo.Delete(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("delete league: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return nil
}

func (s *LeagueService) reconcileWeeks(ctx context.Context, item league.League) error {
	weeks, err := s.weekRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("list weeks by league: %w", err)
	}

	plan := schedule.Reconcile(weeks, item)
	if plan.IsEmpty() {
		return nil
	}
	for i := range plan.Create {
		weekID, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate week id: %w", err)
		}
		plan.Create[i].ID = weekID
	}

	if err := s.weekRepo.Apply(ctx, item.ID, plan); err != nil {
		return fmt.Errorf("apply schedule plan: %w", err)
	}

	return nil
}

func (in LeagueInput) applyTo(item league.League) league.League {
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.StartDate != nil {
		item.StartDate = schedule.DateOnly(*in.StartDate)
	}
	if in.NumberOfWeeks != nil {
		item.NumberOfWeeks = *in.NumberOfWeeks
	}
	if in.NumberOfGames != nil {
		item.NumberOfGames = *in.NumberOfGames
	}
	if in.PlayersPerTeam != nil {
		item.PlayersPerTeam = *in.PlayersPerTeam
	}
	if in.PointsPerGame != nil {
		item.PointsPerGame = *in.PointsPerGame
	}
	if in.PointsForTotals != nil {
		item.PointsForTotals = *in.PointsForTotals
	}
	if in.HandicapMax != nil {
		item.HandicapMax = *in.HandicapMax
	}
	if in.HandicapPercentage != nil {
		item.HandicapPercentage = *in.HandicapPercentage
	}
	return item
}

func loadLeague(ctx context.Context, repo league.Repository, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

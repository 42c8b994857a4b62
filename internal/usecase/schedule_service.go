package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
)

type ScheduleService struct {
	leagueRepo league.Repository
	weekRepo   schedule.Repository
}

func NewScheduleService(leagueRepo league.Repository, weekRepo schedule.Repository) *ScheduleService {
	return &ScheduleService{
		leagueRepo: leagueRepo,
		weekRepo:   weekRepo,
	}
}

func (s *ScheduleService) ListWeeks(ctx context.Context, leagueID string) ([]schedule.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListWeeks")
	defer span.End()

	item, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	weeks, err := s.weekRepo.ListByLeague(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list weeks by league: %w", err)
	}

	return weeks, nil
}

func (s *ScheduleService) GetWeek(ctx context.Context, leagueID string, number int) (schedule.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetWeek")
	defer span.End()

	return loadWeek(ctx, s.weekRepo, leagueID, number)
}

// RescheduleWeek moves a single week to another date. Other weeks keep their dates.
func (s *ScheduleService) RescheduleWeek(ctx context.Context, leagueID string, number int, date time.Time) (schedule.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.RescheduleWeek")
	defer span.End()

	if date.IsZero() {
		return schedule.Week{}, fmt.Errorf("%w: week date is required", ErrInvalidInput)
	}

	week, err := loadWeek(ctx, s.weekRepo, leagueID, number)
	if err != nil {
		return schedule.Week{}, err
	}

	week.Date = schedule.DateOnly(date)
	if err := s.weekRepo.UpdateDate(ctx, week.ID, week.Date); err != nil {
		return schedule.Week{}, fmt.Errorf("update week date: %w", err)
	}

	return week, nil
}

// DeleteWeek removes one week and its matches. The league week count is not touched,
// so the next league save regenerates the missing week at the end of the schedule.
func (s *ScheduleService) DeleteWeek(ctx context.Context, leagueID string, number int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.DeleteWeek")
	defer span.End()

	week, err := loadWeek(ctx, s.weekRepo, leagueID, number)
	if err != nil {
		return err
	}

	deleted, err := s.weekRepo.Delete(ctx, week.ID)
	if err != nil {
		return fmt.Errorf("delete week: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: week=%d", ErrNotFound, number)
	}

	return nil
}

func loadWeek(ctx context.Context, repo schedule.Repository, leagueID string, number int) (schedule.Week, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return schedule.Week{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if number < 1 {
		return schedule.Week{}, fmt.Errorf("%w: week number must be >= 1", ErrInvalidInput)
	}

	week, exists, err := repo.GetByNumber(ctx, leagueID, number)
	if err != nil {
		return schedule.Week{}, fmt.Errorf("get week: %w", err)
	}
	if !exists {
		return schedule.Week{}, fmt.Errorf("%w: league=%s week=%d", ErrNotFound, leagueID, number)
	}

	return week, nil
}

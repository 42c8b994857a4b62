package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
)

type ScoreSheetService struct {
	leagueRepo league.Repository
	weekRepo   schedule.Repository
	bowlerRepo roster.BowlerRepository
	matchRepo  match.Repository
	now        func() time.Time
}

func NewScoreSheetService(
	leagueRepo league.Repository,
	weekRepo schedule.Repository,
	bowlerRepo roster.BowlerRepository,
	matchRepo match.Repository,
) *ScoreSheetService {
	return &ScoreSheetService{
		leagueRepo: leagueRepo,
		weekRepo:   weekRepo,
		bowlerRepo: bowlerRepo,
		matchRepo:  matchRepo,
		now:        time.Now,
	}
}

// PatchScoreSheet applies a partial score sheet to a match. The whole patch is
// rejected when any part of it fails; nothing is persisted in that case.
func (s *ScoreSheetService) PatchScoreSheet(ctx context.Context, leagueID string, weekNumber int, matchID string, patch match.SheetPatch) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreSheetService.PatchScoreSheet")
	defer span.End()

	if err := patch.Validate(); err != nil {
		return match.Match{}, classifyDomainError(err)
	}

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

	definitions, err := s.resolveDefinitions(ctx, item.ID, patch.DefinitionIDs())
	if err != nil {
		return match.Match{}, err
	}

	updated, changes, err := match.ApplySheet(current, item, patch, definitions)
	if err != nil {
		return match.Match{}, classifyDomainError(err)
	}
	if changes.IsEmpty() {
		return updated, nil
	}

	if err := s.matchRepo.SaveScoreSheet(ctx, updated.ID, changes); err != nil {
		return match.Match{}, fmt.Errorf("save score sheet: %w", err)
	}
	updated.UpdatedAt = s.now().UTC()

	return updated, nil
}

// resolveDefinitions loads the league bowlers a patch substitutes in. Unknown ids are
// left out of the map so the sheet reports them against the slot that named them.
func (s *ScoreSheetService) resolveDefinitions(ctx context.Context, leagueID string, ids []string) (map[string]roster.BowlerDefinition, error) {
	out := make(map[string]roster.BowlerDefinition, len(ids))
	for _, id := range ids {
		def, exists, err := s.bowlerRepo.GetByID(ctx, leagueID, id)
		if err != nil {
			return nil, fmt.Errorf("get bowler definition: %w", err)
		}
		if exists {
			out[id] = def
		}
	}
	return out, nil
}

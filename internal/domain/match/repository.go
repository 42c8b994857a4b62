package match

import "context"

// Repository describes match aggregate persistence needs from use cases.
// Create, ReplaceTeams and SaveScoreSheet are atomic.
type Repository interface {
	// ListByWeek returns matches with their team instances and bowlers; games are not loaded.
	ListByWeek(ctx context.Context, weekID string) ([]Match, error)
	// ListByLeague returns the same shallow aggregates for every week of a league.
	ListByLeague(ctx context.Context, leagueID string) ([]Match, error)
	// GetByID returns the full aggregate down to frames.
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	// ReplaceTeams clears both team instances and stores the newly materialized ones.
	ReplaceTeams(ctx context.Context, item Match) error
	SaveScoreSheet(ctx context.Context, matchID string, changes SheetChanges) error
	Delete(ctx context.Context, matchID string) (bool, error)
}

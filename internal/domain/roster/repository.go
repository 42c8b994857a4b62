package roster

import "context"

// TeamRepository describes team definition persistence needs from use cases.
type TeamRepository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]TeamDefinition, error)
	GetByID(ctx context.Context, leagueID, teamID string) (TeamDefinition, bool, error)
	Create(ctx context.Context, item TeamDefinition) error
	Update(ctx context.Context, item TeamDefinition) error
	Delete(ctx context.Context, leagueID, teamID string) (bool, error)
}

// BowlerRepository describes bowler definition persistence needs from use cases.
// List methods return bowlers in definition order.
type BowlerRepository interface {
	ListByTeam(ctx context.Context, leagueID, teamID string) ([]BowlerDefinition, error)
	ListSubstitutes(ctx context.Context, leagueID string) ([]BowlerDefinition, error)
	GetByID(ctx context.Context, leagueID, bowlerID string) (BowlerDefinition, bool, error)
	Create(ctx context.Context, item BowlerDefinition) error
	Update(ctx context.Context, item BowlerDefinition) error
	Delete(ctx context.Context, leagueID, bowlerID string) (bool, error)
}

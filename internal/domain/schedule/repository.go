package schedule

import (
	"context"
	"time"
)

// Repository describes week persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Week, error)
	GetByNumber(ctx context.Context, leagueID string, number int) (Week, bool, error)
	GetByID(ctx context.Context, weekID string) (Week, bool, error)
	// Apply persists a reconcile plan atomically.
	Apply(ctx context.Context, leagueID string, plan Plan) error
	UpdateDate(ctx context.Context, weekID string, date time.Time) error
	Delete(ctx context.Context, weekID string) (bool, error)
}

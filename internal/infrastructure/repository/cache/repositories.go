package cache

import (
	"context"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	basecache "github.com/riskibarqy/bowling-league/internal/platform/cache"
)

const (
	leagueListKey   = "league:list"
	leagueIDPrefix  = "league:id:"
	teamPrefix      = "team:"
	teamListPrefix  = "team:list:"
	teamIDKeyPrefix = "team:id:"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, leagueIDPrefix+leagueID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, leagueListKey, leagueIDPrefix+item.ID)
	return nil
}

func (r *LeagueRepository) Update(ctx context.Context, item league.League) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, leagueListKey, leagueIDPrefix+item.ID)
	return nil
}

// Delete also drops cached teams since they cascade with the league.
func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, leagueID)
	if err != nil {
		return false, err
	}
	r.cache.Delete(ctx, leagueListKey, leagueIDPrefix+leagueID)
	r.cache.DeletePrefix(ctx, teamPrefix)
	return deleted, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type TeamRepository struct {
	next  roster.TeamRepository
	cache *basecache.Store
}

func NewTeamRepository(next roster.TeamRepository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]roster.TeamDefinition, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListPrefix+leagueID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]roster.TeamDefinition(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]roster.TeamDefinition)
	return append([]roster.TeamDefinition(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, leagueID, teamID string) (roster.TeamDefinition, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamIDKey(leagueID, teamID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return roster.TeamDefinition{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item roster.TeamDefinition) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, teamListPrefix+item.LeagueID, teamIDKey(item.LeagueID, item.ID))
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item roster.TeamDefinition) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, teamListPrefix+item.LeagueID, teamIDKey(item.LeagueID, item.ID))
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, leagueID, teamID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, leagueID, teamID)
	if err != nil {
		return false, err
	}
	r.cache.Delete(ctx, teamListPrefix+leagueID, teamIDKey(leagueID, teamID))
	return deleted, nil
}

type cachedTeamByID struct {
	value  roster.TeamDefinition
	exists bool
}

func teamIDKey(leagueID, teamID string) string {
	return teamIDKeyPrefix + leagueID + ":" + teamID
}

package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
)

type LeagueRepository struct {
	store *Store
}

func NewLeagueRepository(store *Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sorted(r.store.leagues, nil), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.leagues[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return item.item, true, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leagues[item.ID]; ok {
		return fmt.Errorf("league %s already exists", item.ID)
	}
	r.store.leagues[item.ID] = row[league.League]{seq: r.store.nextSeq(), item: item}
	return nil
}

func (r *LeagueRepository) Update(_ context.Context, item league.League) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.leagues[item.ID]
	if !ok {
		return fmt.Errorf("league %s not found", item.ID)
	}
	item.SecretaryID = current.item.SecretaryID
	item.CreatedAt = current.item.CreatedAt
	r.store.leagues[item.ID] = row[league.League]{seq: current.seq, item: item}
	return nil
}

func (r *LeagueRepository) Delete(_ context.Context, leagueID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leagues[leagueID]; !ok {
		return false, nil
	}
	r.store.deleteLeagueLocked(leagueID)
	return true, nil
}

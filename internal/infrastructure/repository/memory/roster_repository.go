package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/bowling-league/internal/domain/roster"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.TeamDefinition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sorted(r.store.teams, func(t roster.TeamDefinition) bool { return t.LeagueID == leagueID }), nil
}

func (r *TeamRepository) GetByID(_ context.Context, leagueID, teamID string) (roster.TeamDefinition, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	if !ok || item.item.LeagueID != leagueID {
		return roster.TeamDefinition{}, false, nil
	}
	return item.item, true, nil
}

func (r *TeamRepository) Create(_ context.Context, item roster.TeamDefinition) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leagues[item.LeagueID]; !ok {
		return fmt.Errorf("league %s not found", item.LeagueID)
	}
	if _, ok := r.store.teams[item.ID]; ok {
		return fmt.Errorf("team %s already exists", item.ID)
	}
	r.store.teams[item.ID] = row[roster.TeamDefinition]{seq: r.store.nextSeq(), item: item}
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item roster.TeamDefinition) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.teams[item.ID]
	if !ok || current.item.LeagueID != item.LeagueID {
		return fmt.Errorf("team %s not found", item.ID)
	}
	r.store.teams[item.ID] = row[roster.TeamDefinition]{seq: current.seq, item: item}
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, leagueID, teamID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.teams[teamID]
	if !ok || current.item.LeagueID != leagueID {
		return false, nil
	}
	r.store.deleteTeamLocked(teamID)
	return true, nil
}

type BowlerRepository struct {
	store *Store
}

func NewBowlerRepository(store *Store) *BowlerRepository {
	return &BowlerRepository{store: store}
}

func (r *BowlerRepository) ListByTeam(_ context.Context, leagueID, teamID string) ([]roster.BowlerDefinition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sorted(r.store.bowlers, func(b roster.BowlerDefinition) bool {
		return b.LeagueID == leagueID && b.TeamID == teamID && teamID != ""
	}), nil
}

func (r *BowlerRepository) ListSubstitutes(_ context.Context, leagueID string) ([]roster.BowlerDefinition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sorted(r.store.bowlers, func(b roster.BowlerDefinition) bool {
		return b.LeagueID == leagueID && b.IsSubstitute()
	}), nil
}

func (r *BowlerRepository) GetByID(_ context.Context, leagueID, bowlerID string) (roster.BowlerDefinition, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.bowlers[bowlerID]
	if !ok || item.item.LeagueID != leagueID {
		return roster.BowlerDefinition{}, false, nil
	}
	return cloneBowlerDefinition(item.item), true, nil
}

func (r *BowlerRepository) Create(_ context.Context, item roster.BowlerDefinition) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkTeamLocked(item); err != nil {
		return err
	}
	if _, ok := r.store.bowlers[item.ID]; ok {
		return fmt.Errorf("bowler %s already exists", item.ID)
	}
	r.store.bowlers[item.ID] = row[roster.BowlerDefinition]{seq: r.store.nextSeq(), item: cloneBowlerDefinition(item)}
	return nil
}

// Update keeps the definition order of the bowler even when it changes team.
func (r *BowlerRepository) Update(_ context.Context, item roster.BowlerDefinition) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.bowlers[item.ID]
	if !ok || current.item.LeagueID != item.LeagueID {
		return fmt.Errorf("bowler %s not found", item.ID)
	}
	if err := r.checkTeamLocked(item); err != nil {
		return err
	}
	r.store.bowlers[item.ID] = row[roster.BowlerDefinition]{seq: current.seq, item: cloneBowlerDefinition(item)}
	return nil
}

func (r *BowlerRepository) Delete(_ context.Context, leagueID, bowlerID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.bowlers[bowlerID]
	if !ok || current.item.LeagueID != leagueID {
		return false, nil
	}
	r.store.deleteBowlerLocked(bowlerID)
	return true, nil
}

func (r *BowlerRepository) checkTeamLocked(item roster.BowlerDefinition) error {
	if _, ok := r.store.leagues[item.LeagueID]; !ok {
		return fmt.Errorf("league %s not found", item.LeagueID)
	}
	if item.IsSubstitute() {
		return nil
	}
	team, ok := r.store.teams[item.TeamID]
	if !ok || team.item.LeagueID != item.LeagueID {
		return fmt.Errorf("team %s not found in league %s", item.TeamID, item.LeagueID)
	}
	return nil
}

func cloneBowlerDefinition(b roster.BowlerDefinition) roster.BowlerDefinition {
	if b.Average != nil {
		average := *b.Average
		b.Average = &average
	}
	return b
}

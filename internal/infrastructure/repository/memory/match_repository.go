package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/bowling-league/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) ListByWeek(_ context.Context, weekID string) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := sorted(r.store.matches, func(m match.Match) bool { return m.WeekID == weekID })
	return shallowMatches(items), nil
}

func (r *MatchRepository) ListByLeague(_ context.Context, leagueID string) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := sorted(r.store.matches, func(m match.Match) bool { return m.LeagueID == leagueID })
	return shallowMatches(items), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[matchID]
	if !ok {
		return match.Match{}, false, nil
	}
	return item.item.Clone(), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[item.ID]; ok {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	if _, ok := r.store.weeks[item.WeekID]; !ok {
		return fmt.Errorf("week %s not found", item.WeekID)
	}
	if err := r.checkWeekBookings(item); err != nil {
		return err
	}
	r.store.matches[item.ID] = row[match.Match]{seq: r.store.nextSeq(), item: item.Clone()}
	return nil
}

func (r *MatchRepository) ReplaceTeams(_ context.Context, item match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.matches[item.ID]
	if !ok {
		return fmt.Errorf("match %s not found", item.ID)
	}
	if err := r.checkWeekBookings(item); err != nil {
		return err
	}

	updated := item.Clone()
	updated.CreatedAt = current.item.CreatedAt
	r.store.matches[item.ID] = row[match.Match]{seq: current.seq, item: updated}
	return nil
}

// checkWeekBookings must be called with store.mu held for writing.
func (r *MatchRepository) checkWeekBookings(item match.Match) error {
	others := sorted(r.store.matches, func(m match.Match) bool { return m.WeekID == item.WeekID && m.ID != item.ID })
	return match.CheckBookings(item, others)
}

func (r *MatchRepository) SaveScoreSheet(_ context.Context, matchID string, changes match.SheetChanges) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.matches[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}

	// Work on a copy so a failed change leaves the stored sheet untouched.
	updated := current.item.Clone()
	if changes.Lanes != nil {
		updated.Lanes = *changes.Lanes
	}

	for _, identity := range changes.Bowlers {
		slot := findBowler(&updated, identity.ID)
		if slot == nil {
			return fmt.Errorf("bowler %s not found in match %s", identity.ID, matchID)
		}
		games := slot.Games
		*slot = identity
		slot.Games = games
	}

	for _, change := range changes.Games {
		slot := findBowler(&updated, change.BowlerID)
		if slot == nil {
			return fmt.Errorf("bowler %s not found in match %s", change.BowlerID, matchID)
		}
		idx, ok := slot.Game(change.Number)
		if !ok || slot.Games[idx].ID != change.GameID {
			return fmt.Errorf("game %s not found for bowler %s", change.GameID, change.BowlerID)
		}
		game := &slot.Games[idx]
		game.Total = change.Total
		for _, frame := range change.Frames {
			game.PutFrame(frame)
		}
	}

	r.store.matches[matchID] = row[match.Match]{seq: current.seq, item: updated}
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[matchID]; !ok {
		return false, nil
	}
	delete(r.store.matches, matchID)
	return true, nil
}

func findBowler(m *match.Match, bowlerID string) *match.Bowler {
	for _, slot := range []int{match.SlotTeam1, match.SlotTeam2} {
		team := m.Team(slot)
		if idx, ok := team.Bowler(bowlerID); ok {
			return &team.Bowlers[idx]
		}
	}
	return nil
}

func shallowMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		item = item.Clone()
		for _, team := range []*match.TeamInstance{&item.Team1, &item.Team2} {
			for i := range team.Bowlers {
				team.Bowlers[i].Games = nil
			}
		}
		out = append(out, item)
	}
	return out
}

package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
)

type WeekRepository struct {
	store *Store
}

func NewWeekRepository(store *Store) *WeekRepository {
	return &WeekRepository{store: store}
}

func (r *WeekRepository) ListByLeague(_ context.Context, leagueID string) ([]schedule.Week, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.listLocked(leagueID), nil
}

func (r *WeekRepository) listLocked(leagueID string) []schedule.Week {
	out := sorted(r.store.weeks, func(w schedule.Week) bool { return w.LeagueID == leagueID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (r *WeekRepository) GetByNumber(_ context.Context, leagueID string, number int) (schedule.Week, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.weeks {
		if item.item.LeagueID == leagueID && item.item.Number == number {
			return item.item, true, nil
		}
	}
	return schedule.Week{}, false, nil
}

func (r *WeekRepository) GetByID(_ context.Context, weekID string) (schedule.Week, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.weeks[weekID]
	if !ok {
		return schedule.Week{}, false, nil
	}
	return item.item, true, nil
}

func (r *WeekRepository) Apply(_ context.Context, leagueID string, plan schedule.Plan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leagues[leagueID]; !ok {
		return fmt.Errorf("league %s not found", leagueID)
	}

	taken := make(map[int]struct{})
	for _, week := range r.listLocked(leagueID) {
		taken[week.Number] = struct{}{}
	}
	for _, week := range plan.Create {
		if week.LeagueID != leagueID {
			return fmt.Errorf("week %d belongs to league %s", week.Number, week.LeagueID)
		}
		if _, ok := taken[week.Number]; ok {
			return fmt.Errorf("week %d already exists in league %s", week.Number, leagueID)
		}
		if err := week.Validate(); err != nil {
			return err
		}
	}

	if plan.Delete {
		for id, item := range r.store.weeks {
			if item.item.LeagueID == leagueID && item.item.Number > plan.DeleteAfter {
				r.store.deleteWeekLocked(id)
			}
		}
	}
	for _, week := range plan.Create {
		r.store.weeks[week.ID] = row[schedule.Week]{seq: r.store.nextSeq(), item: week}
	}

	return nil
}

func (r *WeekRepository) UpdateDate(_ context.Context, weekID string, date time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.weeks[weekID]
	if !ok {
		return fmt.Errorf("week %s not found", weekID)
	}
	item.item.Date = date
	r.store.weeks[weekID] = item
	return nil
}

func (r *WeekRepository) Delete(_ context.Context, weekID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.weeks[weekID]; !ok {
		return false, nil
	}
	r.store.deleteWeekLocked(weekID)
	return true, nil
}

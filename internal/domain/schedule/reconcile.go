package schedule

import (
	"sort"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
)

const daysBetweenWeeks = 7

// Plan is the set of week changes that brings a league schedule to its configured length.
type Plan struct {
	Create []Week
	// Weeks numbered above DeleteAfter are removed when Delete is set.
	Delete      bool
	DeleteAfter int
}

func (p Plan) IsEmpty() bool {
	return len(p.Create) == 0 && !p.Delete
}

// Reconcile compares the persisted weeks of a league with its configured week count.
// New weeks have no ID; the caller assigns identities before persisting.
func Reconcile(existing []Week, l league.League) Plan {
	current := len(existing)
	target := l.NumberOfWeeks
	if target < 0 {
		target = 0
	}

	switch {
	case target > current:
		return Plan{Create: appendWeeks(existing, l, target-current)}
	case target < current:
		return Plan{Delete: true, DeleteAfter: keepThrough(existing, target)}
	default:
		return Plan{}
	}
}

// keepThrough returns the number of the target-th week in schedule order, so a gapped
// schedule still keeps exactly target weeks.
func keepThrough(existing []Week, target int) int {
	if target == 0 {
		return 0
	}
	ordered := sortedByNumber(existing)
	return ordered[target-1].Number
}

func sortedByNumber(weeks []Week) []Week {
	ordered := append([]Week(nil), weeks...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })
	return ordered
}

func appendWeeks(existing []Week, l league.League, count int) []Week {
	lastNumber := 0
	next := DateOnly(l.StartDate)
	if len(existing) > 0 {
		ordered := sortedByNumber(existing)
		last := ordered[len(ordered)-1]
		lastNumber = last.Number
		next = DateOnly(last.Date).AddDate(0, 0, daysBetweenWeeks)
	}

	out := make([]Week, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Week{
			LeagueID: l.ID,
			Number:   lastNumber + i + 1,
			Date:     next,
		})
		next = next.AddDate(0, 0, daysBetweenWeeks)
	}
	return out
}

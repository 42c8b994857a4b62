package memory

import (
	"sort"
	"sync"

	"github.com/riskibarqy/bowling-league/internal/domain/league"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
)

// Store keeps every table behind one lock so cascading deletes stay consistent.
// Repositories in this package are views over a shared Store.
type Store struct {
	mu      sync.RWMutex
	seq     int64
	leagues map[string]row[league.League]
	weeks   map[string]row[schedule.Week]
	teams   map[string]row[roster.TeamDefinition]
	bowlers map[string]row[roster.BowlerDefinition]
	matches map[string]row[match.Match]
}

type row[T any] struct {
	seq  int64
	item T
}

func NewStore() *Store {
	return &Store{
		leagues: make(map[string]row[league.League]),
		weeks:   make(map[string]row[schedule.Week]),
		teams:   make(map[string]row[roster.TeamDefinition]),
		bowlers: make(map[string]row[roster.BowlerDefinition]),
		matches: make(map[string]row[match.Match]),
	}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// sorted returns the items of rows accepted by keep in insertion order.
func sorted[T any](rows map[string]row[T], keep func(T) bool) []T {
	matched := make([]row[T], 0, len(rows))
	for _, r := range rows {
		if keep == nil || keep(r.item) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	out := make([]T, 0, len(matched))
	for _, r := range matched {
		out = append(out, r.item)
	}
	return out
}

func (s *Store) deleteLeagueLocked(leagueID string) {
	for id, r := range s.weeks {
		if r.item.LeagueID == leagueID {
			s.deleteWeekLocked(id)
		}
	}
	for id, r := range s.teams {
		if r.item.LeagueID == leagueID {
			s.deleteTeamLocked(id)
		}
	}
	for id, r := range s.bowlers {
		if r.item.LeagueID == leagueID {
			s.deleteBowlerLocked(id)
		}
	}
	delete(s.leagues, leagueID)
}

func (s *Store) deleteWeekLocked(weekID string) {
	for id, r := range s.matches {
		if r.item.WeekID == weekID {
			delete(s.matches, id)
		}
	}
	delete(s.weeks, weekID)
}

func (s *Store) deleteTeamLocked(teamID string) {
	for id, r := range s.bowlers {
		if r.item.TeamID == teamID {
			s.deleteBowlerLocked(id)
		}
	}
	s.detachSnapshots(func(team *match.TeamInstance) {
		if team.DefinitionID == teamID {
			team.DefinitionID = ""
		}
	})
	delete(s.teams, teamID)
}

func (s *Store) deleteBowlerLocked(bowlerID string) {
	s.detachSnapshots(func(team *match.TeamInstance) {
		for i := range team.Bowlers {
			if team.Bowlers[i].DefinitionID == bowlerID {
				team.Bowlers[i].DefinitionID = ""
			}
		}
	})
	delete(s.bowlers, bowlerID)
}

// detachSnapshots clears references from match snapshots to a removed definition.
func (s *Store) detachSnapshots(detach func(team *match.TeamInstance)) {
	for id, r := range s.matches {
		item := r.item
		detach(&item.Team1)
		detach(&item.Team2)
		s.matches[id] = row[match.Match]{seq: r.seq, item: item}
	}
}

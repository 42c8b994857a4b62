package match

import (
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func TestValidateAssignment(t *testing.T) {
	t.Parallel()

	week := testWeek()
	teamA := testTeam("team-a", "Alley Cats")
	teamB := testTeam("team-b", "Pin Pals")
	teamC := testTeam("team-c", "Split Happens")
	teamD := testTeam("team-d", "Gutter Kings")
	foreign := testTeam("team-x", "Elsewhere")
	foreign.LeagueID = "league-2"

	booked := []Match{{
		ID:     "match-1",
		WeekID: week.ID,
		Team1:  TeamInstance{DefinitionID: teamA.ID},
		Team2:  TeamInstance{DefinitionID: teamB.ID},
	}}

	otherWeek := week
	otherWeek.LeagueID = "league-2"

	tests := []struct {
		name    string
		in      Assignment
		matches []Match
		want    error
	}{
		{
			name: "valid",
			in:   Assignment{LeagueID: "league-1", Week: week, Team1: teamC, Team2: teamD, Lanes: Lanes{1, 2}},
		},
		{
			name: "week from another league",
			in:   Assignment{LeagueID: "league-1", Week: otherWeek, Team1: teamC, Team2: teamD, Lanes: Lanes{1, 2}},
			want: ErrCrossLeague,
		},
		{
			name: "team from another league",
			in:   Assignment{LeagueID: "league-1", Week: week, Team1: teamC, Team2: foreign, Lanes: Lanes{1, 2}},
			want: ErrCrossLeague,
		},
		{
			name: "self play",
			in:   Assignment{LeagueID: "league-1", Week: week, Team1: teamC, Team2: teamC, Lanes: Lanes{1, 2}},
			want: ErrSelfPlay,
		},
		{
			name: "lanes not adjacent",
			in:   Assignment{LeagueID: "league-1", Week: week, Team1: teamC, Team2: teamD, Lanes: Lanes{3, 5}},
			want: ErrLanesNotAdjacent,
		},
		{
			name: "lanes descending",
			in:   Assignment{LeagueID: "league-1", Week: week, Team1: teamC, Team2: teamD, Lanes: Lanes{4, 3}},
			want: ErrLanesNotAdjacent,
		},
		{
			name:    "team1 already booked",
			in:      Assignment{LeagueID: "league-1", Week: week, Team1: teamA, Team2: teamC, Lanes: Lanes{5, 6}},
			matches: booked,
			want:    ErrDoubleBooked,
		},
		{
			name:    "booked team in swapped slot",
			in:      Assignment{LeagueID: "league-1", Week: week, Team1: teamC, Team2: teamA, Lanes: Lanes{5, 6}},
			matches: booked,
			want:    ErrDoubleBooked,
		},
		{
			name:    "reassigning own match excludes itself",
			in:      Assignment{LeagueID: "league-1", Week: week, Team1: teamB, Team2: teamA, Lanes: Lanes{5, 6}, MatchID: "match-1"},
			matches: booked,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAssignment(tc.in, tc.matches)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !crerr.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateAssignment_DoubleBookingNamesTeam(t *testing.T) {
	t.Parallel()

	week := testWeek()
	booked := []Match{{ID: "match-1", WeekID: week.ID, Team1: TeamInstance{DefinitionID: "team-a"}, Team2: TeamInstance{DefinitionID: "team-b"}}}
	err := ValidateAssignment(Assignment{
		LeagueID: "league-1",
		Week:     week,
		Team1:    testTeam("team-c", "Split Happens"),
		Team2:    testTeam("team-b", "Pin Pals"),
		Lanes:    Lanes{7, 8},
	}, booked)
	if err == nil {
		t.Fatalf("expected double booking error")
	}
	if got, want := err.Error(), "Pin Pals already has a match the week of 2026-09-01"; got != want {
		t.Fatalf("unexpected message: got=%q want=%q", got, want)
	}
}

func TestCheckBookings(t *testing.T) {
	t.Parallel()

	booked := []Match{
		{ID: "match-1", WeekID: "week-1", Team1: TeamInstance{DefinitionID: "team-a"}, Team2: TeamInstance{DefinitionID: "team-b"}},
		{ID: "match-2", WeekID: "week-2", Team1: TeamInstance{DefinitionID: "team-c"}, Team2: TeamInstance{DefinitionID: "team-d"}},
	}

	tests := []struct {
		name string
		item Match
		want error
	}{
		{
			name: "free teams",
			item: Match{ID: "match-3", WeekID: "week-1", Team1: TeamInstance{DefinitionID: "team-c"}, Team2: TeamInstance{DefinitionID: "team-d"}},
		},
		{
			name: "team already playing this week",
			item: Match{ID: "match-3", WeekID: "week-1", Team1: TeamInstance{DefinitionID: "team-c", Name: "Split Happens"}, Team2: TeamInstance{DefinitionID: "team-b", Name: "Pin Pals"}},
			want: ErrDoubleBooked,
		},
		{
			name: "own match is ignored",
			item: Match{ID: "match-1", WeekID: "week-1", Team1: TeamInstance{DefinitionID: "team-b"}, Team2: TeamInstance{DefinitionID: "team-a"}},
		},
		{
			name: "missing definition is ignored",
			item: Match{ID: "match-3", WeekID: "week-1", Team1: TeamInstance{}, Team2: TeamInstance{DefinitionID: "team-c"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckBookings(tc.item, booked)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !crerr.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/bowling-league/internal/domain/score"
)

type BowlerType string

const (
	BowlerTypeRegular    BowlerType = "regular"
	BowlerTypeSubstitute BowlerType = "substitute"
	BowlerTypeVacant     BowlerType = "vacant"
	BowlerTypeBlind      BowlerType = "blind"
)

func (t BowlerType) Valid() bool {
	switch t {
	case BowlerTypeRegular, BowlerTypeSubstitute, BowlerTypeVacant, BowlerTypeBlind:
		return true
	default:
		return false
	}
}

// RequiresDefinition reports whether a slot of this type must point at a bowler definition.
func (t BowlerType) RequiresDefinition() bool {
	return t == BowlerTypeRegular || t == BowlerTypeSubstitute
}

const (
	SlotTeam1 = 1
	SlotTeam2 = 2
)

// Lanes is the adjacent lane pair a match is bowled on.
type Lanes [2]int

func (l Lanes) Validate() error {
	if l[0] < 1 || l[1] != l[0]+1 {
		return errLanesNotAdjacent(l)
	}
	return nil
}

func (l Lanes) String() string {
	return fmt.Sprintf("%d,%d", l[0], l[1])
}

// Match is a scheduled pairing of two teams within a week.
type Match struct {
	ID        string
	LeagueID  string
	WeekID    string
	Lanes     Lanes
	Team1     TeamInstance
	Team2     TeamInstance
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.LeagueID) == "" {
		return fmt.Errorf("match league id is required")
	}
	if strings.TrimSpace(m.WeekID) == "" {
		return fmt.Errorf("match week id is required")
	}
	return m.Lanes.Validate()
}

func (m Match) Teams() []TeamInstance {
	return []TeamInstance{m.Team1, m.Team2}
}

// Team returns the instance in the given slot.
func (m *Match) Team(slot int) *TeamInstance {
	switch slot {
	case SlotTeam1:
		return &m.Team1
	case SlotTeam2:
		return &m.Team2
	default:
		return nil
	}
}

func (m Match) HasTeamDefinition(teamID string) bool {
	return m.Team1.DefinitionID == teamID || m.Team2.DefinitionID == teamID
}

// Clone returns a deep copy so callers can mutate bowlers and games freely.
func (m Match) Clone() Match {
	m.Team1 = m.Team1.clone()
	m.Team2 = m.Team2.clone()
	return m
}

// TeamInstance is the per-match snapshot of a team definition roster.
type TeamInstance struct {
	ID           string
	MatchID      string
	Slot         int
	DefinitionID string
	Name         string
	Bowlers      []Bowler
}

func (t TeamInstance) Bowler(bowlerID string) (int, bool) {
	for i := range t.Bowlers {
		if t.Bowlers[i].ID == bowlerID {
			return i, true
		}
	}
	return -1, false
}

func (t TeamInstance) clone() TeamInstance {
	bowlers := make([]Bowler, 0, len(t.Bowlers))
	for _, b := range t.Bowlers {
		bowlers = append(bowlers, b.clone())
	}
	t.Bowlers = bowlers
	return t
}

// Bowler is one roster slot of a team instance.
type Bowler struct {
	ID             string
	TeamInstanceID string
	DefinitionID   string
	Name           string
	Type           BowlerType
	Average        *int
	Handicap       *int
	Position       int
	Games          []score.Game
}

// Total is the bowler series, always derived from the per-game totals.
func (b Bowler) Total() int {
	return score.SeriesTotal(b.Games)
}

// HandicapValue treats an unknown handicap as zero.
func (b Bowler) HandicapValue() int {
	if b.Handicap == nil {
		return 0
	}
	return *b.Handicap
}

func (b Bowler) Game(number int) (int, bool) {
	for i := range b.Games {
		if b.Games[i].Number == number {
			return i, true
		}
	}
	return -1, false
}

func (b Bowler) clone() Bowler {
	b.Average = cloneInt(b.Average)
	b.Handicap = cloneInt(b.Handicap)
	games := make([]score.Game, 0, len(b.Games))
	for _, g := range b.Games {
		frames := make([]score.Frame, 0, len(g.Frames))
		for _, f := range g.Frames {
			f.Throws = append([]score.Throw(nil), f.Throws...)
			frames = append(frames, f)
		}
		g.Frames = frames
		games = append(games, g)
	}
	b.Games = games
	return b
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

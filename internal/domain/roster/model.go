package roster

import (
	"fmt"
	"strings"
	"time"
)

// TeamDefinition is a season-level named roster inside a league.
type TeamDefinition struct {
	ID        string
	LeagueID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t TeamDefinition) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.LeagueID) == "" {
		return fmt.Errorf("team league id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// BowlerDefinition is a season-level bowler. An empty TeamID places the bowler in the
// league substitute pool.
type BowlerDefinition struct {
	ID        string
	LeagueID  string
	TeamID    string
	Name      string
	Gender    string
	Average   *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b BowlerDefinition) IsSubstitute() bool {
	return strings.TrimSpace(b.TeamID) == ""
}

func (b BowlerDefinition) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("bowler id is required")
	}
	if strings.TrimSpace(b.LeagueID) == "" {
		return fmt.Errorf("bowler league id is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("bowler name is required")
	}
	if b.Average != nil && (*b.Average < 0 || *b.Average > 300) {
		return fmt.Errorf("bowler average must be between 0 and 300")
	}

	return nil
}

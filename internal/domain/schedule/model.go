package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Week is one scheduled bowling night of a league.
type Week struct {
	ID       string
	LeagueID string
	Number   int
	Date     time.Time
}

func (w Week) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return fmt.Errorf("week id is required")
	}
	if strings.TrimSpace(w.LeagueID) == "" {
		return fmt.Errorf("week league id is required")
	}
	if w.Number < 1 {
		return fmt.Errorf("week number must be >= 1")
	}
	if w.Date.IsZero() {
		return fmt.Errorf("week date is required")
	}

	return nil
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

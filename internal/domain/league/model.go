package league

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultNumberOfWeeks      = 32
	DefaultNumberOfGames      = 3
	DefaultPlayersPerTeam     = 5
	DefaultPointsPerGame      = 1
	DefaultPointsForTotals    = 1
	DefaultHandicapMax        = 210
	DefaultHandicapPercentage = 90
)

// League is the configuration and ownership scope for one bowling season.
type League struct {
	ID                 string
	SecretaryID        string
	Name               string
	StartDate          time.Time
	NumberOfWeeks      int
	NumberOfGames      int
	PlayersPerTeam     int
	PointsPerGame      int
	PointsForTotals    int
	HandicapMax        int
	HandicapPercentage int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// WithDefaults fills zero-valued settings that a new league must not leave empty.
func (l League) WithDefaults() League {
	if l.NumberOfGames == 0 {
		l.NumberOfGames = DefaultNumberOfGames
	}
	if l.PlayersPerTeam == 0 {
		l.PlayersPerTeam = DefaultPlayersPerTeam
	}
	if l.HandicapMax == 0 {
		l.HandicapMax = DefaultHandicapMax
	}
	if l.HandicapPercentage == 0 {
		l.HandicapPercentage = DefaultHandicapPercentage
	}
	return l
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if l.StartDate.IsZero() {
		return fmt.Errorf("league start date is required")
	}
	if l.NumberOfWeeks < 0 {
		return fmt.Errorf("number of weeks must be >= 0")
	}
	if l.NumberOfGames < 1 {
		return fmt.Errorf("number of games must be >= 1")
	}
	if l.PlayersPerTeam < 1 {
		return fmt.Errorf("players per team must be >= 1")
	}
	if l.PointsPerGame < 0 || l.PointsForTotals < 0 {
		return fmt.Errorf("league points must be >= 0")
	}
	if l.HandicapMax < 0 {
		return fmt.Errorf("handicap max must be >= 0")
	}
	if l.HandicapPercentage < 0 || l.HandicapPercentage > 100 {
		return fmt.Errorf("handicap percentage must be between 0 and 100")
	}

	return nil
}

package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type leagueTableModel struct {
	ID                 int64     `db:"id"`
	PublicID           string    `db:"public_id"`
	SecretaryID        string    `db:"secretary_id"`
	Name               string    `db:"name"`
	StartDate          time.Time `db:"start_date"`
	NumberOfWeeks      int       `db:"number_of_weeks"`
	NumberOfGames      int       `db:"number_of_games"`
	PlayersPerTeam     int       `db:"players_per_team"`
	PointsPerGame      int       `db:"points_per_game"`
	PointsForTotals    int       `db:"points_for_totals"`
	HandicapMax        int       `db:"handicap_max"`
	HandicapPercentage int       `db:"handicap_percentage"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type leagueInsertModel struct {
	PublicID           string    `db:"public_id"`
	SecretaryID        string    `db:"secretary_id"`
	Name               string    `db:"name"`
	StartDate          time.Time `db:"start_date"`
	NumberOfWeeks      int       `db:"number_of_weeks"`
	NumberOfGames      int       `db:"number_of_games"`
	PlayersPerTeam     int       `db:"players_per_team"`
	PointsPerGame      int       `db:"points_per_game"`
	PointsForTotals    int       `db:"points_for_totals"`
	HandicapMax        int       `db:"handicap_max"`
	HandicapPercentage int       `db:"handicap_percentage"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type weekTableModel struct {
	ID             int64     `db:"id"`
	PublicID       string    `db:"public_id"`
	LeaguePublicID string    `db:"league_public_id"`
	WeekNumber     int       `db:"week_number"`
	WeekDate       time.Time `db:"week_date"`
}

type weekInsertModel struct {
	PublicID       string    `db:"public_id"`
	LeaguePublicID string    `db:"league_public_id"`
	WeekNumber     int       `db:"week_number"`
	WeekDate       time.Time `db:"week_date"`
}

type teamDefinitionTableModel struct {
	ID             int64     `db:"id"`
	PublicID       string    `db:"public_id"`
	LeaguePublicID string    `db:"league_public_id"`
	Name           string    `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type teamDefinitionInsertModel struct {
	PublicID       string    `db:"public_id"`
	LeaguePublicID string    `db:"league_public_id"`
	Name           string    `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type bowlerDefinitionTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	LeaguePublicID string         `db:"league_public_id"`
	TeamPublicID   sql.NullString `db:"team_public_id"`
	Name           string         `db:"name"`
	Gender         string         `db:"gender"`
	Average        sql.NullInt64  `db:"average"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type bowlerDefinitionInsertModel struct {
	PublicID       string         `db:"public_id"`
	LeaguePublicID string         `db:"league_public_id"`
	TeamPublicID   sql.NullString `db:"team_public_id"`
	Name           string         `db:"name"`
	Gender         string         `db:"gender"`
	Average        sql.NullInt64  `db:"average"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type matchTableModel struct {
	ID             int64         `db:"id"`
	PublicID       string        `db:"public_id"`
	LeaguePublicID string        `db:"league_public_id"`
	WeekPublicID   string        `db:"week_public_id"`
	Lanes          pq.Int64Array `db:"lanes"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	PublicID       string        `db:"public_id"`
	LeaguePublicID string        `db:"league_public_id"`
	WeekPublicID   string        `db:"week_public_id"`
	Lanes          pq.Int64Array `db:"lanes"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

type teamInstanceTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	MatchPublicID      string         `db:"match_public_id"`
	Slot               int            `db:"slot"`
	DefinitionPublicID sql.NullString `db:"definition_public_id"`
	Name               string         `db:"name"`
}

type teamInstanceInsertModel struct {
	PublicID           string         `db:"public_id"`
	MatchPublicID      string         `db:"match_public_id"`
	Slot               int            `db:"slot"`
	DefinitionPublicID sql.NullString `db:"definition_public_id"`
	Name               string         `db:"name"`
}

type instanceBowlerTableModel struct {
	ID                   int64          `db:"id"`
	PublicID             string         `db:"public_id"`
	TeamInstancePublicID string         `db:"team_instance_public_id"`
	DefinitionPublicID   sql.NullString `db:"definition_public_id"`
	Name                 string         `db:"name"`
	BowlerType           string         `db:"bowler_type"`
	Average              sql.NullInt64  `db:"average"`
	Handicap             sql.NullInt64  `db:"handicap"`
	Position             int            `db:"position"`
}

type instanceBowlerInsertModel struct {
	PublicID             string         `db:"public_id"`
	TeamInstancePublicID string         `db:"team_instance_public_id"`
	DefinitionPublicID   sql.NullString `db:"definition_public_id"`
	Name                 string         `db:"name"`
	BowlerType           string         `db:"bowler_type"`
	Average              sql.NullInt64  `db:"average"`
	Handicap             sql.NullInt64  `db:"handicap"`
	Position             int            `db:"position"`
}

type gameTableModel struct {
	ID             int64  `db:"id"`
	PublicID       string `db:"public_id"`
	BowlerPublicID string `db:"bowler_public_id"`
	GameNumber     int    `db:"game_number"`
	Total          int    `db:"total"`
}

type gameInsertModel struct {
	PublicID       string `db:"public_id"`
	BowlerPublicID string `db:"bowler_public_id"`
	GameNumber     int    `db:"game_number"`
	Total          int    `db:"total"`
}

type frameTableModel struct {
	ID           int64          `db:"id"`
	GamePublicID string         `db:"game_public_id"`
	FrameNumber  int            `db:"frame_number"`
	Throw1Type   sql.NullString `db:"throw1_type"`
	Throw1Value  sql.NullInt64  `db:"throw1_value"`
	Throw2Type   sql.NullString `db:"throw2_type"`
	Throw2Value  sql.NullInt64  `db:"throw2_value"`
	Throw3Type   sql.NullString `db:"throw3_type"`
	Throw3Value  sql.NullInt64  `db:"throw3_value"`
}

type frameUpsertModel struct {
	GamePublicID string         `db:"game_public_id"`
	FrameNumber  int            `db:"frame_number"`
	Throw1Type   sql.NullString `db:"throw1_type"`
	Throw1Value  sql.NullInt64  `db:"throw1_value"`
	Throw2Type   sql.NullString `db:"throw2_type"`
	Throw2Value  sql.NullInt64  `db:"throw2_value"`
	Throw3Type   sql.NullString `db:"throw3_type"`
	Throw3Value  sql.NullInt64  `db:"throw3_value"`
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/bowling-league/internal/domain/league"
	qb "github.com/riskibarqy/bowling-league/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("public_id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	query, args, err := qb.InsertModel("leagues", leagueInsertModel{
		PublicID:           item.ID,
		SecretaryID:        item.SecretaryID,
		Name:               item.Name,
		StartDate:          item.StartDate,
		NumberOfWeeks:      item.NumberOfWeeks,
		NumberOfGames:      item.NumberOfGames,
		PlayersPerTeam:     item.PlayersPerTeam,
		PointsPerGame:      item.PointsPerGame,
		PointsForTotals:    item.PointsForTotals,
		HandicapMax:        item.HandicapMax,
		HandicapPercentage: item.HandicapPercentage,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert league: league %s already exists", item.ID)
		}
		return fmt.Errorf("insert league: %w", err)
	}

	return nil
}

// Update never touches secretary_id.
func (r *LeagueRepository) Update(ctx context.Context, item league.League) error {
	query, args, err := qb.Update("leagues").
		Set("name", item.Name).
		Set("start_date", item.StartDate).
		Set("number_of_weeks", item.NumberOfWeeks).
		Set("number_of_games", item.NumberOfGames).
		Set("players_per_team", item.PlayersPerTeam).
		Set("points_per_game", item.PointsPerGame).
		Set("points_for_totals", item.PointsForTotals).
		Set("handicap_max", item.HandicapMax).
		Set("handicap_percentage", item.HandicapPercentage).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update league: %w", err)
	}
	updated, err := affectedAny(result, "update league")
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("update league: not found")
	}

	return nil
}

// Delete relies on ON DELETE CASCADE for weeks, definitions and matches.
func (r *LeagueRepository) Delete(ctx context.Context, leagueID string) (bool, error) {
	query, args, err := qb.DeleteFrom("leagues").
		Where(qb.Eq("public_id", leagueID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete league query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete league: %w", err)
	}

	return affectedAny(result, "delete league")
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:                 row.PublicID,
		SecretaryID:        row.SecretaryID,
		Name:               row.Name,
		StartDate:          row.StartDate.UTC(),
		NumberOfWeeks:      row.NumberOfWeeks,
		NumberOfGames:      row.NumberOfGames,
		PlayersPerTeam:     row.PlayersPerTeam,
		PointsPerGame:      row.PointsPerGame,
		PointsForTotals:    row.PointsForTotals,
		HandicapMax:        row.HandicapMax,
		HandicapPercentage: row.HandicapPercentage,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

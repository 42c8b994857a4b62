package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	qb "github.com/riskibarqy/bowling-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]roster.TeamDefinition, error) {
	query, args, err := qb.Select("*").From("team_definitions").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamDefinitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]roster.TeamDefinition, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, leagueID, teamID string) (roster.TeamDefinition, bool, error) {
	query, args, err := qb.Select("*").From("team_definitions").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", teamID),
		).
		ToSQL()
	if err != nil {
		return roster.TeamDefinition{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamDefinitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.TeamDefinition{}, false, nil
		}
		return roster.TeamDefinition{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item roster.TeamDefinition) error {
	query, args, err := qb.InsertModel("team_definitions", teamDefinitionInsertModel{
		PublicID:       item.ID,
		LeaguePublicID: item.LeagueID,
		Name:           item.Name,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert team: team %s already exists", item.ID)
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item roster.TeamDefinition) error {
	query, args, err := qb.Update("team_definitions").
		Set("name", item.Name).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("league_public_id", item.LeagueID),
			qb.Eq("public_id", item.ID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	updated, err := affectedAny(result, "update team")
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("update team: not found")
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, leagueID, teamID string) (bool, error) {
	query, args, err := qb.DeleteFrom("team_definitions").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", teamID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	return affectedAny(result, "delete team")
}

type BowlerRepository struct {
	db *sqlx.DB
}

func NewBowlerRepository(db *sqlx.DB) *BowlerRepository {
	return &BowlerRepository{db: db}
}

func (r *BowlerRepository) ListByTeam(ctx context.Context, leagueID, teamID string) ([]roster.BowlerDefinition, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID), qb.Eq("team_public_id", teamID))
}

func (r *BowlerRepository) ListSubstitutes(ctx context.Context, leagueID string) ([]roster.BowlerDefinition, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID), qb.IsNull("team_public_id"))
}

func (r *BowlerRepository) list(ctx context.Context, conditions ...qb.Condition) ([]roster.BowlerDefinition, error) {
	query, args, err := qb.Select("*").From("bowler_definitions").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bowlers query: %w", err)
	}

	var rows []bowlerDefinitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bowlers: %w", err)
	}

	out := make([]roster.BowlerDefinition, 0, len(rows))
	for _, row := range rows {
		out = append(out, bowlerFromRow(row))
	}
	return out, nil
}

func (r *BowlerRepository) GetByID(ctx context.Context, leagueID, bowlerID string) (roster.BowlerDefinition, bool, error) {
	query, args, err := qb.Select("*").From("bowler_definitions").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", bowlerID),
		).
		ToSQL()
	if err != nil {
		return roster.BowlerDefinition{}, false, fmt.Errorf("build get bowler by id query: %w", err)
	}

	var row bowlerDefinitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.BowlerDefinition{}, false, nil
		}
		return roster.BowlerDefinition{}, false, fmt.Errorf("get bowler by id: %w", err)
	}
	return bowlerFromRow(row), true, nil
}

func (r *BowlerRepository) Create(ctx context.Context, item roster.BowlerDefinition) error {
	query, args, err := qb.InsertModel("bowler_definitions", bowlerDefinitionInsertModel{
		PublicID:       item.ID,
		LeaguePublicID: item.LeagueID,
		TeamPublicID:   stringToNull(item.TeamID),
		Name:           item.Name,
		Gender:         item.Gender,
		Average:        intPtrToNull(item.Average),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert bowler query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert bowler: bowler %s already exists", item.ID)
		}
		return fmt.Errorf("insert bowler: %w", err)
	}
	return nil
}

func (r *BowlerRepository) Update(ctx context.Context, item roster.BowlerDefinition) error {
	query, args, err := qb.Update("bowler_definitions").
		Set("team_public_id", stringToNull(item.TeamID)).
		Set("name", item.Name).
		Set("gender", item.Gender).
		Set("average", intPtrToNull(item.Average)).
		Set("updated_at", item.UpdatedAt).
		Where(
			qb.Eq("league_public_id", item.LeagueID),
			qb.Eq("public_id", item.ID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update bowler query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update bowler: %w", err)
	}
	updated, err := affectedAny(result, "update bowler")
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("update bowler: not found")
	}
	return nil
}

func (r *BowlerRepository) Delete(ctx context.Context, leagueID, bowlerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("bowler_definitions").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", bowlerID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete bowler query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete bowler: %w", err)
	}
	return affectedAny(result, "delete bowler")
}

func teamFromRow(row teamDefinitionTableModel) roster.TeamDefinition {
	return roster.TeamDefinition{
		ID:        row.PublicID,
		LeagueID:  row.LeaguePublicID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func bowlerFromRow(row bowlerDefinitionTableModel) roster.BowlerDefinition {
	return roster.BowlerDefinition{
		ID:        row.PublicID,
		LeagueID:  row.LeaguePublicID,
		TeamID:    nullStringValue(row.TeamPublicID),
		Name:      row.Name,
		Gender:    row.Gender,
		Average:   nullIntPtr(row.Average),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

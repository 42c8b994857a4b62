package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/bowling-league/internal/domain/schedule"
	qb "github.com/riskibarqy/bowling-league/internal/platform/querybuilder"
)

type WeekRepository struct {
	db *sqlx.DB
}

func NewWeekRepository(db *sqlx.DB) *WeekRepository {
	return &WeekRepository{db: db}
}

func (r *WeekRepository) ListByLeague(ctx context.Context, leagueID string) ([]schedule.Week, error) {
	query, args, err := qb.Select("*").From("weeks").
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("week_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select weeks query: %w", err)
	}

	var rows []weekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select weeks: %w", err)
	}

	out := make([]schedule.Week, 0, len(rows))
	for _, row := range rows {
		out = append(out, weekFromRow(row))
	}
	return out, nil
}

func (r *WeekRepository) GetByNumber(ctx context.Context, leagueID string, number int) (schedule.Week, bool, error) {
	query, args, err := qb.Select("*").From("weeks").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("week_number", number),
		).
		ToSQL()
	if err != nil {
		return schedule.Week{}, false, fmt.Errorf("build get week by number query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *WeekRepository) GetByID(ctx context.Context, weekID string) (schedule.Week, bool, error) {
	query, args, err := qb.Select("*").From("weeks").
		Where(qb.Eq("public_id", weekID)).
		ToSQL()
	if err != nil {
		return schedule.Week{}, false, fmt.Errorf("build get week by id query: %w", err)
	}

	return r.getOne(ctx, query, args)
}

func (r *WeekRepository) getOne(ctx context.Context, query string, args []any) (schedule.Week, bool, error) {
	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return schedule.Week{}, false, nil
		}
		return schedule.Week{}, false, fmt.Errorf("get week: %w", err)
	}
	return weekFromRow(row), true, nil
}

// Apply runs the plan in one transaction: weeks numbered past DeleteAfter go first, then new weeks are appended.
func (r *WeekRepository) Apply(ctx context.Context, leagueID string, plan schedule.Plan) error {
	return withTx(ctx, r.db, "apply schedule plan", func(tx *sqlx.Tx) error {
		if plan.Delete {
			query, args, err := qb.DeleteFrom("weeks").
				Where(
					qb.Eq("league_public_id", leagueID),
					qb.Compare("week_number", ">", plan.DeleteAfter),
				).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build delete trailing weeks query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("delete trailing weeks: %w", err)
			}
		}

		for _, week := range plan.Create {
			query, args, err := qb.InsertModel("weeks", weekInsertModel{
				PublicID:       week.ID,
				LeaguePublicID: leagueID,
				WeekNumber:     week.Number,
				WeekDate:       week.Date,
			}, "")
			if err != nil {
				return fmt.Errorf("build insert week query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("insert week: week %d already exists in league %s", week.Number, leagueID)
				}
				return fmt.Errorf("insert week: %w", err)
			}
		}

		return nil
	})
}

func (r *WeekRepository) UpdateDate(ctx context.Context, weekID string, date time.Time) error {
	query, args, err := qb.Update("weeks").
		Set("week_date", date).
		Where(qb.Eq("public_id", weekID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update week date query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update week date: %w", err)
	}
	updated, err := affectedAny(result, "update week date")
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("update week date: not found")
	}
	return nil
}

func (r *WeekRepository) Delete(ctx context.Context, weekID string) (bool, error) {
	query, args, err := qb.DeleteFrom("weeks").
		Where(qb.Eq("public_id", weekID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete week query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete week: %w", err)
	}
	return affectedAny(result, "delete week")
}

func weekFromRow(row weekTableModel) schedule.Week {
	return schedule.Week{
		ID:       row.PublicID,
		LeagueID: row.LeaguePublicID,
		Number:   row.WeekNumber,
		Date:     schedule.DateOnly(row.WeekDate),
	}
}

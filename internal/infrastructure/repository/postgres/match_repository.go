package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/score"
	qb "github.com/riskibarqy/bowling-league/internal/platform/querybuilder"
)

const frameUpsertSuffix = "ON CONFLICT (game_public_id, frame_number) DO UPDATE SET " +
	"throw1_type = EXCLUDED.throw1_type, throw1_value = EXCLUDED.throw1_value, " +
	"throw2_type = EXCLUDED.throw2_type, throw2_value = EXCLUDED.throw2_value, " +
	"throw3_type = EXCLUDED.throw3_type, throw3_value = EXCLUDED.throw3_value"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByWeek(ctx context.Context, weekID string) ([]match.Match, error) {
	return r.listShallow(ctx, qb.Eq("week_public_id", weekID))
}

func (r *MatchRepository) ListByLeague(ctx context.Context, leagueID string) ([]match.Match, error) {
	return r.listShallow(ctx, qb.Eq("league_public_id", leagueID))
}

func (r *MatchRepository) listShallow(ctx context.Context, condition qb.Condition) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(condition).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	return loadMatches(ctx, r.db, rows, false)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	items, err := loadMatches(ctx, r.db, []matchTableModel{row}, true)
	if err != nil {
		return match.Match{}, false, err
	}
	return items[0], true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	return withTx(ctx, r.db, "create match", func(tx *sqlx.Tx) error {
		if err := checkWeekBookings(ctx, tx, item); err != nil {
			return err
		}

		query, args, err := qb.InsertModel("matches", matchInsertModel{
			PublicID:       item.ID,
			LeaguePublicID: item.LeagueID,
			WeekPublicID:   item.WeekID,
			Lanes:          lanesToArray(item.Lanes),
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      item.UpdatedAt,
		}, "")
		if err != nil {
			return fmt.Errorf("build insert match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}

		return insertTeams(ctx, tx, item)
	})
}

// ReplaceTeams drops both team instances; bowlers, games and frames go with them by cascade.
func (r *MatchRepository) ReplaceTeams(ctx context.Context, item match.Match) error {
	return withTx(ctx, r.db, "replace match teams", func(tx *sqlx.Tx) error {
		if err := checkWeekBookings(ctx, tx, item); err != nil {
			return err
		}

		query, args, err := qb.Update("matches").
			Set("lanes", lanesToArray(item.Lanes)).
			Set("updated_at", item.UpdatedAt).
			Where(qb.Eq("public_id", item.ID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update match query: %w", err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		updated, err := affectedAny(result, "update match")
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("update match: not found")
		}

		clearQuery, clearArgs, err := qb.DeleteFrom("team_instances").
			Where(qb.Eq("match_public_id", item.ID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear team instances query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear team instances: %w", err)
		}

		return insertTeams(ctx, tx, item)
	})
}

func (r *MatchRepository) SaveScoreSheet(ctx context.Context, matchID string, changes match.SheetChanges) error {
	return withTx(ctx, r.db, "save score sheet", func(tx *sqlx.Tx) error {
		update := qb.Update("matches").SetExpr("updated_at", "NOW()")
		if changes.Lanes != nil {
			update = update.Set("lanes", lanesToArray(*changes.Lanes))
		}
		query, args, err := update.Where(qb.Eq("public_id", matchID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build touch match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("touch match: %w", err)
		}

		for _, b := range changes.Bowlers {
			query, args, err := qb.Update("team_instance_bowlers").
				Set("definition_public_id", stringToNull(b.DefinitionID)).
				Set("name", b.Name).
				Set("bowler_type", string(b.Type)).
				Set("average", intPtrToNull(b.Average)).
				Set("handicap", intPtrToNull(b.Handicap)).
				Where(qb.Eq("public_id", b.ID)).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update match bowler query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("update match bowler: %w", err)
			}
		}

		for _, game := range changes.Games {
			query, args, err := qb.Update("games").
				Set("total", game.Total).
				Where(qb.Eq("public_id", game.GameID)).
				ToSQL()
			if err != nil {
				return fmt.Errorf("build update game query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("update game: %w", err)
			}

			for _, frame := range game.Frames {
				query, args, err := qb.InsertModel("frames", frameToModel(game.GameID, frame), frameUpsertSuffix)
				if err != nil {
					return fmt.Errorf("build upsert frame query: %w", err)
				}
				if _, err := tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("upsert frame: %w", err)
				}
			}
		}

		return nil
	})
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	return affectedAny(result, "delete match")
}

// checkWeekBookings locks the week row so concurrent writers for the same week
// serialize, then re-checks item against the week's other matches.
func checkWeekBookings(ctx context.Context, tx *sqlx.Tx, item match.Match) error {
	lockQuery, lockArgs, err := qb.Select("id").From("weeks").
		Where(qb.Eq("public_id", item.WeekID)).
		Limit(1).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock week query: %w", err)
	}
	var weekRowID int64
	if err := tx.GetContext(ctx, &weekRowID, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("lock week: not found")
		}
		return fmt.Errorf("lock week: %w", err)
	}

	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("week_public_id", item.WeekID), qb.Expr("public_id <> ?", item.ID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select week matches query: %w", err)
	}
	var rows []matchTableModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("select week matches: %w", err)
	}
	others, err := loadMatches(ctx, tx, rows, false)
	if err != nil {
		return err
	}

	return match.CheckBookings(item, others)
}

func insertTeams(ctx context.Context, tx *sqlx.Tx, item match.Match) error {
	for _, team := range item.Teams() {
		query, args, err := qb.InsertModel("team_instances", teamInstanceInsertModel{
			PublicID:           team.ID,
			MatchPublicID:      item.ID,
			Slot:               team.Slot,
			DefinitionPublicID: stringToNull(team.DefinitionID),
			Name:               team.Name,
		}, "")
		if err != nil {
			return fmt.Errorf("build insert team instance query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert team instance: %w", err)
		}

		for _, b := range team.Bowlers {
			b.TeamInstanceID = team.ID
			query, args, err := qb.InsertModel("team_instance_bowlers", instanceBowlerToModel(b), "")
			if err != nil {
				return fmt.Errorf("build insert match bowler query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert match bowler: %w", err)
			}

			for _, game := range b.Games {
				query, args, err := qb.InsertModel("games", gameInsertModel{
					PublicID:       game.ID,
					BowlerPublicID: b.ID,
					GameNumber:     game.Number,
					Total:          game.Total,
				}, "")
				if err != nil {
					return fmt.Errorf("build insert game query: %w", err)
				}
				if _, err := tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("insert game: %w", err)
				}
			}
		}
	}
	return nil
}

// loadMatches assembles aggregates for the given rows. Games and frames are only read when withGames is set.
func loadMatches(ctx context.Context, db sqlx.QueryerContext, rows []matchTableModel, withGames bool) ([]match.Match, error) {
	out := make([]match.Match, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	matchIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		matchIDs = append(matchIDs, row.PublicID)
	}

	var instances []teamInstanceTableModel
	if err := selectIn(ctx, db, &instances, "team_instances", "match_public_id", matchIDs, "slot"); err != nil {
		return nil, err
	}
	instanceIDs := make([]string, 0, len(instances))
	for _, row := range instances {
		instanceIDs = append(instanceIDs, row.PublicID)
	}

	var bowlerRows []instanceBowlerTableModel
	if err := selectIn(ctx, db, &bowlerRows, "team_instance_bowlers", "team_instance_public_id", instanceIDs, "position"); err != nil {
		return nil, err
	}

	gamesByBowler := make(map[string][]score.Game)
	if withGames {
		var err error
		gamesByBowler, err = loadGames(ctx, db, bowlerRows)
		if err != nil {
			return nil, err
		}
	}

	bowlersByInstance := make(map[string][]match.Bowler, len(instances))
	for _, row := range bowlerRows {
		b := instanceBowlerFromRow(row)
		b.Games = gamesByBowler[b.ID]
		bowlersByInstance[row.TeamInstancePublicID] = append(bowlersByInstance[row.TeamInstancePublicID], b)
	}

	instancesByMatch := make(map[string][]match.TeamInstance, len(rows))
	for _, row := range instances {
		instancesByMatch[row.MatchPublicID] = append(instancesByMatch[row.MatchPublicID], match.TeamInstance{
			ID:           row.PublicID,
			MatchID:      row.MatchPublicID,
			Slot:         row.Slot,
			DefinitionID: nullStringValue(row.DefinitionPublicID),
			Name:         row.Name,
			Bowlers:      bowlersByInstance[row.PublicID],
		})
	}

	for _, row := range rows {
		item := match.Match{
			ID:        row.PublicID,
			LeagueID:  row.LeaguePublicID,
			WeekID:    row.WeekPublicID,
			Lanes:     lanesFromArray(row.Lanes),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		}
		for _, team := range instancesByMatch[row.PublicID] {
			if slot := item.Team(team.Slot); slot != nil {
				*slot = team
			}
		}
		out = append(out, item)
	}

	return out, nil
}

func loadGames(ctx context.Context, db sqlx.QueryerContext, bowlerRows []instanceBowlerTableModel) (map[string][]score.Game, error) {
	bowlerIDs := make([]string, 0, len(bowlerRows))
	for _, row := range bowlerRows {
		bowlerIDs = append(bowlerIDs, row.PublicID)
	}

	var gameRows []gameTableModel
	if err := selectIn(ctx, db, &gameRows, "games", "bowler_public_id", bowlerIDs, "game_number"); err != nil {
		return nil, err
	}
	gameIDs := make([]string, 0, len(gameRows))
	for _, row := range gameRows {
		gameIDs = append(gameIDs, row.PublicID)
	}

	var frameRows []frameTableModel
	if err := selectIn(ctx, db, &frameRows, "frames", "game_public_id", gameIDs, "frame_number"); err != nil {
		return nil, err
	}
	framesByGame := make(map[string][]score.Frame, len(gameRows))
	for _, row := range frameRows {
		framesByGame[row.GamePublicID] = append(framesByGame[row.GamePublicID], frameFromRow(row))
	}

	out := make(map[string][]score.Game, len(bowlerRows))
	for _, row := range gameRows {
		out[row.BowlerPublicID] = append(out[row.BowlerPublicID], score.Game{
			ID:       row.PublicID,
			BowlerID: row.BowlerPublicID,
			Number:   row.GameNumber,
			Total:    row.Total,
			Frames:   framesByGame[row.PublicID],
		})
	}
	return out, nil
}

func selectIn(ctx context.Context, db sqlx.QueryerContext, dest any, table, column string, ids []string, orderBy string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := qb.Select("*").From(table).
		Where(qb.In(column, toAnySlice(ids))).
		OrderBy(orderBy, "id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select %s query: %w", table, err)
	}
	if err := sqlx.SelectContext(ctx, db, dest, query, args...); err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	return nil
}

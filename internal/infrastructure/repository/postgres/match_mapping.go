package postgres

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
	"github.com/riskibarqy/bowling-league/internal/domain/score"
)

func lanesToArray(l match.Lanes) pq.Int64Array {
	return pq.Int64Array{int64(l[0]), int64(l[1])}
}

func lanesFromArray(values pq.Int64Array) match.Lanes {
	var out match.Lanes
	for i := 0; i < len(values) && i < len(out); i++ {
		out[i] = int(values[i])
	}
	return out
}

// frameToModel spreads the throws of a frame over the three typed slots; unused slots stay NULL.
func frameToModel(gameID string, frame score.Frame) frameUpsertModel {
	out := frameUpsertModel{GamePublicID: gameID, FrameNumber: frame.Number}
	slots := []struct {
		kind  *sql.NullString
		value *sql.NullInt64
	}{
		{&out.Throw1Type, &out.Throw1Value},
		{&out.Throw2Type, &out.Throw2Value},
		{&out.Throw3Type, &out.Throw3Value},
	}
	for i, throw := range frame.Throws {
		if i >= len(slots) {
			break
		}
		*slots[i].kind = sql.NullString{String: string(throw.Type), Valid: true}
		*slots[i].value = sql.NullInt64{Int64: int64(throw.Value), Valid: true}
	}
	return out
}

func frameFromRow(row frameTableModel) score.Frame {
	out := score.Frame{Number: row.FrameNumber, Throws: make([]score.Throw, 0, score.MaxThrowsPerFrame)}
	slots := []struct {
		kind  sql.NullString
		value sql.NullInt64
	}{
		{row.Throw1Type, row.Throw1Value},
		{row.Throw2Type, row.Throw2Value},
		{row.Throw3Type, row.Throw3Value},
	}
	for _, slot := range slots {
		if !slot.kind.Valid {
			continue
		}
		out.Throws = append(out.Throws, score.Throw{Type: score.ThrowType(slot.kind.String), Value: int(slot.value.Int64)})
	}
	return out
}

func instanceBowlerToModel(b match.Bowler) instanceBowlerInsertModel {
	return instanceBowlerInsertModel{
		PublicID:             b.ID,
		TeamInstancePublicID: b.TeamInstanceID,
		DefinitionPublicID:   stringToNull(b.DefinitionID),
		Name:                 b.Name,
		BowlerType:           string(b.Type),
		Average:              intPtrToNull(b.Average),
		Handicap:             intPtrToNull(b.Handicap),
		Position:             b.Position,
	}
}

func instanceBowlerFromRow(row instanceBowlerTableModel) match.Bowler {
	return match.Bowler{
		ID:             row.PublicID,
		TeamInstanceID: row.TeamInstancePublicID,
		DefinitionID:   nullStringValue(row.DefinitionPublicID),
		Name:           row.Name,
		Type:           match.BowlerType(row.BowlerType),
		Average:        nullIntPtr(row.Average),
		Handicap:       nullIntPtr(row.Handicap),
		Position:       row.Position,
	}
}

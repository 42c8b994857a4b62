package match

import (
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bowling-league/internal/domain/roster"
	"github.com/riskibarqy/bowling-league/internal/domain/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySheet_UpdatesTotalsAndFrames(t *testing.T) {
	t.Parallel()

	m := testMatch(&sequenceIDs{})
	bowlerID := m.Team1.Bowlers[0].ID
	patch := SheetPatch{
		Team1: &TeamPatch{Bowlers: []BowlerPatch{{
			ID: bowlerID,
			Games: []GamePatch{{
				Number: intPtr(1),
				Total:  intPtr(150),
				Frames: []FramePatch{
					{Number: intPtr(1), Throws: []score.Throw{{Type: score.ThrowTypeThrow, Value: 9}, {Type: score.ThrowTypeThrow, Value: 1}}},
					{Number: intPtr(2), Throws: []score.Throw{{Type: score.ThrowTypeSplit, Value: 8}, {Type: score.ThrowTypeThrow, Value: 0}}},
				},
			}},
		}}},
	}

	updated, changes, err := ApplySheet(m, testLeague(), patch, nil)
	require.NoError(t, err)

	bowler := updated.Team1.Bowlers[0]
	assert.Equal(t, 150, bowler.Total())
	assert.Equal(t, []int{150, 0, 0}, []int{bowler.Games[0].Total, bowler.Games[1].Total, bowler.Games[2].Total})
	assert.Equal(t, []int{2}, bowler.Games[0].Splits())
	require.Len(t, changes.Games, 1)
	assert.Equal(t, m.Team1.Bowlers[0].Games[0].ID, changes.Games[0].GameID)
	assert.Len(t, changes.Games[0].Frames, 2)

	assert.Equal(t, 0, m.Team1.Bowlers[0].Total(), "input match must not be mutated")
}

func TestApplySheet_SameFramesTwiceIsIdempotent(t *testing.T) {
	t.Parallel()

	m := testMatch(&sequenceIDs{})
	patch := SheetPatch{Team2: &TeamPatch{Bowlers: []BowlerPatch{{
		ID: m.Team2.Bowlers[1].ID,
		Games: []GamePatch{{
			Number: intPtr(2),
			Frames: []FramePatch{{Number: intPtr(10), Throws: []score.Throw{{Type: score.ThrowTypeThrow, Value: 10}, {Type: score.ThrowTypeThrow, Value: 10}, {Type: score.ThrowTypeThrow, Value: 10}}}},
		}},
	}}}}

	once, _, err := ApplySheet(m, testLeague(), patch, nil)
	require.NoError(t, err)
	twice, _, err := ApplySheet(once, testLeague(), patch, nil)
	require.NoError(t, err)

	frames := twice.Team2.Bowlers[1].Games[1].Frames
	require.Len(t, frames, 1)
	assert.Equal(t, []int{10, 10, 10}, frames[0].ThrowList())
}

func TestApplySheet_SubstitutesBowlerWithoutTouchingGames(t *testing.T) {
	t.Parallel()

	m := testMatch(&sequenceIDs{})
	m.Team1.Bowlers[1].Games[0].Total = 201
	sub := roster.BowlerDefinition{ID: "sub-1", LeagueID: "league-1", Name: "Sam Sub", Average: intPtr(110)}

	patch := SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{
		ID:         m.Team1.Bowlers[1].ID,
		Definition: strPtr("sub-1"),
		Type:       typePtr(BowlerTypeSubstitute),
	}}}}

	updated, changes, err := ApplySheet(m, testLeague(), patch, map[string]roster.BowlerDefinition{"sub-1": sub})
	require.NoError(t, err)

	slot := updated.Team1.Bowlers[1]
	assert.Equal(t, "sub-1", slot.DefinitionID)
	assert.Equal(t, BowlerTypeSubstitute, slot.Type)
	assert.Equal(t, 90, *slot.Handicap)
	assert.Equal(t, 201, slot.Games[0].Total)
	require.Len(t, changes.Bowlers, 1)
	assert.Nil(t, changes.Bowlers[0].Games)
}

func TestApplySheet_VacateSlot(t *testing.T) {
	t.Parallel()

	m := testMatch(&sequenceIDs{})
	patch := SheetPatch{Team2: &TeamPatch{Bowlers: []BowlerPatch{{
		ID:         m.Team2.Bowlers[0].ID,
		Definition: strPtr(""),
		Type:       typePtr(BowlerTypeBlind),
	}}}}

	updated, _, err := ApplySheet(m, testLeague(), patch, nil)
	require.NoError(t, err)
	slot := updated.Team2.Bowlers[0]
	assert.Equal(t, BowlerTypeBlind, slot.Type)
	assert.Empty(t, slot.DefinitionID)
	assert.Nil(t, slot.Handicap)
}

func TestApplySheet_UpdatesLanes(t *testing.T) {
	t.Parallel()

	m := testMatch(&sequenceIDs{})
	updated, changes, err := ApplySheet(m, testLeague(), SheetPatch{Lanes: &Lanes{11, 12}}, nil)
	require.NoError(t, err)
	assert.Equal(t, Lanes{11, 12}, updated.Lanes)
	require.NotNil(t, changes.Lanes)
}

func TestApplySheet_Rejections(t *testing.T) {
	t.Parallel()

	m := testMatch(&sequenceIDs{})
	bowlerID := m.Team1.Bowlers[0].ID

	tests := []struct {
		name  string
		patch SheetPatch
		want  error
	}{
		{
			name:  "missing bowler id",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{Games: []GamePatch{{Number: intPtr(1)}}}}}},
			want:  ErrMissingKey,
		},
		{
			name:  "definition without type",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Definition: strPtr("sub-1")}}}},
			want:  ErrIncompletePair,
		},
		{
			name:  "type without definition",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Type: typePtr(BowlerTypeSubstitute)}}}},
			want:  ErrIncompletePair,
		},
		{
			name:  "regular with empty definition",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Definition: strPtr(""), Type: typePtr(BowlerTypeRegular)}}}},
			want:  ErrIncompletePair,
		},
		{
			name:  "unknown type",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Definition: strPtr("sub-1"), Type: typePtr(BowlerType("pro"))}}}},
			want:  ErrInvalidType,
		},
		{
			name:  "missing game number",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Games: []GamePatch{{Total: intPtr(100)}}}}}},
			want:  ErrMissingKey,
		},
		{
			name:  "missing frame number",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Games: []GamePatch{{Number: intPtr(1), Frames: []FramePatch{{}}}}}}}},
			want:  ErrMissingKey,
		},
		{
			name:  "throw value above ten",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Games: []GamePatch{{Number: intPtr(1), Frames: []FramePatch{{Number: intPtr(1), Throws: []score.Throw{{Type: score.ThrowTypeThrow, Value: 12}}}}}}}}}},
			want:  score.ErrInvalidScore,
		},
		{
			name:  "lanes not adjacent",
			patch: SheetPatch{Lanes: &Lanes{3, 5}},
			want:  ErrLanesNotAdjacent,
		},
		{
			name:  "unknown bowler",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: "missing"}}}},
			want:  ErrUnknownReference,
		},
		{
			name:  "bowler of the other team",
			patch: SheetPatch{Team2: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID}}}},
			want:  ErrUnknownReference,
		},
		{
			name:  "game not materialized",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Games: []GamePatch{{Number: intPtr(4), Total: intPtr(100)}}}}}},
			want:  ErrUnknownReference,
		},
		{
			name:  "substitute not found",
			patch: SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: bowlerID, Definition: strPtr("nobody"), Type: typePtr(BowlerTypeSubstitute)}}}},
			want:  ErrUnknownReference,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, changes, err := ApplySheet(m, testLeague(), tc.patch, nil)
			require.Error(t, err)
			assert.True(t, crerr.Is(err, tc.want), "expected %v, got %v", tc.want, err)
			assert.True(t, changes.IsEmpty())
		})
	}
}

func TestApplySheet_SubstituteFromAnotherLeague(t *testing.T) {
	t.Parallel()

	m := testMatch(&sequenceIDs{})
	foreign := roster.BowlerDefinition{ID: "sub-9", LeagueID: "league-2", Name: "Visitor"}
	patch := SheetPatch{Team1: &TeamPatch{Bowlers: []BowlerPatch{{
		ID:         m.Team1.Bowlers[0].ID,
		Definition: strPtr("sub-9"),
		Type:       typePtr(BowlerTypeSubstitute),
	}}}}

	_, _, err := ApplySheet(m, testLeague(), patch, map[string]roster.BowlerDefinition{"sub-9": foreign})
	require.Error(t, err)
	assert.True(t, crerr.Is(err, ErrCrossLeague))
}

func TestSheetPatchDefinitionIDs(t *testing.T) {
	t.Parallel()

	patch := SheetPatch{
		Team1: &TeamPatch{Bowlers: []BowlerPatch{{ID: "a", Definition: strPtr("d1"), Type: typePtr(BowlerTypeSubstitute)}}},
		Team2: &TeamPatch{Bowlers: []BowlerPatch{
			{ID: "b", Definition: strPtr("d1"), Type: typePtr(BowlerTypeSubstitute)},
			{ID: "c", Definition: strPtr(""), Type: typePtr(BowlerTypeVacant)},
			{ID: "d", Definition: strPtr("d2"), Type: typePtr(BowlerTypeRegular)},
		}},
	}
	assert.Equal(t, []string{"d1", "d2"}, patch.DefinitionIDs())
}

package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/bowling-league/internal/domain/user"
	"github.com/riskibarqy/bowling-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/bowling-league/internal/platform/id"
	"github.com/riskibarqy/bowling-league/internal/platform/logging"
	"github.com/riskibarqy/bowling-league/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "secretary-token"

type stubVerifier struct{}

func (stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token != testToken {
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: "secretary-1", Email: "secretary@example.com"}, nil
}

type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	memory.SeedDemo(store, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	leagueRepo := memory.NewLeagueRepository(store)
	weekRepo := memory.NewWeekRepository(store)
	teamRepo := memory.NewTeamRepository(store)
	bowlerRepo := memory.NewBowlerRepository(store)
	matchRepo := memory.NewMatchRepository(store)
	ids := idgen.NewUUIDGenerator()

	handler := NewHandler(
		usecase.NewLeagueService(leagueRepo, weekRepo, ids),
		usecase.NewRosterService(leagueRepo, teamRepo, bowlerRepo, ids),
		usecase.NewScheduleService(leagueRepo, weekRepo),
		usecase.NewMatchService(leagueRepo, weekRepo, teamRepo, bowlerRepo, matchRepo, ids),
		usecase.NewScoreSheetService(leagueRepo, weekRepo, bowlerRepo, matchRepo),
		usecase.NewStandingService(leagueRepo, teamRepo, matchRepo, 2),
		logging.NewNop(),
	)

	return NewRouter(handler, stubVerifier{}, logging.NewNop(), nil)
}

func doRequest(t *testing.T, server http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	require.Nil(t, body.Error, "body: %s", rec.Body.String())
	return body.Data
}

func errorStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body envelope[any]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error, "body: %s", rec.Body.String())
	return body.Error.Status
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorStatus(t, rec))
}

func TestHandler_GetSelf(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/v1/self", "")
	require.Equal(t, http.StatusOK, rec.Code)

	self := decodeData[selfDTO](t, rec)
	assert.Equal(t, "secretary-1", self.UserID)
}

func TestHandler_CreateLeagueGeneratesWeeks(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/v1/leagues",
		`{"name":"Thursday Scratch","start_date":"2026-10-01","number_of_weeks":3}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeData[leagueDTO](t, rec)
	assert.Equal(t, "secretary-1", created.Secretary)
	assert.Equal(t, 3, created.NumberOfGames)
	assert.Equal(t, 90, created.HandicapPercentage)

	rec = doRequest(t, server, http.MethodGet, "/v1/leagues/"+created.ID+"/weeks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	weeks := decodeData[[]weekDTO](t, rec)
	require.Len(t, weeks, 3)
	assert.Equal(t, "2026-10-01", weeks[0].Date)
	assert.Equal(t, "2026-10-08", weeks[1].Date)
}

func TestHandler_CreateLeagueRequiresNameAndStartDate(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/v1/leagues", `{"name":"No Date"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server, http.MethodPost, "/v1/leagues", `{"name":"Bad","start_date":"01/10/2026"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PatchLeagueShrinksSchedule(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPatch, "/v1/leagues/"+memory.DemoLeagueID, `{"number_of_weeks":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, server, http.MethodGet, "/v1/leagues/"+memory.DemoLeagueID+"/weeks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]weekDTO](t, rec), 2)
}

func TestHandler_UnknownWeekIsNotFound(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/v1/leagues/"+memory.DemoLeagueID+"/weeks/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/v1/leagues/"+memory.DemoLeagueID+"/weeks/first", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_BowlerRemoveTeamMovesToSubstitutes(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPatch,
		"/v1/leagues/"+memory.DemoLeagueID+"/teams/demo-team-strikers/bowlers/demo-bowler-04?remove_team=true", `{}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, decodeData[bowlerDTO](t, rec).Team)

	rec = doRequest(t, server, http.MethodGet, "/v1/leagues/"+memory.DemoLeagueID+"/substitutes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	ids := make([]string, 0)
	for _, b := range decodeData[[]bowlerDTO](t, rec) {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{"demo-bowler-04", "demo-bowler-08"}, ids)
}

func TestHandler_BowlerExplicitNullClearsAverage(t *testing.T) {
	server := newTestServer(t)

	path := "/v1/leagues/" + memory.DemoLeagueID + "/substitutes/demo-bowler-08"

	rec := doRequest(t, server, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decodeData[bowlerDTO](t, rec).Average)

	rec = doRequest(t, server, http.MethodPatch, path, `{"name":"Hal Backup"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, decodeData[bowlerDTO](t, rec).Average)

	rec = doRequest(t, server, http.MethodPatch, path, `{"average":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeData[bowlerDTO](t, rec)
	assert.Nil(t, updated.Average)
	assert.Nil(t, updated.Handicap)
}

func TestHandler_CreateMatchRejectsNonAdjacentLanes(t *testing.T) {
	server := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/v1/leagues/"+memory.DemoLeagueID+"/weeks/1/matches",
		`{"team1":"demo-team-strikers","team2":"demo-team-gutter-gang","lanes":[1,3]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", errorStatus(t, rec))
}

func TestHandler_ScoreSheetFlowFeedsStandings(t *testing.T) {
	server := newTestServer(t)

	matchesPath := "/v1/leagues/" + memory.DemoLeagueID + "/weeks/1/matches"
	rec := doRequest(t, server, http.MethodPost, matchesPath,
		`{"team1":"demo-team-strikers","team2":"demo-team-gutter-gang","lanes":[1,2]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeData[matchDTO](t, rec)
	require.Len(t, created.Team1.Bowlers, 4)
	require.Len(t, created.Team2.Bowlers, 4)
	assert.Equal(t, "vacant", created.Team2.Bowlers[3].Type)
	assert.Nil(t, created.Team2.Bowlers[3].Definition)

	bowlerID := created.Team1.Bowlers[0].ID
	patch := fmt.Sprintf(`{"team1":{"bowlers":[{"id":%q,"games":[{"game_number":1,"total":200,
		"frames":[{"frame_number":1,"throws":[{"type":"split","value":7},{"type":"throw","value":2}]}]}]}]}}`, bowlerID)
	rec = doRequest(t, server, http.MethodPatch, matchesPath+"/"+created.ID, patch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, server, http.MethodGet, matchesPath+"/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	fetched := decodeData[matchDTO](t, rec)
	first := fetched.Team1.Bowlers[0]
	assert.Equal(t, 200, first.Total)
	require.NotEmpty(t, first.Games)
	assert.Equal(t, 200, first.Games[0].Total)
	assert.Equal(t, []int{1}, first.Games[0].Splits)

	rec = doRequest(t, server, http.MethodGet, "/v1/leagues/"+memory.DemoLeagueID+"/standings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	standings := decodeData[[]standingDTO](t, rec)
	require.Len(t, standings, 2)
	assert.Equal(t, "demo-team-strikers", standings[0].Team)
	assert.Greater(t, standings[0].PointsWon, 0.0)
}

func TestHandler_ScoreSheetRejectsIncompletePair(t *testing.T) {
	server := newTestServer(t)

	matchesPath := "/v1/leagues/" + memory.DemoLeagueID + "/weeks/1/matches"
	rec := doRequest(t, server, http.MethodPost, matchesPath,
		`{"team1":"demo-team-strikers","team2":"demo-team-gutter-gang","lanes":[3,4]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[matchDTO](t, rec)

	patch := fmt.Sprintf(`{"team1":{"bowlers":[{"id":%q,"definition":"demo-bowler-08"}]}}`, created.Team1.Bowlers[0].ID)
	rec = doRequest(t, server, http.MethodPatch, matchesPath+"/"+created.ID, patch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ScoreSheetTypeWithoutDefinitionKeepsSlot(t *testing.T) {
	server := newTestServer(t)

	matchesPath := "/v1/leagues/" + memory.DemoLeagueID + "/weeks/1/matches"
	rec := doRequest(t, server, http.MethodPost, matchesPath,
		`{"team1":"demo-team-strikers","team2":"demo-team-gutter-gang","lanes":[5,6]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[matchDTO](t, rec)
	slot := created.Team1.Bowlers[0]
	require.NotNil(t, slot.Definition)

	patch := fmt.Sprintf(`{"team1":{"bowlers":[{"id":%q,"type":"vacant"}]}}`, slot.ID)
	rec = doRequest(t, server, http.MethodPatch, matchesPath+"/"+created.ID, patch)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "INVALID_ARGUMENT", errorStatus(t, rec))

	rec = doRequest(t, server, http.MethodGet, matchesPath+"/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeData[matchDTO](t, rec)
	require.NotNil(t, fetched.Team1.Bowlers[0].Definition)
	assert.Equal(t, *slot.Definition, *fetched.Team1.Bowlers[0].Definition)
	assert.Equal(t, "regular", fetched.Team1.Bowlers[0].Type)
}

func TestHandler_ScoreSheetExplicitNullDefinitionVacatesSlot(t *testing.T) {
	server := newTestServer(t)

	matchesPath := "/v1/leagues/" + memory.DemoLeagueID + "/weeks/1/matches"
	rec := doRequest(t, server, http.MethodPost, matchesPath,
		`{"team1":"demo-team-strikers","team2":"demo-team-gutter-gang","lanes":[7,8]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData[matchDTO](t, rec)
	slotID := created.Team1.Bowlers[0].ID

	patch := fmt.Sprintf(`{"team1":{"bowlers":[{"id":%q,"definition":null,"type":"vacant"}]}}`, slotID)
	rec = doRequest(t, server, http.MethodPatch, matchesPath+"/"+created.ID, patch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeData[matchDTO](t, rec)
	assert.Equal(t, slotID, updated.Team1.Bowlers[0].ID)
	assert.Nil(t, updated.Team1.Bowlers[0].Definition)
	assert.Equal(t, "vacant", updated.Team1.Bowlers[0].Type)
	assert.Nil(t, updated.Team1.Bowlers[0].Average)
}

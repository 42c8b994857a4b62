package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/bowling-league/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teams, err := h.rosterService.ListTeams(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	var req teamRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.CreateTeam(ctx, leagueID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(team))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	team, err := h.rosterService.GetTeam(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(team))
}

func (h *Handler) PatchTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchTeam")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	var req teamRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.RenameTeam(ctx, leagueID, teamID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "rename team failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(team))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	if err := h.rosterService.DeleteTeam(ctx, leagueID, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// The bowler handlers serve both team rosters and the substitute pool; the substitute
// routes carry no teamID path value.

func (h *Handler) ListBowlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBowlers")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	bowlers, err := h.rosterService.ListBowlers(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list bowlers failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]bowlerDTO, 0, len(bowlers))
	for _, b := range bowlers {
		items = append(items, bowlerToDTO(b))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateBowler(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBowler")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	var req createBowlerRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	bowler, err := h.rosterService.CreateBowler(ctx, leagueID, teamID, usecase.BowlerInput{
		Name:    req.Name,
		Gender:  req.Gender,
		Average: req.Average,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create bowler failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, bowlerToDTO(bowler))
}

func (h *Handler) GetBowler(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBowler")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	bowlerID := pathValue(r, "bowlerID")
	bowler, err := h.rosterService.GetBowler(ctx, leagueID, teamID, bowlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get bowler failed", "league_id", leagueID, "bowler_id", bowlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bowlerToDTO(bowler))
}

func (h *Handler) PatchBowler(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchBowler")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	bowlerID := pathValue(r, "bowlerID")

	removeTeam := false
	if raw := strings.TrimSpace(r.URL.Query().Get("remove_team")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: remove_team must be a boolean", usecase.ErrInvalidInput))
			return
		}
		removeTeam = parsed
	}

	var req updateBowlerRequest
	body, err := h.decodeRequest(ctx, r, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bowler, err := h.rosterService.UpdateBowler(ctx, leagueID, teamID, bowlerID, usecase.BowlerPatch{
		Name:         req.Name,
		Gender:       req.Gender,
		Average:      req.Average,
		ClearAverage: req.Average == nil && hasJSONKey(body, "average"),
		TeamID:       req.Team,
		RemoveTeam:   removeTeam,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update bowler failed", "league_id", leagueID, "bowler_id", bowlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bowlerToDTO(bowler))
}

func (h *Handler) DeleteBowler(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBowler")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	teamID := pathValue(r, "teamID")
	bowlerID := pathValue(r, "bowlerID")
	if err := h.rosterService.DeleteBowler(ctx, leagueID, teamID, bowlerID); err != nil {
		h.logger.WarnContext(ctx, "delete bowler failed", "league_id", leagueID, "bowler_id", bowlerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// hasJSONKey reports whether a top level key is present in body, null included.
func hasJSONKey(body []byte, key string) bool {
	var fields map[string]any
	if err := sonic.Unmarshal(body, &fields); err != nil {
		return false
	}
	_, ok := fields[key]
	return ok
}

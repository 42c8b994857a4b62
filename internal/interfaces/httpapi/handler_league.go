package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/bowling-league/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req leagueRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Name == nil || req.StartDate == nil {
		writeError(ctx, w, fmt.Errorf("%w: name and start_date are required", usecase.ErrInvalidInput))
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.CreateLeague(ctx, principal, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(item))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

// ReplaceLeague is the PUT variant: name and start date must be present, omitted
// settings keep their stored values.
func (h *Handler) ReplaceLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceLeague")
	defer span.End()

	var req leagueRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Name == nil || req.StartDate == nil {
		writeError(ctx, w, fmt.Errorf("%w: name and start_date are required", usecase.ErrInvalidInput))
		return
	}

	h.updateLeague(w, r.WithContext(ctx), req)
}

func (h *Handler) PatchLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchLeague")
	defer span.End()

	var req leagueRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.updateLeague(w, r.WithContext(ctx), req)
}

func (h *Handler) updateLeague(w http.ResponseWriter, r *http.Request, req leagueRequest) {
	ctx := r.Context()
	leagueID := pathValue(r, "leagueID")

	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.UpdateLeague(ctx, leagueID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLeague")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	if err := h.leagueService.DeleteLeague(ctx, leagueID); err != nil {
		h.logger.WarnContext(ctx, "delete league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	standings, err := h.standingService.GetStandings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		items = append(items, standingToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

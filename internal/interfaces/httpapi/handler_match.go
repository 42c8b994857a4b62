package httpapi

import "net/http"

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListMatches(ctx, leagueID, number)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "league_id", leagueID, "week_number", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, leagueID, number, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "league_id", leagueID, "week_number", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	matchID := pathValue(r, "matchID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetMatch(ctx, leagueID, number, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "league_id", leagueID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) ReassignMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReassignMatch")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	matchID := pathValue(r, "matchID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.ReassignMatch(ctx, leagueID, number, matchID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "reassign match failed", "league_id", leagueID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) PatchScoreSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchScoreSheet")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	matchID := pathValue(r, "matchID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req scoreSheetRequest
	body, err := h.decodeRequest(ctx, r, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := req.markPresentKeys(body); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scoreSheetService.PatchScoreSheet(ctx, leagueID, number, matchID, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "patch score sheet failed", "league_id", leagueID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	matchID := pathValue(r, "matchID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.DeleteMatch(ctx, leagueID, number, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "league_id", leagueID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

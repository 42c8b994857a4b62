package httpapi

import "net/http"

func (h *Handler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeeks")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	weeks, err := h.scheduleService.ListWeeks(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list weeks failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weekDTO, 0, len(weeks))
	for _, week := range weeks {
		items = append(items, weekToDTO(week))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeek")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	week, err := h.scheduleService.GetWeek(ctx, leagueID, number)
	if err != nil {
		h.logger.WarnContext(ctx, "get week failed", "league_id", leagueID, "week_number", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekToDTO(week))
}

func (h *Handler) PatchWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchWeek")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req weekRequest
	if _, err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	week, err := h.scheduleService.RescheduleWeek(ctx, leagueID, number, date)
	if err != nil {
		h.logger.WarnContext(ctx, "reschedule week failed", "league_id", leagueID, "week_number", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekToDTO(week))
}

func (h *Handler) DeleteWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteWeek")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	number, err := weekNumberFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.scheduleService.DeleteWeek(ctx, leagueID, number); err != nil {
		h.logger.WarnContext(ctx, "delete week failed", "league_id", leagueID, "week_number", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

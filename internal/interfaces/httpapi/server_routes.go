package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	authed := func(next http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, next)
	}

	mux.Handle("GET /v1/self", authed(handler.GetSelf))

	registerLeagueRoutes(mux, handler, authed)
	registerRosterRoutes(mux, handler, authed)
	registerScheduleRoutes(mux, handler, authed)
	registerMatchRoutes(mux, handler, authed)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler, authed func(http.HandlerFunc) http.Handler) {
	mux.Handle("GET /v1/leagues", authed(handler.ListLeagues))
	mux.Handle("POST /v1/leagues", authed(handler.CreateLeague))
	mux.Handle("GET /v1/leagues/{leagueID}", authed(handler.GetLeague))
	mux.Handle("PUT /v1/leagues/{leagueID}", authed(handler.ReplaceLeague))
	mux.Handle("PATCH /v1/leagues/{leagueID}", authed(handler.PatchLeague))
	mux.Handle("DELETE /v1/leagues/{leagueID}", authed(handler.DeleteLeague))
	mux.Handle("GET /v1/leagues/{leagueID}/standings", authed(handler.GetStandings))
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler, authed func(http.HandlerFunc) http.Handler) {
	mux.Handle("GET /v1/leagues/{leagueID}/teams", authed(handler.ListTeams))
	mux.Handle("POST /v1/leagues/{leagueID}/teams", authed(handler.CreateTeam))
	mux.Handle("GET /v1/leagues/{leagueID}/teams/{teamID}", authed(handler.GetTeam))
	mux.Handle("PATCH /v1/leagues/{leagueID}/teams/{teamID}", authed(handler.PatchTeam))
	mux.Handle("DELETE /v1/leagues/{leagueID}/teams/{teamID}", authed(handler.DeleteTeam))

	mux.Handle("GET /v1/leagues/{leagueID}/teams/{teamID}/bowlers", authed(handler.ListBowlers))
	mux.Handle("POST /v1/leagues/{leagueID}/teams/{teamID}/bowlers", authed(handler.CreateBowler))
	mux.Handle("GET /v1/leagues/{leagueID}/teams/{teamID}/bowlers/{bowlerID}", authed(handler.GetBowler))
	mux.Handle("PATCH /v1/leagues/{leagueID}/teams/{teamID}/bowlers/{bowlerID}", authed(handler.PatchBowler))
	mux.Handle("DELETE /v1/leagues/{leagueID}/teams/{teamID}/bowlers/{bowlerID}", authed(handler.DeleteBowler))

	mux.Handle("GET /v1/leagues/{leagueID}/substitutes", authed(handler.ListBowlers))
	mux.Handle("POST /v1/leagues/{leagueID}/substitutes", authed(handler.CreateBowler))
	mux.Handle("GET /v1/leagues/{leagueID}/substitutes/{bowlerID}", authed(handler.GetBowler))
	mux.Handle("PATCH /v1/leagues/{leagueID}/substitutes/{bowlerID}", authed(handler.PatchBowler))
	mux.Handle("DELETE /v1/leagues/{leagueID}/substitutes/{bowlerID}", authed(handler.DeleteBowler))
}

func registerScheduleRoutes(mux *http.ServeMux, handler *Handler, authed func(http.HandlerFunc) http.Handler) {
	mux.Handle("GET /v1/leagues/{leagueID}/weeks", authed(handler.ListWeeks))
	mux.Handle("GET /v1/leagues/{leagueID}/weeks/{weekNumber}", authed(handler.GetWeek))
	mux.Handle("PATCH /v1/leagues/{leagueID}/weeks/{weekNumber}", authed(handler.PatchWeek))
	mux.Handle("DELETE /v1/leagues/{leagueID}/weeks/{weekNumber}", authed(handler.DeleteWeek))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, authed func(http.HandlerFunc) http.Handler) {
	mux.Handle("GET /v1/leagues/{leagueID}/weeks/{weekNumber}/matches", authed(handler.ListMatches))
	mux.Handle("POST /v1/leagues/{leagueID}/weeks/{weekNumber}/matches", authed(handler.CreateMatch))
	mux.Handle("GET /v1/leagues/{leagueID}/weeks/{weekNumber}/matches/{matchID}", authed(handler.GetMatch))
	mux.Handle("PUT /v1/leagues/{leagueID}/weeks/{weekNumber}/matches/{matchID}", authed(handler.ReassignMatch))
	mux.Handle("PATCH /v1/leagues/{leagueID}/weeks/{weekNumber}/matches/{matchID}", authed(handler.PatchScoreSheet))
	mux.Handle("DELETE /v1/leagues/{leagueID}/weeks/{weekNumber}/matches/{matchID}", authed(handler.DeleteMatch))
}

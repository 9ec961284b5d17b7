package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, cfg RouterConfig) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}
	if !cfg.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matches", handler.ListMatchesByLeague)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/clock", handler.GetMatchClock)
	mux.HandleFunc("GET /v1/matches/{matchID}/clock/stream", handler.StreamMatchClock)

	mux.HandleFunc("GET /v1/news", handler.ListNews)
	mux.HandleFunc("GET /v1/news/{slug}", handler.GetNewsBySlug)

	mux.HandleFunc("GET /v1/ads", handler.ListAds)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, role string) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdmin(verifier, role, fn))
	}

	admin("POST /v1/admin/leagues", handler.CreateLeague)
	admin("PUT /v1/admin/leagues/{leagueID}", handler.UpdateLeague)
	admin("DELETE /v1/admin/leagues/{leagueID}", handler.DeleteLeague)

	admin("POST /v1/admin/teams", handler.CreateTeam)
	admin("PUT /v1/admin/teams/{teamID}", handler.UpdateTeam)
	admin("DELETE /v1/admin/teams/{teamID}", handler.DeleteTeam)

	admin("POST /v1/admin/players", handler.CreatePlayer)
	admin("PUT /v1/admin/players/{playerID}", handler.UpdatePlayer)
	admin("DELETE /v1/admin/players/{playerID}", handler.DeletePlayer)

	admin("POST /v1/admin/matches", handler.CreateMatch)
	admin("PUT /v1/admin/matches/{matchID}", handler.UpdateMatch)
	admin("DELETE /v1/admin/matches/{matchID}", handler.DeleteMatch)
	admin("PUT /v1/admin/matches/{matchID}/status", handler.UpdateMatchStatus)
	admin("PUT /v1/admin/matches/{matchID}/score", handler.UpdateMatchScore)

	admin("POST /v1/admin/news", handler.CreateNews)
	admin("PUT /v1/admin/news/{articleID}", handler.UpdateNews)
	admin("DELETE /v1/admin/news/{articleID}", handler.DeleteNews)

	admin("GET /v1/admin/ads/campaigns", handler.ListAdCampaigns)
	admin("POST /v1/admin/ads/campaigns", handler.CreateAdCampaign)
	admin("GET /v1/admin/ads/campaigns/{campaignID}", handler.GetAdCampaign)
	admin("PUT /v1/admin/ads/campaigns/{campaignID}", handler.UpdateAdCampaign)
	admin("DELETE /v1/admin/ads/campaigns/{campaignID}", handler.DeleteAdCampaign)
	admin("GET /v1/admin/ads/campaigns/{campaignID}/images", handler.ListAdImages)
	admin("POST /v1/admin/ads/campaigns/{campaignID}/images", handler.CreateAdImage)
	admin("PUT /v1/admin/ads/images/{imageID}", handler.UpdateAdImage)
	admin("DELETE /v1/admin/ads/images/{imageID}", handler.DeleteAdImage)
}

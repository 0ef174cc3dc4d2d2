package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("GET /api/dashboard", handler.GetDashboard)
}

func registerClubRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/clubs", handler.ListClubs)
	mux.HandleFunc("GET /api/clubs/{clubID}", handler.GetClub)
	mux.HandleFunc("POST /api/clubs", handler.CreateClub)
	mux.HandleFunc("PUT /api/clubs/{clubID}", handler.UpdateClub)
	mux.HandleFunc("DELETE /api/clubs/{clubID}", handler.DeleteClub)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("PUT /api/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/players/{playerID}", handler.DeletePlayer)
}

func registerContractRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/contracts", handler.ListContracts)
	mux.HandleFunc("GET /api/contracts/{contractID}", handler.GetContract)
	mux.HandleFunc("POST /api/contracts", handler.CreateContract)
	mux.HandleFunc("PUT /api/contracts/{contractID}", handler.UpdateContract)
	mux.HandleFunc("DELETE /api/contracts/{contractID}", handler.DeleteContract)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/matches/stadiums", handler.ListStadiums)
	mux.HandleFunc("GET /api/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /api/matches", handler.CreateMatch)
	mux.HandleFunc("PUT /api/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /api/matches/{matchID}", handler.DeleteMatch)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler, limiter *LoginLimiter, clientIP *ClientIPResolver) {
	mux.Handle("POST /api/auth/login", RateLimit(limiter, clientIP, http.HandlerFunc(handler.Login)))
}

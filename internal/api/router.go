package api

import (
	"github.com/gorilla/mux"

	"github.com/daybook-app/daybook/internal/api/recovery"
	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/services"
	"github.com/daybook-app/daybook/internal/store"
)

// NewRouter wires all API routes over the given store.
func NewRouter(st store.Store, tokens *auth.TokenIssuer) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	// Domain services
	authSvc := services.NewAuthService(st, tokens)
	daySvc := services.NewDayService(st)
	journalSvc := services.NewJournalService(st)
	configSvc := services.NewConfigService(st)

	// Handlers
	healthHandler := NewHealthHandler(st)
	authHandler := NewAuthHandler(authSvc)
	dayHandler := NewDayHandler(daySvc)
	journalHandler := NewJournalHandler(journalSvc)
	configHandler := NewConfigHandler(configSvc)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Auth endpoints (no token required)
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Everything below requires a bearer token.
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(tokens.Middleware)

	protected.HandleFunc("/auth/update", authHandler.UpdateUser).Methods("PUT")

	protected.HandleFunc("/data/day/{date}", dayHandler.GetDay).Methods("GET")
	protected.HandleFunc("/data/day/{date}", dayHandler.SaveDay).Methods("POST")

	protected.HandleFunc("/data/journal", journalHandler.SaveJournal).Methods("POST")
	protected.HandleFunc("/data/journal/day/{date}", journalHandler.ListJournals).Methods("GET")
	protected.HandleFunc("/data/journal/{id}", journalHandler.DeleteJournal).Methods("DELETE")

	protected.HandleFunc("/data/config", configHandler.GetConfig).Methods("GET")
	protected.HandleFunc("/data/config", configHandler.SaveConfig).Methods("POST")

	return router
}

// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pucklab/rinkside/internal/api"
	"github.com/pucklab/rinkside/internal/api/dashboard"
	"github.com/pucklab/rinkside/internal/api/draftpicks"
	"github.com/pucklab/rinkside/internal/api/nav"
	"github.com/pucklab/rinkside/internal/api/salarycap"
	"github.com/pucklab/rinkside/internal/api/standings"
	"github.com/pucklab/rinkside/internal/api/teamselect"
	"github.com/pucklab/rinkside/internal/config"
	"github.com/pucklab/rinkside/internal/nhl"
	"github.com/pucklab/rinkside/internal/salary"
	"github.com/pucklab/rinkside/internal/selection"
)

func newServer(cfg *config.Config, nhlClient *nhl.Client, sel *selection.Store) *http.Server {
	router := http.NewServeMux()

	// Handler package singletons
	dashboard.InitHandlers(nhlClient)
	standings.InitHandlers(nhlClient)
	salarycap.InitHandlers(salary.NewFixtureSource())
	draftpicks.InitHandlers(cfg.Draft.Year)

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
		api.WithSelection(sel),
	)

	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Main page handler
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		dashboard.HandleDashboardPage(w, r)
	})

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Navigation routes
	mux.HandleFunc("/api/v1/nav/menu", nav.HandleMenu)
	mux.HandleFunc("/api/v1/nav/menu/close", nav.HandleMenuClose)

	// Standings and team stat routes
	mux.HandleFunc("/standings", standings.HandleStandingsPage)
	mux.HandleFunc("/api/v1/standings", standings.HandleStandingsList)
	mux.HandleFunc("/api/v1/teams/{abbrev}/stats", standings.HandleTeamStats)
	mux.HandleFunc("/api/v1/teams/{abbrev}/power", standings.HandleTeamPower)

	// Selection routes
	mux.HandleFunc("POST /api/v1/selection/team", teamselect.HandleSelectTeam)
	mux.HandleFunc("POST /api/v1/selection/scheme", teamselect.HandleSelectScheme)

	// Salary cap routes
	mux.HandleFunc("/salary", salarycap.HandleSalaryPage)
	mux.HandleFunc("/api/v1/salary", salarycap.HandleSalaryData)

	// Draft routes
	mux.HandleFunc("/draft", draftpicks.HandleDraftPage)
	mux.HandleFunc("/api/v1/draft/picks", draftpicks.HandleDraftPicks)

	// Static file handling with logging and environment awareness
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "build/bin/static"
	}
	fs := http.FileServer(http.Dir(staticDir))

	mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Str("static_dir", staticDir).
			Msg("Static file request")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))
}

// internal/api/salarycap/handlers.go
package salarycap

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pucklab/rinkside/internal/api/apiutil"
	"github.com/pucklab/rinkside/internal/api/htmx"
	"github.com/pucklab/rinkside/internal/salary"
	"github.com/pucklab/rinkside/internal/selection"
	salarytempl "github.com/pucklab/rinkside/internal/templates/components/salarycap"
	"github.com/pucklab/rinkside/internal/templates/layouts"
)

const salaryQueryTimeout = 10 * time.Second

var (
	source     salary.Source
	sourceOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s salary.Source) {
	if s == nil {
		return
	}
	sourceOnce.Do(func() {
		source = s
	})
}

func loadSource() salary.Source {
	if source != nil {
		return source
	}
	return salary.NewFixtureSource()
}

type capResponse struct {
	Summary   salary.TeamCapSummary   `json:"summary"`
	Contracts []salary.PlayerContract `json:"contracts"`
}

// /salary
func HandleSalaryPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	store, err := selection.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Selection store missing from request context")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	snap := store.Current()

	data := buildCapData(r.Context(), snap.Team.Abbreviation, snap.Team.Name)
	page := layouts.Base(salarytempl.CapTable(data), snap)
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render salary page", "Failed to render page") {
		return
	}
}

// /api/v1/salary
func HandleSalaryData(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	store, err := selection.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Selection store missing from request context")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	snap := store.Current()

	if htmx.IsRequest(r) {
		data := buildCapData(r.Context(), snap.Team.Abbreviation, snap.Team.Name)
		component := salarytempl.CapTable(data)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render salary table", "Failed to render table") {
			return
		}
		return
	}

	summary, contracts, err := fetchCapData(r.Context(), snap.Team.Abbreviation)
	if err != nil {
		logger.Error().Err(err).Str("team", snap.Team.Abbreviation).Msg("Failed to load salary data")
		http.Error(w, "Failed to load salary data", http.StatusInternalServerError)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, capResponse{Summary: summary, Contracts: contracts})
}

// buildCapData loads both halves of the cap view and collapses any failure
// into the component's single error state. The cause is logged, not shown.
func buildCapData(ctx context.Context, abbrev, teamName string) salarytempl.CapPageData {
	summary, contracts, err := fetchCapData(ctx, abbrev)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("team", abbrev).Msg("Failed to load salary data")
		return salarytempl.CapPageData{TeamName: teamName, LoadFailed: true}
	}
	return salarytempl.CapPageData{
		TeamName:  teamName,
		Summary:   summary,
		Contracts: contracts,
	}
}

// fetchCapData loads contracts and the cap summary concurrently. Either
// failure fails the whole load.
func fetchCapData(ctx context.Context, abbrev string) (salary.TeamCapSummary, []salary.PlayerContract, error) {
	src := loadSource()

	ctx, cancel := context.WithTimeout(ctx, salaryQueryTimeout)
	defer cancel()

	var (
		summary   salary.TeamCapSummary
		contracts []salary.PlayerContract
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contracts, err = src.Contracts(gctx, abbrev)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = src.CapSummary(gctx, abbrev)
		return err
	})
	if err := g.Wait(); err != nil {
		return salary.TeamCapSummary{}, nil, err
	}
	return summary, contracts, nil
}

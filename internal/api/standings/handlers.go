// internal/api/standings/handlers.go
package standings

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pucklab/rinkside/internal/api/apiutil"
	"github.com/pucklab/rinkside/internal/api/htmx"
	"github.com/pucklab/rinkside/internal/nhl"
	"github.com/pucklab/rinkside/internal/selection"
	"github.com/pucklab/rinkside/internal/stats"
	standingstempl "github.com/pucklab/rinkside/internal/templates/components/standings"
	"github.com/pucklab/rinkside/internal/templates/layouts"
)

const (
	standingsQueryTimeout = 10 * time.Second
	teamAbbrevParam       = "abbrev"
)

var (
	client     *nhl.Client
	clientOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *nhl.Client) {
	if c == nil {
		return
	}
	clientOnce.Do(func() {
		client = c
	})
}

func loadClient() *nhl.Client {
	return client
}

// /standings
func HandleStandingsPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	c := loadClient()
	if c == nil {
		logger.Error().Msg("NHL client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	store, err := selection.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Selection store missing from request context")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	snap := store.Current()

	ctx, cancel := context.WithTimeout(r.Context(), standingsQueryTimeout)
	defer cancel()

	rows, err := c.Standings(ctx)
	if err != nil {
		respondStandingsError(w, logger, err)
		return
	}

	table := standingstempl.Table(standingstempl.TableData{
		Standings:       rows,
		SelectedAbbrev:  snap.Team.Abbreviation,
		GroupByDivision: true,
	})
	page := layouts.Base(table, snap)
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render standings page", "Failed to render page") {
		return
	}
}

// /api/v1/standings
func HandleStandingsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	c := loadClient()
	if c == nil {
		logger.Error().Msg("NHL client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), standingsQueryTimeout)
	defer cancel()

	rows, err := c.Standings(ctx)
	if err != nil {
		respondStandingsError(w, logger, err)
		return
	}

	if !htmx.IsRequest(r) {
		apiutil.WriteJSON(w, http.StatusOK, rows)
		return
	}

	selected := ""
	if store, err := selection.FromContext(r.Context()); err == nil {
		selected = store.SelectedTeam().Abbreviation
	}
	component := standingstempl.Table(standingstempl.TableData{
		Standings:       rows,
		SelectedAbbrev:  selected,
		GroupByDivision: true,
	})
	if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render standings table", "Failed to render table") {
		return
	}
}

// /api/v1/teams/{abbrev}/stats
func HandleTeamStats(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	c := loadClient()
	if c == nil {
		logger.Error().Msg("NHL client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	abbrev, err := teamAbbrevFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), standingsQueryTimeout)
	defer cancel()

	rows, err := c.Standings(ctx)
	if err != nil {
		respondStandingsError(w, logger, err)
		return
	}

	collection, err := stats.TeamStats(rows, abbrev)
	if err != nil {
		var notFound stats.NotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("team", abbrev).Msg("Failed to compute team stats")
		http.Error(w, "Failed to load team stats", http.StatusInternalServerError)
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, collection)
}

// /api/v1/teams/{abbrev}/power
func HandleTeamPower(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	c := loadClient()
	if c == nil {
		logger.Error().Msg("NHL client not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	abbrev, err := teamAbbrevFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), standingsQueryTimeout)
	defer cancel()

	rows, err := c.Standings(ctx)
	if err != nil {
		respondStandingsError(w, logger, err)
		return
	}

	for _, row := range rows {
		if row.TeamAbbrev == abbrev {
			apiutil.WriteJSON(w, http.StatusOK, stats.Power(row))
			return
		}
	}
	http.Error(w, "Team not found", http.StatusNotFound)
}

func teamAbbrevFromRequest(r *http.Request) (string, error) {
	raw := strings.ToUpper(strings.TrimSpace(r.PathValue(teamAbbrevParam)))
	if len(raw) != 3 {
		return "", apiutil.FieldError{Field: "abbrev", Reason: "must be a three letter team code"}
	}
	return raw, nil
}

// respondStandingsError maps upstream failures to client-facing errors
// without leaking upstream details.
func respondStandingsError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var upstream nhl.UpstreamError
	if errors.As(err, &upstream) {
		logger.Error().Int("upstream_status", upstream.Status).Msg("NHL standings fetch rejected upstream")
		http.Error(w, "Standings temporarily unavailable", http.StatusBadGateway)
		return
	}
	logger.Error().Err(err).Msg("Failed to fetch standings")
	http.Error(w, "Failed to load standings", http.StatusInternalServerError)
}

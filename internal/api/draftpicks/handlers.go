// internal/api/draftpicks/handlers.go
package draftpicks

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pucklab/rinkside/internal/api/apiutil"
	"github.com/pucklab/rinkside/internal/api/htmx"
	"github.com/pucklab/rinkside/internal/draft"
	"github.com/pucklab/rinkside/internal/selection"
	drafttempl "github.com/pucklab/rinkside/internal/templates/components/draftpicks"
	"github.com/pucklab/rinkside/internal/templates/layouts"
)

const yearQueryKey = "year"

var (
	defaultYear     int
	defaultYearOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(year int) {
	if year <= 0 {
		return
	}
	defaultYearOnce.Do(func() {
		defaultYear = year
	})
}

func loadDefaultYear() int {
	if defaultYear > 0 {
		return defaultYear
	}
	return time.Now().Year()
}

// /draft
func HandleDraftPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	store, err := selection.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Selection store missing from request context")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	snap := store.Current()

	year, err := yearFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := drafttempl.PicksPageData{
		TeamName: snap.Team.Name,
		Year:     year,
		Picks:    draft.Picks(snap.Team.Abbreviation, year),
	}
	page := layouts.Base(drafttempl.PicksTable(data), snap)
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render draft page", "Failed to render page") {
		return
	}
}

// /api/v1/draft/picks
func HandleDraftPicks(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	store, err := selection.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Selection store missing from request context")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	snap := store.Current()

	year, err := yearFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	picks := draft.Picks(snap.Team.Abbreviation, year)

	if !htmx.IsRequest(r) {
		apiutil.WriteJSON(w, http.StatusOK, picks)
		return
	}

	component := drafttempl.PicksTable(drafttempl.PicksPageData{
		TeamName: snap.Team.Name,
		Year:     year,
		Picks:    picks,
	})
	if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render draft picks", "Failed to render picks") {
		return
	}
}

func yearFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(yearQueryKey)
	if raw == "" {
		return loadDefaultYear(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return 0, apiutil.FieldError{Field: yearQueryKey, Reason: "must be a four digit year"}
	}
	return year, nil
}

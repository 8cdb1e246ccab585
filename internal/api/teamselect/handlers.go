// internal/api/teamselect/handlers.go
package teamselect

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pucklab/rinkside/internal/api/apiutil"
	"github.com/pucklab/rinkside/internal/api/htmx"
	"github.com/pucklab/rinkside/internal/selection"
	"github.com/pucklab/rinkside/internal/teams"
)

type teamRequest struct {
	Team string `json:"team"`
}

type schemeRequest struct {
	Scheme string `json:"scheme"`
}

// /api/v1/selection/team
func HandleSelectTeam(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	store, err := selection.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Selection store missing from request context")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	abbrev, err := teamFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	store.SetTeamAbbrev(abbrev)
	logger.Info().Str("team", abbrev).Msg("Team selection changed")

	if htmx.IsRequest(r) {
		// The palette feeds the page-level CSS variables, so a full
		// refresh is the swap that actually recolors everything.
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, store.Current().Team)
}

// /api/v1/selection/scheme
func HandleSelectScheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	store, err := selection.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Selection store missing from request context")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	raw, err := schemeFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !teams.ValidScheme(raw) {
		http.Error(w, "Invalid color scheme", http.StatusBadRequest)
		return
	}
	scheme := teams.ColorScheme(raw)

	store.SetColorScheme(scheme)
	logger.Info().Str("scheme", raw).Msg("Color scheme changed")

	if htmx.IsRequest(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, store.Current().Palette)
}

func teamFromRequest(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req teamRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return "", err
		}
		return normalizeAbbrev(req.Team)
	}
	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return normalizeAbbrev(r.FormValue("team"))
}

func schemeFromRequest(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req schemeRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return "", err
		}
		return strings.TrimSpace(req.Scheme), nil
	}
	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.FormValue("scheme")), nil
}

func normalizeAbbrev(raw string) (string, error) {
	abbrev := strings.ToUpper(strings.TrimSpace(raw))
	if len(abbrev) != 3 {
		return "", apiutil.FieldError{Field: "team", Reason: "must be a three letter team code"}
	}
	return abbrev, nil
}

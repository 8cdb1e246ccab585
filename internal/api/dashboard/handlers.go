// internal/api/dashboard/handlers.go
package dashboard

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pucklab/rinkside/internal/api/apiutil"
	"github.com/pucklab/rinkside/internal/nhl"
	"github.com/pucklab/rinkside/internal/selection"
	"github.com/pucklab/rinkside/internal/stats"
	"github.com/pucklab/rinkside/internal/teams"
	navtempl "github.com/pucklab/rinkside/internal/templates/components/nav"
	standingstempl "github.com/pucklab/rinkside/internal/templates/components/standings"
	"github.com/pucklab/rinkside/internal/templates/components/teamswitcher"
	"github.com/pucklab/rinkside/internal/templates/layouts"
)

const dashboardQueryTimeout = 10 * time.Second

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

// / (dashboard)
func HandleDashboardPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	c := client
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

	ctx, cancel := context.WithTimeout(r.Context(), dashboardQueryTimeout)
	defer cancel()

	rows, err := c.Standings(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch standings for dashboard")
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	switcher := teamswitcher.Switcher(teamswitcher.SwitcherData{
		Teams:          teams.All(),
		SelectedAbbrev: snap.Team.Abbreviation,
		Scheme:         snap.Scheme,
	})

	content := dashboardContent(rows, snap, logger.Warn)
	body := stack(navtempl.TopBar(switcher), content)
	page := layouts.Base(body, snap)
	if !apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render dashboard page", "Failed to render page") {
		return
	}
}

// dashboardContent builds the selected team's card plus the league table.
// A team missing from the snapshot degrades to the table alone.
func dashboardContent(rows []nhl.Standing, snap selection.Snapshot, warn func() *zerolog.Event) templ.Component {
	table := standingstempl.Table(standingstempl.TableData{
		Standings:       rows,
		SelectedAbbrev:  snap.Team.Abbreviation,
		GroupByDivision: true,
	})

	collection, err := stats.TeamStats(rows, snap.Team.Abbreviation)
	if err != nil {
		var notFound stats.NotFoundError
		if errors.As(err, &notFound) {
			warn().Str("team", snap.Team.Abbreviation).Msg("Selected team absent from standings snapshot")
		}
		return table
	}

	var standing nhl.Standing
	for _, row := range rows {
		if row.TeamAbbrev == snap.Team.Abbreviation {
			standing = row
			break
		}
	}

	card := standingstempl.TeamCard(standingstempl.TeamCardData{
		Standing: standing,
		Stats:    collection,
		Power:    stats.Power(standing),
	})
	return stack(card, table)
}

// stack renders components in sequence.
func stack(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// internal/nhl/client.go
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the public NHL web API.
	DefaultBaseURL = "https://api-web.nhle.com/v1"

	// DefaultCacheTTL bounds how long a standings snapshot is reused before
	// the upstream is consulted again. Staleness within this window is
	// acceptable to every consumer.
	DefaultCacheTTL = 5 * time.Minute

	requestTimeout = 15 * time.Second
	userAgent      = "rinkside/1.0"
)

// UpstreamError reports a non-2xx response from the standings source. It is
// propagated to the caller and not retried here.
type UpstreamError struct {
	Status int
}

func (e UpstreamError) Error() string {
	return "nhl: upstream returned status " + strconv.Itoa(e.Status)
}

// Client fetches and normalizes league standings. Safe for concurrent use.
type Client struct {
	http     *http.Client
	baseURL  string
	cacheTTL time.Duration
	clock    func() time.Time

	mu        sync.Mutex
	cached    []Standing
	fetchedAt time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream base URL (tests point this at httptest).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCacheTTL overrides the snapshot reuse window. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cacheTTL = ttl }
}

func withClock(clock func() time.Time) Option {
	return func(c *Client) { c.clock = clock }
}

// NewClient creates a standings client with production defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: requestTimeout},
		baseURL:  DefaultBaseURL,
		cacheTTL: DefaultCacheTTL,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// localized is the upstream's nested wrapper for localized name fields.
type localized struct {
	Default string `json:"default"`
}

// standingsResponse mirrors the upstream document; field names differ from
// the canonical Standing shape and are normalized in toStanding.
type standingsResponse struct {
	Standings []struct {
		TeamAbbrev         localized `json:"teamAbbrev"`
		TeamName           localized `json:"teamName"`
		TeamLogo           string    `json:"teamLogo"`
		DivisionName       string    `json:"divisionName"`
		ConferenceName     string    `json:"conferenceName"`
		GamesPlayed        int       `json:"gamesPlayed"`
		Wins               int       `json:"wins"`
		Losses             int       `json:"losses"`
		OtLosses           int       `json:"otLosses"`
		Points             int       `json:"points"`
		PointPctg          float64   `json:"pointPctg"`
		RegulationWins     int       `json:"regulationWins"`
		GoalFor            int       `json:"goalFor"`
		GoalAgainst        int       `json:"goalAgainst"`
		GoalDifferential   int       `json:"goalDifferential"`
		StreakCode         string    `json:"streakCode"`
		StreakCount        int       `json:"streakCount"`
		L10Wins            int       `json:"l10Wins"`
		L10Losses          int       `json:"l10Losses"`
		L10OtLosses        int       `json:"l10OtLosses"`
		WildcardSequence   int       `json:"wildcardSequence"`
		DivisionSequence   int       `json:"divisionSequence"`
		ConferenceSequence int       `json:"conferenceSequence"`
		LeagueSequence     int       `json:"leagueSequence"`
		ClinchIndicator    string    `json:"clinchIndicator"`
	} `json:"standings"`
}

// Standings returns the current league snapshot, one Standing per team in
// upstream order. Snapshots are cached for the configured TTL.
func (c *Client) Standings(ctx context.Context) ([]Standing, error) {
	c.mu.Lock()
	if c.cached != nil && c.clock().Sub(c.fetchedAt) < c.cacheTTL {
		snapshot := make([]Standing, len(c.cached))
		copy(snapshot, c.cached)
		c.mu.Unlock()
		return snapshot, nil
	}
	c.mu.Unlock()

	standings, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cached = standings
	c.fetchedAt = c.clock()
	c.mu.Unlock()

	snapshot := make([]Standing, len(standings))
	copy(snapshot, standings)
	return snapshot, nil
}

func (c *Client) fetch(ctx context.Context) ([]Standing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/standings/now", nil)
	if err != nil {
		return nil, fmt.Errorf("build standings request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, UpstreamError{Status: resp.StatusCode}
	}

	var payload standingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode standings: %w", err)
	}

	standings := make([]Standing, 0, len(payload.Standings))
	for _, row := range payload.Standings {
		standings = append(standings, Standing{
			TeamAbbrev:         row.TeamAbbrev.Default,
			TeamName:           row.TeamName.Default,
			TeamLogo:           row.TeamLogo,
			DivisionName:       row.DivisionName,
			ConferenceName:     row.ConferenceName,
			GamesPlayed:        row.GamesPlayed,
			Wins:               row.Wins,
			Losses:             row.Losses,
			OtLosses:           row.OtLosses,
			Points:             row.Points,
			PointsPctg:         row.PointPctg,
			RegulationWins:     row.RegulationWins,
			GoalsFor:           row.GoalFor,
			GoalsAgainst:       row.GoalAgainst,
			GoalDiff:           row.GoalDifferential,
			StreakCode:         row.StreakCode,
			StreakCount:        row.StreakCount,
			L10Wins:            row.L10Wins,
			L10Losses:          row.L10Losses,
			L10OtLosses:        row.L10OtLosses,
			WildcardSequence:   row.WildcardSequence,
			DivisionSequence:   row.DivisionSequence,
			ConferenceSequence: row.ConferenceSequence,
			LeagueSequence:     row.LeagueSequence,
			ClinchIndicator:    row.ClinchIndicator,
		})
	}

	log.Info().
		Int("teams", len(standings)).
		Dur("duration", time.Since(start)).
		Msg("Fetched league standings")

	return standings, nil
}

// Refresh forces a fetch regardless of cache freshness. Used by the
// scheduled cache warmer; errors are logged by the caller.
func (c *Client) Refresh(ctx context.Context) error {
	standings, err := c.fetch(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.cached = standings
	c.fetchedAt = c.clock()
	c.mu.Unlock()
	return nil
}

func record(wins, losses, otLosses int) string {
	return fmt.Sprintf("%d-%d-%d", wins, losses, otLosses)
}

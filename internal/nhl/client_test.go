package nhl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const standingsFixture = `{
	"standings": [
		{
			"teamAbbrev": {"default": "BOS"},
			"teamName": {"default": "Boston Bruins"},
			"teamLogo": "https://assets.nhle.com/logos/nhl/svg/BOS_light.svg",
			"divisionName": "Atlantic",
			"conferenceName": "Eastern",
			"gamesPlayed": 20,
			"wins": 12,
			"losses": 6,
			"otLosses": 2,
			"points": 26,
			"pointPctg": 0.65,
			"regulationWins": 10,
			"goalFor": 62,
			"goalAgainst": 55,
			"goalDifferential": 7,
			"streakCode": "W",
			"streakCount": 3,
			"l10Wins": 6,
			"l10Losses": 3,
			"l10OtLosses": 1,
			"wildcardSequence": 0,
			"divisionSequence": 2,
			"conferenceSequence": 4,
			"leagueSequence": 7,
			"clinchIndicator": "x"
		},
		{
			"teamAbbrev": {"default": "CGY"},
			"teamName": {"default": "Calgary Flames"},
			"teamLogo": "https://assets.nhle.com/logos/nhl/svg/CGY_light.svg",
			"divisionName": "Pacific",
			"conferenceName": "Western",
			"gamesPlayed": 20,
			"wins": 9,
			"losses": 9,
			"otLosses": 2,
			"points": 20,
			"pointPctg": 0.5,
			"regulationWins": 7,
			"goalFor": 55,
			"goalAgainst": 60,
			"goalDifferential": -5,
			"streakCode": "L",
			"streakCount": 1,
			"l10Wins": 4,
			"l10Losses": 5,
			"l10OtLosses": 1,
			"wildcardSequence": 3,
			"divisionSequence": 5,
			"conferenceSequence": 9,
			"leagueSequence": 18
		}
	]
}`

func newTestServer(t *testing.T, hits *atomic.Int64, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		if r.URL.Path != "/standings/now" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestStandingsNormalizesUpstreamFields(t *testing.T) {
	server := newTestServer(t, nil, http.StatusOK, standingsFixture)
	client := NewClient(WithBaseURL(server.URL))

	standings, err := client.Standings(context.Background())
	if err != nil {
		t.Fatalf("Standings() error: %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("got %d standings, want 2", len(standings))
	}

	bos := standings[0]
	if bos.TeamAbbrev != "BOS" {
		t.Fatalf("teamAbbrev = %q, want BOS (localized wrapper must be unwrapped)", bos.TeamAbbrev)
	}
	if bos.TeamName != "Boston Bruins" {
		t.Fatalf("teamName = %q", bos.TeamName)
	}
	if bos.PointsPctg != 0.65 {
		t.Fatalf("pointsPctg = %v, want 0.65 (from upstream pointPctg)", bos.PointsPctg)
	}
	if bos.GoalsFor != 62 || bos.GoalsAgainst != 55 {
		t.Fatalf("goals = %d/%d, want 62/55", bos.GoalsFor, bos.GoalsAgainst)
	}
	if bos.GoalDiff != bos.GoalsFor-bos.GoalsAgainst {
		t.Fatalf("goalDiff = %d, want %d", bos.GoalDiff, bos.GoalsFor-bos.GoalsAgainst)
	}
	if bos.ClinchIndicator != "x" {
		t.Fatalf("clinchIndicator = %q, want x", bos.ClinchIndicator)
	}

	cgy := standings[1]
	if cgy.ClinchIndicator != "" {
		t.Fatalf("absent clinchIndicator decoded as %q", cgy.ClinchIndicator)
	}
	if cgy.GoalDiff != -5 {
		t.Fatalf("goalDiff = %d, want -5", cgy.GoalDiff)
	}
}

func TestStandingsUpstreamError(t *testing.T) {
	server := newTestServer(t, nil, http.StatusBadGateway, "bad gateway")
	client := NewClient(WithBaseURL(server.URL))

	_, err := client.Standings(context.Background())
	var upstream UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want UpstreamError", err)
	}
	if upstream.Status != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", upstream.Status, http.StatusBadGateway)
	}
}

func TestStandingsCachesWithinTTL(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, http.StatusOK, standingsFixture)

	now := time.Unix(1_700_000_000, 0)
	client := NewClient(
		WithBaseURL(server.URL),
		WithCacheTTL(5*time.Minute),
		withClock(func() time.Time { return now }),
	)

	ctx := context.Background()
	if _, err := client.Standings(ctx); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := client.Standings(ctx); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("upstream hit %d times within TTL, want 1", hits.Load())
	}

	now = now.Add(6 * time.Minute)
	if _, err := client.Standings(ctx); err != nil {
		t.Fatalf("post-TTL fetch: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("upstream hit %d times after TTL, want 2", hits.Load())
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits, http.StatusOK, standingsFixture)
	client := NewClient(WithBaseURL(server.URL))

	ctx := context.Background()
	if _, err := client.Standings(ctx); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := client.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("upstream hit %d times, want 2", hits.Load())
	}
}

func TestRecordFormatting(t *testing.T) {
	s := Standing{Wins: 12, Losses: 6, OtLosses: 2, L10Wins: 8, L10Losses: 1, L10OtLosses: 1}
	if got := s.Record(); got != "12-6-2" {
		t.Fatalf("Record() = %q", got)
	}
	if got := s.L10Record(); got != "8-1-1" {
		t.Fatalf("L10Record() = %q", got)
	}
}

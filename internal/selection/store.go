// internal/selection/store.go

// Package selection holds the session-scoped team and color-scheme state and
// propagates the active palette to the presentation layer.
package selection

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pucklab/rinkside/internal/prefs"
	"github.com/pucklab/rinkside/internal/teams"
)

// ErrNotInitialized is returned when a handler asks for the selection store
// without the WithSelection middleware installed. This is a programming
// error, not a user-recoverable condition.
var ErrNotInitialized = errors.New("selection: store used outside provider")

// KV is the slice of the preference store the selection store needs.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Snapshot is the settled state published to subscribers after every
// transition, carrying the palette the presentation layer binds to.
type Snapshot struct {
	Team    teams.TeamConfig
	Scheme  teams.ColorScheme
	Palette teams.Palette
}

// Store is the single selection instance per session. Reads and writes are
// safe from concurrent handlers; transitions persist synchronously and then
// publish to subscribers.
type Store struct {
	kv KV

	mu          sync.RWMutex
	teamAbbrev  string
	scheme      teams.ColorScheme
	subscribers []func(Snapshot)
}

// New creates a store at the compile-time defaults: the registry's default
// team and the regular scheme. Callers typically follow with Restore.
func New(kv KV) *Store {
	return &Store{
		kv:         kv,
		teamAbbrev: teams.DefaultAbbrev,
		scheme:     teams.SchemeRegular,
	}
}

// Restore overwrites the defaults from persisted state, once per session.
// Unknown team abbreviations and unrecognized schemes are silently ignored;
// corrupted local state must never block the UI. Publishes the settled state
// either way.
func (s *Store) Restore(ctx context.Context) {
	logger := log.Ctx(ctx)

	if saved, ok, err := s.kv.Get(prefs.KeySelectedTeam); err != nil {
		logger.Warn().Err(err).Msg("Failed to read persisted team selection")
	} else if ok {
		if _, known := teams.ByAbbrev(saved); known {
			s.mu.Lock()
			s.teamAbbrev = saved
			s.mu.Unlock()
		} else {
			logger.Debug().Str("team", saved).Msg("Ignoring unknown persisted team")
		}
	}

	if saved, ok, err := s.kv.Get(prefs.KeyColorScheme); err != nil {
		logger.Warn().Err(err).Msg("Failed to read persisted color scheme")
	} else if ok {
		if teams.ValidScheme(saved) {
			s.mu.Lock()
			s.scheme = teams.ColorScheme(saved)
			s.mu.Unlock()
		} else {
			logger.Debug().Str("scheme", saved).Msg("Ignoring unknown persisted scheme")
		}
	}

	s.publish()
}

// SetTeamAbbrev accepts abbrev as given: the value is not validated against
// the registry here. Unknown abbreviations resolve to the first registry
// entry at lookup time. The write-through to the preference store is
// synchronous with the state change; a failed write is logged, not retried.
func (s *Store) SetTeamAbbrev(abbrev string) {
	s.mu.Lock()
	s.teamAbbrev = abbrev
	s.mu.Unlock()

	if err := s.kv.Set(prefs.KeySelectedTeam, abbrev); err != nil {
		log.Warn().Err(err).Str("team", abbrev).Msg("Failed to persist team selection")
	}
	s.publish()
}

// SetColorScheme accepts scheme as given and persists it synchronously.
func (s *Store) SetColorScheme(scheme teams.ColorScheme) {
	s.mu.Lock()
	s.scheme = scheme
	s.mu.Unlock()

	if err := s.kv.Set(prefs.KeyColorScheme, string(scheme)); err != nil {
		log.Warn().Err(err).Str("scheme", string(scheme)).Msg("Failed to persist color scheme")
	}
	s.publish()
}

// SelectedTeam resolves the current abbreviation against the registry,
// falling back to the first entry when the abbreviation is unknown.
func (s *Store) SelectedTeam() teams.TeamConfig {
	s.mu.RLock()
	abbrev := s.teamAbbrev
	s.mu.RUnlock()

	if team, ok := teams.ByAbbrev(abbrev); ok {
		return team
	}
	return teams.First()
}

// TeamAbbrev returns the raw stored abbreviation, which may not name a
// registry entry.
func (s *Store) TeamAbbrev() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teamAbbrev
}

// Scheme returns the active color scheme.
func (s *Store) Scheme() teams.ColorScheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scheme
}

// Palette returns the active team's palette for the active scheme.
func (s *Store) Palette() teams.Palette {
	return s.SelectedTeam().Colors.Scheme(s.Scheme())
}

// Current returns the settled state as a Snapshot.
func (s *Store) Current() Snapshot {
	team := s.SelectedTeam()
	scheme := s.Scheme()
	return Snapshot{
		Team:    team,
		Scheme:  scheme,
		Palette: team.Colors.Scheme(scheme),
	}
}

// Subscribe registers fn to run after every settled transition, including
// the restore step. Subscribers run synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *Store) publish() {
	snapshot := s.Current()
	s.mu.RLock()
	subscribers := make([]func(Snapshot), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()
	for _, fn := range subscribers {
		fn(snapshot)
	}
}

type contextKey struct{}

// WithStore attaches the store to ctx; installed once by the server's
// selection middleware.
func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, store)
}

// FromContext retrieves the store installed by WithStore. Access without
// passing through that initialization boundary fails with ErrNotInitialized.
func FromContext(ctx context.Context) (*Store, error) {
	store, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || store == nil {
		return nil, ErrNotInitialized
	}
	return store, nil
}

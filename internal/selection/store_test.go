package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/pucklab/rinkside/internal/prefs"
	"github.com/pucklab/rinkside/internal/teams"
)

type fakeKV struct {
	values map[string]string
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string]string)}
}

func (f *fakeKV) Get(key string) (string, bool, error) {
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *fakeKV) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func TestNewStartsAtDefaults(t *testing.T) {
	store := New(newFakeKV())

	if got := store.SelectedTeam().Abbreviation; got != teams.DefaultAbbrev {
		t.Fatalf("selected team = %q, want %q", got, teams.DefaultAbbrev)
	}
	if got := store.Scheme(); got != teams.SchemeRegular {
		t.Fatalf("scheme = %q, want regular", got)
	}
}

func TestRestoreValidPersistedState(t *testing.T) {
	kv := newFakeKV()
	kv.values[prefs.KeySelectedTeam] = "BOS"
	kv.values[prefs.KeyColorScheme] = "alternate"

	store := New(kv)
	store.Restore(context.Background())

	if got := store.SelectedTeam().Abbreviation; got != "BOS" {
		t.Fatalf("restored team = %q, want BOS", got)
	}
	if got := store.Scheme(); got != teams.SchemeAlternate {
		t.Fatalf("restored scheme = %q, want alternate", got)
	}
}

func TestRestoreInvalidValuesFallBackToDefaults(t *testing.T) {
	kv := newFakeKV()
	kv.values[prefs.KeySelectedTeam] = "INVALID"
	kv.values[prefs.KeyColorScheme] = "invalid-scheme"

	store := New(kv)
	store.Restore(context.Background())

	if got := store.SelectedTeam().Abbreviation; got != teams.DefaultAbbrev {
		t.Fatalf("team after invalid restore = %q, want default %q", got, teams.DefaultAbbrev)
	}
	if got := store.Scheme(); got != teams.SchemeRegular {
		t.Fatalf("scheme after invalid restore = %q, want regular", got)
	}
}

func TestRestorePublishesSettledState(t *testing.T) {
	kv := newFakeKV()
	kv.values[prefs.KeySelectedTeam] = "EDM"

	store := New(kv)
	var published []Snapshot
	store.Subscribe(func(s Snapshot) { published = append(published, s) })

	store.Restore(context.Background())

	if len(published) != 1 {
		t.Fatalf("restore published %d snapshots, want 1", len(published))
	}
	if published[0].Team.Abbreviation != "EDM" {
		t.Fatalf("published team = %q, want EDM", published[0].Team.Abbreviation)
	}
	want := published[0].Team.Colors.Regular
	if published[0].Palette != want {
		t.Fatalf("published palette = %+v, want %+v", published[0].Palette, want)
	}
}

func TestSetTeamAbbrevPersistsSynchronously(t *testing.T) {
	kv := newFakeKV()
	store := New(kv)

	store.SetTeamAbbrev("BOS")

	if got := kv.values[prefs.KeySelectedTeam]; got != "BOS" {
		t.Fatalf("persisted team = %q, want BOS", got)
	}
	if got := store.SelectedTeam().Abbreviation; got != "BOS" {
		t.Fatalf("selected team = %q, want BOS", got)
	}
}

func TestSetColorSchemePersistsSynchronously(t *testing.T) {
	kv := newFakeKV()
	store := New(kv)

	store.SetColorScheme(teams.SchemeAlternate)

	if got := kv.values[prefs.KeyColorScheme]; got != "alternate" {
		t.Fatalf("persisted scheme = %q, want alternate", got)
	}
}

func TestUnknownAbbrevAcceptedAndFallsBackAtLookup(t *testing.T) {
	kv := newFakeKV()
	store := New(kv)

	store.SetTeamAbbrev("ZZZ")

	// The raw value is accepted and persisted as given.
	if got := store.TeamAbbrev(); got != "ZZZ" {
		t.Fatalf("stored abbrev = %q, want ZZZ", got)
	}
	if got := kv.values[prefs.KeySelectedTeam]; got != "ZZZ" {
		t.Fatalf("persisted abbrev = %q, want ZZZ", got)
	}
	// Lookup silently resolves to the first registry entry.
	if got := store.SelectedTeam(); got != teams.First() {
		t.Fatalf("lookup of unknown abbrev = %q, want first registry entry %q",
			got.Abbreviation, teams.First().Abbreviation)
	}
}

func TestSettersPublishPaletteOnEveryTransition(t *testing.T) {
	store := New(newFakeKV())
	var published []Snapshot
	store.Subscribe(func(s Snapshot) { published = append(published, s) })

	store.SetTeamAbbrev("PIT")
	store.SetColorScheme(teams.SchemeAlternate)

	if len(published) != 2 {
		t.Fatalf("published %d snapshots, want 2", len(published))
	}
	pit, _ := teams.ByAbbrev("PIT")
	if published[0].Palette != pit.Colors.Regular {
		t.Fatalf("first publish palette = %+v, want PIT regular", published[0].Palette)
	}
	if published[1].Palette != pit.Colors.Alternate {
		t.Fatalf("second publish palette = %+v, want PIT alternate", published[1].Palette)
	}
}

func TestPersistFailureDoesNotBlockTransition(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("disk full")
	store := New(kv)

	store.SetTeamAbbrev("BOS")

	// Fire-and-forget: the state change still lands.
	if got := store.SelectedTeam().Abbreviation; got != "BOS" {
		t.Fatalf("selected team = %q, want BOS despite persist failure", got)
	}
}

func TestFromContext(t *testing.T) {
	if _, err := FromContext(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("bare context error = %v, want ErrNotInitialized", err)
	}

	store := New(newFakeKV())
	ctx := WithStore(context.Background(), store)
	got, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("FromContext: %v", err)
	}
	if got != store {
		t.Fatal("FromContext returned a different store")
	}
}

package layouts

import (
	"context"
	"strings"
	"testing"

	"github.com/pucklab/rinkside/internal/selection"
	"github.com/pucklab/rinkside/internal/teams"
)

func TestGetTeamCssVars(t *testing.T) {
	palette := teams.Palette{Primary: "#D2001C", Secondary: "#FAAF19", Accent: "#111111", Text: "#FFFFFF"}
	got := getTeamCssVars(palette)

	want := ":root{--team-primary:#D2001C;--team-secondary:#FAAF19;--team-accent:#111111;--team-text:#FFFFFF;}"
	if got != want {
		t.Fatalf("css vars = %q, want %q", got, want)
	}
}

func TestGetTeamCssVarsFallsBackOnBadValues(t *testing.T) {
	defaults := teams.Default().Colors.Regular

	got := getTeamCssVars(teams.Palette{Primary: "red", Secondary: "", Accent: "#12345", Text: "#GGGGGG"})
	if !strings.Contains(got, "--team-primary:"+defaults.Primary) {
		t.Fatalf("primary did not fall back: %q", got)
	}
	if !strings.Contains(got, "--team-text:"+defaults.Text) {
		t.Fatalf("text did not fall back: %q", got)
	}
}

func TestBaseRendersShellAndContent(t *testing.T) {
	snap := selection.Snapshot{
		Team:    teams.Default(),
		Scheme:  teams.SchemeRegular,
		Palette: teams.Default().Colors.Regular,
	}

	var b strings.Builder
	page := Base(nil, snap)
	if err := page.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := b.String()
	for _, want := range []string{"<!DOCTYPE html>", "team-theme", "--team-primary", "Calgary Flames"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %s", want, out)
		}
	}
}

package teams

import "testing"

func TestRegistryIntegrity(t *testing.T) {
	all := All()
	if len(all) != 32 {
		t.Fatalf("registry has %d teams, want 32", len(all))
	}

	seen := make(map[string]struct{}, len(all))
	for _, team := range all {
		if team.ID <= 0 {
			t.Fatalf("team %q has invalid id %d", team.Abbreviation, team.ID)
		}
		if len(team.Abbreviation) != 3 {
			t.Fatalf("abbreviation %q is not 3 letters", team.Abbreviation)
		}
		if _, dup := seen[team.Abbreviation]; dup {
			t.Fatalf("duplicate abbreviation %q", team.Abbreviation)
		}
		seen[team.Abbreviation] = struct{}{}

		for _, palette := range []Palette{team.Colors.Regular, team.Colors.Alternate} {
			for _, color := range []string{palette.Primary, palette.Secondary, palette.Accent, palette.Text} {
				if !IsHexColor(color) {
					t.Fatalf("team %q has invalid color %q", team.Abbreviation, color)
				}
			}
		}
	}
}

func TestByAbbrev(t *testing.T) {
	tests := []struct {
		name   string
		abbrev string
		found  bool
		want   string
	}{
		{name: "known_team", abbrev: "BOS", found: true, want: "Boston Bruins"},
		{name: "default_team", abbrev: DefaultAbbrev, found: true, want: "Calgary Flames"},
		{name: "unknown_team", abbrev: "XXX", found: false},
		{name: "lowercase_not_matched", abbrev: "bos", found: false},
		{name: "empty", abbrev: "", found: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			team, ok := ByAbbrev(test.abbrev)
			if ok != test.found {
				t.Fatalf("ByAbbrev(%q) found = %t, want %t", test.abbrev, ok, test.found)
			}
			if ok && team.Name != test.want {
				t.Fatalf("ByAbbrev(%q) = %q, want %q", test.abbrev, team.Name, test.want)
			}
		})
	}
}

func TestDefaultIsDesignatedTeam(t *testing.T) {
	team := Default()
	if team.Abbreviation != DefaultAbbrev {
		t.Fatalf("Default() = %q, want %q", team.Abbreviation, DefaultAbbrev)
	}
	if team.Name != "Calgary Flames" {
		t.Fatalf("default team is %q, want Calgary Flames", team.Name)
	}
}

func TestByDivision(t *testing.T) {
	groups := ByDivision()
	wantSizes := map[string]int{
		"Atlantic":     8,
		"Metropolitan": 8,
		"Central":      8,
		"Pacific":      8,
	}
	if len(groups) != len(wantSizes) {
		t.Fatalf("got %d divisions, want %d", len(groups), len(wantSizes))
	}
	for division, want := range wantSizes {
		if got := len(groups[division]); got != want {
			t.Fatalf("division %q has %d teams, want %d", division, got, want)
		}
	}
}

func TestSchemeSelection(t *testing.T) {
	team := Default()
	if got := team.Colors.Scheme(SchemeAlternate); got != team.Colors.Alternate {
		t.Fatalf("alternate scheme returned %+v", got)
	}
	if got := team.Colors.Scheme(SchemeRegular); got != team.Colors.Regular {
		t.Fatalf("regular scheme returned %+v", got)
	}
	if got := team.Colors.Scheme(ColorScheme("neon")); got != team.Colors.Regular {
		t.Fatalf("unknown scheme should fall back to regular, got %+v", got)
	}
}

func TestValidScheme(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "regular", want: true},
		{value: "alternate", want: true},
		{value: "", want: false},
		{value: "Regular", want: false},
		{value: "invalid-scheme", want: false},
	}
	for _, test := range tests {
		if got := ValidScheme(test.value); got != test.want {
			t.Fatalf("ValidScheme(%q) = %t, want %t", test.value, got, test.want)
		}
	}
}

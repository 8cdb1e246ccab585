// internal/teams/registry.go
package teams

import (
	"regexp"
	"strings"
)

// DefaultAbbrev is the team shown before any selection has been made or
// restored. Lookup of this abbreviation must always succeed.
const DefaultAbbrev = "CGY"

// ColorScheme selects one of the two palettes every team carries.
type ColorScheme string

const (
	SchemeRegular   ColorScheme = "regular"
	SchemeAlternate ColorScheme = "alternate"
)

// ValidScheme reports whether value names a known color scheme.
func ValidScheme(value string) bool {
	switch ColorScheme(value) {
	case SchemeRegular, SchemeAlternate:
		return true
	}
	return false
}

// Palette holds the four presentation colors published as CSS custom
// properties when a team is active.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Text      string `json:"text"`
}

// Colors pairs the regular palette with the alternate-jersey palette.
type Colors struct {
	Regular   Palette `json:"regular"`
	Alternate Palette `json:"alternate"`
}

// Scheme returns the palette for the given scheme, defaulting to regular
// for anything unrecognized.
func (c Colors) Scheme(scheme ColorScheme) Palette {
	if scheme == SchemeAlternate {
		return c.Alternate
	}
	return c.Regular
}

// TeamConfig is one immutable catalog entry. Entries are defined once at
// process start and never mutated.
type TeamConfig struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Division     string `json:"division"`
	Conference   string `json:"conference"`
	LogoURL      string `json:"logoUrl"`
	Colors       Colors `json:"colors"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a 6-digit hex color like #AABBCC.
func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// All returns the full catalog in registry order. The slice is a copy;
// callers may not mutate registry entries through it.
func All() []TeamConfig {
	out := make([]TeamConfig, len(registry))
	copy(out, registry)
	return out
}

// Count is the league size the ranking thresholds were tuned for.
func Count() int {
	return len(registry)
}

// ByAbbrev looks up a team by its 3-letter abbreviation.
func ByAbbrev(abbrev string) (TeamConfig, bool) {
	for _, team := range registry {
		if team.Abbreviation == abbrev {
			return team, true
		}
	}
	return TeamConfig{}, false
}

// ByDivision groups the catalog by division name, preserving registry order
// within each group.
func ByDivision() map[string][]TeamConfig {
	groups := make(map[string][]TeamConfig)
	for _, team := range registry {
		groups[team.Division] = append(groups[team.Division], team)
	}
	return groups
}

// Default returns the catalog entry for DefaultAbbrev.
func Default() TeamConfig {
	team, ok := ByAbbrev(DefaultAbbrev)
	if !ok {
		// The registry is compile-time data; a missing default is a
		// programming error.
		panic("teams: default abbreviation missing from registry")
	}
	return team
}

// First returns the first catalog entry. Unknown abbreviations resolve here
// at lookup time rather than failing.
func First() TeamConfig {
	return registry[0]
}

func logoURL(abbrev string) string {
	return "https://assets.nhle.com/logos/nhl/svg/" + abbrev + "_light.svg"
}

package layouts

import (
	"fmt"
	"strings"

	"github.com/pucklab/rinkside/internal/teams"
)

func getTeamCssVars(palette teams.Palette) string {
	defaults := teams.Default().Colors.Regular

	primary := colorOrDefault(palette.Primary, defaults.Primary)
	secondary := colorOrDefault(palette.Secondary, defaults.Secondary)
	accent := colorOrDefault(palette.Accent, defaults.Accent)
	text := colorOrDefault(palette.Text, defaults.Text)

	return fmt.Sprintf(
		":root{--team-primary:%s;--team-secondary:%s;--team-accent:%s;--team-text:%s;}",
		primary,
		secondary,
		accent,
		text,
	)
}

func colorOrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	if !teams.IsHexColor(trimmed) {
		return fallback
	}
	return trimmed
}

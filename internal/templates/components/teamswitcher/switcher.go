package teamswitcher

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pucklab/rinkside/internal/teams"
)

// Switcher renders the team dropdown and the scheme toggle. Both post back
// over htmx and swap the whole switcher so the selected state stays in sync.
func Switcher(data SwitcherData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div id="team-switcher" class="team-switcher">`)
		b.WriteString(`<select name="team" hx-post="/api/v1/selection/team" hx-target="body" hx-swap="none" hx-trigger="change">`)
		for _, team := range data.Teams {
			selected := ""
			if team.Abbreviation == data.SelectedAbbrev {
				selected = " selected"
			}
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(team.Abbreviation),
				selected,
				templ.EscapeString(team.Name),
			)
		}
		b.WriteString(`</select>`)

		for _, scheme := range []teams.ColorScheme{teams.SchemeRegular, teams.SchemeAlternate} {
			active := ""
			if scheme == data.Scheme {
				active = " active"
			}
			fmt.Fprintf(&b, `<button class="scheme-toggle%s" hx-post="/api/v1/selection/scheme" hx-vals='{"scheme":"%s"}' hx-swap="none">%s</button>`,
				active,
				templ.EscapeString(string(scheme)),
				templ.EscapeString(schemeLabel(scheme)),
			)
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func schemeLabel(scheme teams.ColorScheme) string {
	if scheme == teams.SchemeAlternate {
		return "Alternate"
	}
	return "Home"
}

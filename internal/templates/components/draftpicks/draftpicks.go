package draftpicks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pucklab/rinkside/internal/draft"
)

// PicksTable renders a team's draft capital for one year, with scouting
// projections expanded under round-one picks that have them.
func PicksTable(data PicksPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div id="draft-picks" class="draft-picks">`)
		fmt.Fprintf(&b, `<h2>%s Draft Picks %d</h2>`, templ.EscapeString(data.TeamName), data.Year)

		if len(data.Picks) == 0 {
			b.WriteString(`<p class="empty">No picks this year</p></div>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString(`<ul class="pick-list">`)
		for _, pick := range data.Picks {
			b.WriteString(`<li class="pick">`)
			fmt.Fprintf(&b, `<span class="round">Round %d</span><span class="overall">%s</span>`,
				pick.Round,
				templ.EscapeString(overallLabel(pick)),
			)
			if !pick.IsOwnPick {
				fmt.Fprintf(&b, `<span class="traded">via %s</span>`, templ.EscapeString(pick.OriginalTeamAbbrev))
			}
			if pick.Projection != nil {
				writeProjection(&b, *pick.Projection)
			}
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeProjection(b *strings.Builder, projection draft.Projection) {
	fmt.Fprintf(b, `<div class="projection"><span class="player">%s</span><span class="pos">%s</span><span class="club">%s (%s)</span><p class="report">%s</p>`,
		templ.EscapeString(projection.PlayerName),
		templ.EscapeString(projection.Position),
		templ.EscapeString(projection.CurrentTeam),
		templ.EscapeString(projection.League),
		templ.EscapeString(projection.ScoutingReport),
	)
	if len(projection.Sources) > 0 {
		fmt.Fprintf(b, `<span class="sources">%s</span>`, templ.EscapeString(strings.Join(projection.Sources, ", ")))
	}
	b.WriteString(`</div>`)
}

func overallLabel(pick draft.Pick) string {
	if pick.OverallPick == nil {
		return "TBD"
	}
	return fmt.Sprintf("#%d overall", *pick.OverallPick)
}

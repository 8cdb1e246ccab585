package standings

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pucklab/rinkside/internal/nhl"
	"github.com/pucklab/rinkside/internal/stats"
)

// Table renders the league table, optionally sectioned by division. The
// selected team's row carries a highlight class bound to the team palette.
func Table(data TableData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div id="standings-table" class="standings">`)
		if data.GroupByDivision {
			for _, division := range divisionOrder(data.Standings) {
				fmt.Fprintf(&b, `<h3 class="standings-division">%s</h3>`, templ.EscapeString(division))
				writeTable(&b, filterDivision(data.Standings, division), data.SelectedAbbrev)
			}
		} else {
			writeTable(&b, data.Standings, data.SelectedAbbrev)
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// TeamCard renders the selected team's summary: record, ranked stats split
// into strengths and weaknesses, and the last-10 power trend.
func TeamCard(data TeamCardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div id="team-card" class="team-card">`)
		fmt.Fprintf(&b, `<div class="team-card-header"><h2>%s</h2><span class="record">%s</span><span class="points">%d pts</span></div>`,
			templ.EscapeString(data.Standing.TeamName),
			templ.EscapeString(data.Standing.Record()),
			data.Standing.Points,
		)

		fmt.Fprintf(&b, `<div class="power-trend trend-%s"><span class="trend-label">%s</span><span class="l10">L10 %s</span><span class="score">%d</span></div>`,
			templ.EscapeString(data.Power.Trend),
			templ.EscapeString(strings.ToUpper(data.Power.Trend)),
			templ.EscapeString(data.Power.Last10Record),
			data.Power.PowerRankScore,
		)

		writeStatList(&b, "Strengths", "top-stats", data.Stats.TopStats)
		writeStatList(&b, "Weaknesses", "worst-stats", data.Stats.WorstStats)
		writeStatList(&b, "All Stats", "all-stats", data.Stats.Stats)

		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeTable(b *strings.Builder, rows []nhl.Standing, selected string) {
	b.WriteString(`<table><thead><tr><th>Team</th><th>GP</th><th>W</th><th>L</th><th>OT</th><th>PTS</th><th>P%</th><th>DIFF</th><th>L10</th><th>STRK</th></tr></thead><tbody>`)
	for _, row := range rows {
		rowClass := ""
		if row.TeamAbbrev == selected {
			rowClass = ` class="selected-team"`
		}
		name := row.TeamName
		if row.ClinchIndicator != "" {
			name = fmt.Sprintf("%s (%s)", name, row.ClinchIndicator)
		}
		fmt.Fprintf(b, `<tr%s><td><img src="%s" alt="" class="team-logo"/>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%.1f</td><td>%+d</td><td>%s</td><td>%s%d</td></tr>`,
			rowClass,
			templ.EscapeString(row.TeamLogo),
			templ.EscapeString(name),
			row.GamesPlayed,
			row.Wins,
			row.Losses,
			row.OtLosses,
			row.Points,
			row.PointsPctg*100,
			row.GoalDiff,
			templ.EscapeString(row.L10Record()),
			templ.EscapeString(row.StreakCode),
			row.StreakCount,
		)
	}
	b.WriteString(`</tbody></table>`)
}

func writeStatList(b *strings.Builder, heading, class string, list []stats.TeamStat) {
	fmt.Fprintf(b, `<div class="stat-list %s"><h4>%s</h4><ul>`, class, templ.EscapeString(heading))
	if len(list) == 0 {
		b.WriteString(`<li class="empty">None</li>`)
	}
	for _, stat := range list {
		fmt.Fprintf(b, `<li><span class="label">%s</span><span class="value">%s</span><span class="rank">#%d</span><span class="avg">lg %s</span></li>`,
			templ.EscapeString(stat.Label),
			templ.EscapeString(formatStatValue(stat)),
			stat.Rank,
			templ.EscapeString(formatStatNumber(stat.LeagueAvg, stat.Format)),
		)
	}
	b.WriteString(`</ul></div>`)
}

func formatStatValue(stat stats.TeamStat) string {
	return formatStatNumber(stat.Value, stat.Format)
}

func formatStatNumber(value float64, format string) string {
	switch format {
	case stats.FormatPercentage:
		return fmt.Sprintf("%.1f%%", value)
	case stats.FormatInteger:
		return fmt.Sprintf("%.0f", value)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

func divisionOrder(rows []nhl.Standing) []string {
	var order []string
	seen := map[string]bool{}
	for _, row := range rows {
		if !seen[row.DivisionName] {
			seen[row.DivisionName] = true
			order = append(order, row.DivisionName)
		}
	}
	return order
}

func filterDivision(rows []nhl.Standing, division string) []nhl.Standing {
	var out []nhl.Standing
	for _, row := range rows {
		if row.DivisionName == division {
			out = append(out, row)
		}
	}
	return out
}

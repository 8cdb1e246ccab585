package salarycap

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pucklab/rinkside/internal/salary"
)

// CapTable renders the cap summary bar and the contracts table, or the
// single failure state when the data could not be loaded.
func CapTable(data CapPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<div id="salary-cap" class="salary-cap">`)
		if data.LoadFailed {
			b.WriteString(`<p class="error">Failed to load salary data</p></div>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		fmt.Fprintf(&b, `<h2>%s Cap Sheet</h2>`, templ.EscapeString(data.TeamName))

		summary := data.Summary
		fmt.Fprintf(&b, `<div class="cap-summary"><span>Cap %s</span><span>Used %s</span><span>Space %s</span><span>Roster %d</span></div>`,
			formatMoney(summary.SalaryCap),
			formatMoney(summary.TotalCapHit),
			formatMoney(summary.CapSpace),
			summary.ActiveRoster,
		)

		b.WriteString(`<table><thead><tr><th>Player</th><th>Pos</th><th>Cap Hit</th><th>Years</th><th>Expiry</th><th>Clause</th></tr></thead><tbody>`)
		for _, contract := range data.Contracts {
			fmt.Fprintf(&b, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(contract.Player.FullName),
				templ.EscapeString(contract.Player.Position),
				formatMoney(contract.CapHit),
				contract.YearsRemaining,
				templ.EscapeString(contract.ExpiryStatus),
				templ.EscapeString(clauseLabel(contract.TradeClause)),
			)
		}
		b.WriteString(`</tbody></table></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func clauseLabel(clause salary.TradeClause) string {
	if clause.Type == salary.ClauseNone {
		return "-"
	}
	return string(clause.Type)
}

// formatMoney renders dollars with thousands separators, e.g. $8,500,000.
func formatMoney(amount float64) string {
	whole := int64(amount)
	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}

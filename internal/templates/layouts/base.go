package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/pucklab/rinkside/internal/selection"
)

// Base wraps page content in the application shell. The selection snapshot
// drives the per-team CSS variables so every page renders in the active
// team's colors.
func Base(content templ.Component, snap selection.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "Rinkside"
		if snap.Team.Name != "" {
			title = fmt.Sprintf("Rinkside | %s", snap.Team.Name)
		}

		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<title>%s</title>", templ.EscapeString(title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<style id=\"team-theme\">%s</style>", getTeamCssVars(snap.Palette)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<link rel=\"stylesheet\" href=\"/static/css/app.css\"/><script src=\"/static/js/htmx.min.js\"></script></head><body>"); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

package nav

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type MenuItem struct {
	Label string
	Href  string
}

func menuItems() []MenuItem {
	return []MenuItem{
		{Label: "Dashboard", Href: "/"},
		{Label: "Standings", Href: "/standings"},
		{Label: "Salary Cap", Href: "/salary"},
		{Label: "Draft Picks", Href: "/draft"},
	}
}

// Menu renders the slide-out navigation panel.
func Menu() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<nav id="nav-menu" class="nav-menu"><button hx-get="/api/v1/nav/menu/close" hx-target="#nav-menu" hx-swap="outerHTML" class="nav-close">&times;</button><ul>`)
		for _, item := range menuItems() {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
				templ.EscapeString(item.Href),
				templ.EscapeString(item.Label),
			)
		}
		b.WriteString(`</ul></nav>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// TopBar renders the persistent header with the menu trigger and the slot
// where the team switcher mounts.
func TopBar(switcher templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="top-bar"><button hx-get="/api/v1/nav/menu" hx-target="#nav-slot" hx-swap="innerHTML" class="nav-open">&#9776;</button><span class="brand">Rinkside</span>`); err != nil {
			return err
		}
		if switcher != nil {
			if err := switcher.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<div id="nav-slot"></div></header>`)
		return err
	})
}

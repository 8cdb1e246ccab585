// internal/api/nav/handlers.go
package nav

import (
	"net/http"

	"github.com/pucklab/rinkside/internal/templates/components/nav"
)

func HandleMenu(w http.ResponseWriter, r *http.Request) {
	component := nav.Menu()
	component.Render(r.Context(), w)
}

func HandleMenuClose(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(""))
}

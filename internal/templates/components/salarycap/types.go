package salarycap

import "github.com/pucklab/rinkside/internal/salary"

type CapPageData struct {
	TeamName  string
	Summary   salary.TeamCapSummary
	Contracts []salary.PlayerContract
	// LoadFailed switches the component to the single error state used
	// when either half of the fetch fails.
	LoadFailed bool
}

package teamswitcher

import "github.com/pucklab/rinkside/internal/teams"

type SwitcherData struct {
	Teams          []teams.TeamConfig
	SelectedAbbrev string
	Scheme         teams.ColorScheme
}

package standings

import (
	"github.com/pucklab/rinkside/internal/nhl"
	"github.com/pucklab/rinkside/internal/stats"
)

type TableData struct {
	Standings      []nhl.Standing
	SelectedAbbrev string
	// GroupByDivision splits the table into division sections when set.
	GroupByDivision bool
}

type TeamCardData struct {
	Standing nhl.Standing
	Stats    stats.TeamStatsCollection
	Power    stats.PowerRanking
}

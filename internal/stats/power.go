// internal/stats/power.go
package stats

import "github.com/pucklab/rinkside/internal/nhl"

// Trend labels for the last-10 window.
const (
	TrendHot  = "hot"
	TrendWarm = "warm"
	TrendCold = "cold"
)

// Trend boundaries on last-10 points percentage. Boundary values belong to
// the higher band: exactly 0.70 is hot, exactly 0.50 is warm.
const (
	trendHotFloor  = 0.70
	trendWarmFloor = 0.50
)

// maxL10Points is the most a team can earn over a 10-game window
// (2 points per game).
const maxL10Points = 20

// PowerRanking summarizes a team's recent form from its last 10 games.
type PowerRanking struct {
	TeamAbbrev string `json:"teamAbbrev"`
	// Last10Record is "W-L-OT" with no padding.
	Last10Record string `json:"last10Record"`
	// Last10PointsPctg is 0-100, one decimal.
	Last10PointsPctg float64 `json:"last10PointsPctg"`
	// PowerRankScore is an integer 0-100.
	PowerRankScore int    `json:"powerRankScore"`
	Trend          string `json:"trend"`
}

// Power derives a PowerRanking from a single already-resolved Standing.
// Points follow standard hockey scoring over the 10-game window: a win is 2,
// an OT/shootout loss is 1, a regulation loss is 0.
func Power(standing nhl.Standing) PowerRanking {
	points := standing.L10Wins*2 + standing.L10OtLosses
	pctg := float64(points) / maxL10Points

	trend := TrendCold
	switch {
	case pctg >= trendHotFloor:
		trend = TrendHot
	case pctg >= trendWarmFloor:
		trend = TrendWarm
	}

	return PowerRanking{
		TeamAbbrev:       standing.TeamAbbrev,
		Last10Record:     standing.L10Record(),
		Last10PointsPctg: roundTo(pctg*100, 1),
		PowerRankScore:   int(roundTo(pctg*100, 0)),
		Trend:            trend,
	}
}

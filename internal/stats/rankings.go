// internal/stats/rankings.go

// Package stats derives per-team ranked stat comparisons and power-ranking
// trends from a raw standings snapshot. Everything here is a pure function
// of its inputs: the same snapshot and team always produce the same output.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/pucklab/rinkside/internal/nhl"
)

// Ranking thresholds. Tuned for a 32-team league but kept as named
// constants rather than literals tied to the league size.
const (
	// topRankCutoff marks a stat as a strength when the team ranks at or
	// above it.
	topRankCutoff = 10
	// worstRankSpan marks a stat as a weakness when the team sits in the
	// bottom worstRankSpan positions of the league.
	worstRankSpan = 5
)

// Format tags tell the presentation layer how a stat value is scaled.
const (
	FormatPercentage = "percentage"
	FormatDecimal    = "decimal"
	FormatInteger    = "integer"
)

// NotFoundError reports that a target team is absent from a snapshot.
type NotFoundError struct {
	Abbrev string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("stats: team %s not found in standings", e.Abbrev)
}

// TeamStat is one named metric for one team, ranked against the full league
// snapshot at computation time.
type TeamStat struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Rank      int     `json:"rank"`
	LeagueAvg float64 `json:"leagueAvg"`
	Format    string  `json:"format"`
}

// TeamStatsCollection bundles a team's full stat list with its top/bottom
// classified views. TopStats and WorstStats are filtered views of Stats,
// not independent state.
type TeamStatsCollection struct {
	TeamAbbrev string     `json:"teamAbbrev"`
	Stats      []TeamStat `json:"stats"`
	TopStats   []TeamStat `json:"topStats"`
	WorstStats []TeamStat `json:"worstStats"`
}

// metricDef describes one tracked metric: how to derive its raw value from a
// Standing, its sort direction, and its display scaling.
type metricDef struct {
	name      string
	label     string
	format    string
	precision int
	// displayScale multiplies the raw value and league average before
	// rounding (points percentage is stored 0-1 upstream, shown 0-100).
	displayScale float64
	// ascending ranks lower-is-better metrics by ascending value.
	ascending bool
	value     func(nhl.Standing) float64
}

var trackedMetrics = []metricDef{
	{
		name: "goalsForPerGame", label: "Goals For / Game",
		format: FormatDecimal, precision: 2, displayScale: 1,
		value: func(s nhl.Standing) float64 { return perGame(s.GoalsFor, s.GamesPlayed) },
	},
	{
		name: "goalsAgainstPerGame", label: "Goals Against / Game",
		format: FormatDecimal, precision: 2, displayScale: 1, ascending: true,
		value: func(s nhl.Standing) float64 { return perGame(s.GoalsAgainst, s.GamesPlayed) },
	},
	{
		name: "pointsPctg", label: "Points %",
		format: FormatPercentage, precision: 1, displayScale: 100,
		value: func(s nhl.Standing) float64 { return s.PointsPctg },
	},
	{
		name: "goalDiffPerGame", label: "Goal Diff / Game",
		format: FormatDecimal, precision: 2, displayScale: 1,
		value: func(s nhl.Standing) float64 {
			return perGame(s.GoalsFor, s.GamesPlayed) - perGame(s.GoalsAgainst, s.GamesPlayed)
		},
	},
}

// TeamStats ranks every tracked metric for the target team against the full
// snapshot. Ranks are 1-based positions in the metric's sort order; ties
// keep the snapshot's arrival order. Values and league averages are rounded
// to display precision after ranking, never before.
func TeamStats(standings []nhl.Standing, teamAbbrev string) (TeamStatsCollection, error) {
	targetIdx := -1
	for i, s := range standings {
		if s.TeamAbbrev == teamAbbrev {
			targetIdx = i
			break
		}
	}
	if targetIdx == -1 {
		return TeamStatsCollection{}, NotFoundError{Abbrev: teamAbbrev}
	}

	leagueSize := len(standings)
	worstCutoff := leagueSize - worstRankSpan + 1

	teamStats := make([]TeamStat, 0, len(trackedMetrics))
	for _, metric := range trackedMetrics {
		values := make([]float64, leagueSize)
		var sum float64
		for i, s := range standings {
			values[i] = metric.value(s)
			sum += values[i]
		}

		order := make([]int, leagueSize)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			if metric.ascending {
				return values[order[a]] < values[order[b]]
			}
			return values[order[a]] > values[order[b]]
		})

		rank := 0
		for pos, idx := range order {
			if idx == targetIdx {
				rank = pos + 1
				break
			}
		}

		teamStats = append(teamStats, TeamStat{
			Name:      metric.name,
			Label:     metric.label,
			Value:     roundTo(values[targetIdx]*metric.displayScale, metric.precision),
			Rank:      rank,
			LeagueAvg: roundTo(sum/float64(leagueSize)*metric.displayScale, metric.precision),
			Format:    metric.format,
		})
	}

	collection := TeamStatsCollection{
		TeamAbbrev: teamAbbrev,
		Stats:      teamStats,
	}
	for _, stat := range teamStats {
		if stat.Rank <= topRankCutoff {
			collection.TopStats = append(collection.TopStats, stat)
		}
		if stat.Rank >= worstCutoff {
			collection.WorstStats = append(collection.WorstStats, stat)
		}
	}
	return collection, nil
}

func perGame(total, gamesPlayed int) float64 {
	if gamesPlayed <= 0 {
		return 0
	}
	return float64(total) / float64(gamesPlayed)
}

func roundTo(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}

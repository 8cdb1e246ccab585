// internal/nhl/types.go
package nhl

// Standing is one team's current league-table snapshot, normalized from the
// upstream response. Recreated on every fetch, immutable once produced.
type Standing struct {
	TeamAbbrev         string  `json:"teamAbbrev"`
	TeamName           string  `json:"teamName"`
	TeamLogo           string  `json:"teamLogo"`
	DivisionName       string  `json:"divisionName"`
	ConferenceName     string  `json:"conferenceName"`
	GamesPlayed        int     `json:"gamesPlayed"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	OtLosses           int     `json:"otLosses"`
	Points             int     `json:"points"`
	PointsPctg         float64 `json:"pointsPctg"`
	RegulationWins     int     `json:"regulationWins"`
	GoalsFor           int     `json:"goalsFor"`
	GoalsAgainst       int     `json:"goalsAgainst"`
	GoalDiff           int     `json:"goalDiff"`
	StreakCode         string  `json:"streakCode"`
	StreakCount        int     `json:"streakCount"`
	L10Wins            int     `json:"l10Wins"`
	L10Losses          int     `json:"l10Losses"`
	L10OtLosses        int     `json:"l10OtLosses"`
	WildcardSequence   int     `json:"wildcardSequence"`
	DivisionSequence   int     `json:"divisionSequence"`
	ConferenceSequence int     `json:"conferenceSequence"`
	LeagueSequence     int     `json:"leagueSequence"`
	ClinchIndicator    string  `json:"clinchIndicator,omitempty"`
}

// Record formats the season record as "W-L-OT".
func (s Standing) Record() string {
	return record(s.Wins, s.Losses, s.OtLosses)
}

// L10Record formats the last-10-games record as "W-L-OT".
func (s Standing) L10Record() string {
	return record(s.L10Wins, s.L10Losses, s.L10OtLosses)
}
